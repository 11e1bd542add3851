package employee_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	apperrors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
	"github.com/gestionat/hr-management/internal/core/events"
	"github.com/gestionat/hr-management/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// MockRepository implements employee.Repository for testing
type MockRepository struct {
	employees   map[string]*employeeDatamodel.EmployeeWithPerson
	credentials map[string]*employeeDatamodel.Credential
	shouldFail  bool
	failError   error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		employees:   make(map[string]*employeeDatamodel.EmployeeWithPerson),
		credentials: make(map[string]*employeeDatamodel.Credential),
	}
}

func (m *MockRepository) List(onProject *bool) ([]*employeeDatamodel.EmployeeWithPerson, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*employeeDatamodel.EmployeeWithPerson
	for _, emp := range m.employees {
		if onProject != nil {
			if *onProject && emp.AssignedProjectID == nil {
				continue
			}
			if !*onProject && emp.AssignedProjectID != nil {
				continue
			}
		}
		result = append(result, emp)
	}
	return result, nil
}

func (m *MockRepository) GetByDNI(dni string) (*employeeDatamodel.EmployeeWithPerson, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.employees[dni], nil
}

func (m *MockRepository) CreateEmployee(person *employeeDatamodel.Person, credential *employeeDatamodel.Credential, emp *employeeDatamodel.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	m.credentials[credential.Username] = credential
	m.employees[person.DNI] = &employeeDatamodel.EmployeeWithPerson{
		DNI:               person.DNI,
		Department:        emp.Department,
		HireDate:          emp.HireDate,
		MaxVacationDays:   emp.MaxVacationDays,
		AssignedProjectID: emp.AssignedProjectID,
		Username:          emp.Username,
		Name:              person.Name,
		Surname:           person.Surname,
		Email:             person.Email,
		Birthdate:         person.Birthdate,
	}
	return nil
}

func (m *MockRepository) AddEmployee(emp *employeeDatamodel.EmployeeWithPerson) {
	m.employees[emp.DNI] = emp
}

func hrCaller() *auth.Caller {
	return &auth.Caller{DNI: "99999999Z", Role: auth.RoleHR}
}

func validCreateDTO() *employee.CreateEmployeeDTO {
	days := 22
	return &employee.CreateEmployeeDTO{
		Person: &employee.PersonDTO{
			DNI:       "11111111A",
			Name:      "Marta",
			Surname:   "Serrano",
			Phone:     "600111222",
			Address:   "Calle Mayor 1",
			Email:     "marta@gestionat.example",
			Birthdate: "1990-05-12",
		},
		Department:      "RRHH",
		AllowedHolidays: &days,
		Username:        "mserrano",
		Password:        "secret",
		DateHired:       "2024-02-01",
	}
}

var _ = Describe("Employee Service", func() {
	var (
		mockRepo *MockRepository
		service  *employee.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus := events.NewEventBus(logger)
		service = employee.NewService(mockRepo, bus, 4, logger)
	})

	Describe("List", func() {
		BeforeEach(func() {
			projectID := int64(7)
			mockRepo.AddEmployee(&employeeDatamodel.EmployeeWithPerson{DNI: "11111111A", Name: "Marta", Department: "RRHH"})
			mockRepo.AddEmployee(&employeeDatamodel.EmployeeWithPerson{DNI: "22222222B", Name: "Jorge", Department: "Comercial", AssignedProjectID: &projectID})
		})

		It("returns everyone when no filter is supplied", func() {
			result, err := service.List(hrCaller(), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("keeps only assigned employees when onProject is true", func() {
			onProject := true
			result, err := service.List(hrCaller(), &onProject)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].DNI).To(Equal("22222222B"))
		})

		It("keeps only unassigned employees when onProject is false", func() {
			onProject := false
			result, err := service.List(hrCaller(), &onProject)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].DNI).To(Equal("11111111A"))
		})

		It("denies Development callers", func() {
			_, err := service.List(&auth.Caller{DNI: "1A", Role: auth.RoleDevelopment}, nil)
			Expect(err).To(Equal(apperrors.ErrAccessDenied))
		})

		It("propagates repository errors", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("database error")
			_, err := service.List(hrCaller(), nil)
			Expect(err).To(MatchError(ContainSubstring("database error")))
		})
	})

	Describe("Get", func() {
		It("returns the employee when it exists", func() {
			mockRepo.AddEmployee(&employeeDatamodel.EmployeeWithPerson{DNI: "11111111A", Name: "Marta"})
			result, err := service.Get(hrCaller(), "11111111A")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Name).To(Equal("Marta"))
		})

		It("returns not found for an unknown dni", func() {
			_, err := service.Get(hrCaller(), "00000000X")
			Expect(err).To(Equal(apperrors.ErrEmployeeNotFound))
		})
	})

	Describe("Create", func() {
		It("persists all three rows with a hashed password", func() {
			err := service.Create(context.Background(), hrCaller(), validCreateDTO())
			Expect(err).NotTo(HaveOccurred())

			stored := mockRepo.employees["11111111A"]
			Expect(stored).NotTo(BeNil())
			Expect(stored.Username).To(Equal("mserrano"))
			Expect(stored.MaxVacationDays).To(Equal(22))

			cred := mockRepo.credentials["mserrano"]
			Expect(cred).NotTo(BeNil())
			Expect(cred.PasswordHash).NotTo(Equal("secret"))
			Expect(auth.VerifyPassword(cred.PasswordHash, "secret")).To(Succeed())
		})

		It("denies non-HR callers", func() {
			err := service.Create(context.Background(), &auth.Caller{DNI: "1A", Role: auth.RoleCommercial}, validCreateDTO())
			Expect(err).To(Equal(apperrors.ErrAccessDenied))
		})

		It("rejects a request without the person record", func() {
			dto := validCreateDTO()
			dto.Person = nil
			err := service.Create(context.Background(), hrCaller(), dto)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("person"))
		})

		It("rejects an unknown department", func() {
			dto := validCreateDTO()
			dto.Department = "Marketing"
			err := service.Create(context.Background(), hrCaller(), dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a missing hire date", func() {
			dto := validCreateDTO()
			dto.DateHired = ""
			err := service.Create(context.Background(), hrCaller(), dto)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("dateHired"))
		})

		It("accepts timestamps as well as plain dates", func() {
			dto := validCreateDTO()
			dto.DateHired = "2024-02-01T10:30:00Z"
			err := service.Create(context.Background(), hrCaller(), dto)
			Expect(err).NotTo(HaveOccurred())
		})

		It("surfaces a failed transaction", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("constraint violation")
			err := service.Create(context.Background(), hrCaller(), validCreateDTO())
			Expect(err).To(MatchError(ContainSubstring("constraint violation")))
		})
	})
})
