package detour_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	apperrors "github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
	"github.com/gestionat/hr-management/internal/core/events"
	"github.com/gestionat/hr-management/internal/detour"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDetourService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Detour Service Suite")
}

// MockRepository implements detour.Repository for testing
type MockRepository struct {
	detours    []*projectDatamodel.Detour
	shouldFail bool
	failError  error
}

func (m *MockRepository) ListByProject(projectID int64) ([]*projectDatamodel.Detour, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*projectDatamodel.Detour
	for _, d := range m.detours {
		if d.ProjectID == projectID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *MockRepository) Create(d *projectDatamodel.Detour) error {
	if m.shouldFail {
		return m.failError
	}
	d.ID = int64(len(m.detours) + 1)
	m.detours = append(m.detours, d)
	return nil
}

func techCaller(projectID int64) *auth.Caller {
	return &auth.Caller{DNI: "33333333C", Role: auth.RoleTechnical, AssignedProjectID: &projectID}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

var _ = Describe("Detour Service", func() {
	var (
		mockRepo *MockRepository
		service  *detour.Service
	)

	BeforeEach(func() {
		mockRepo = &MockRepository{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = detour.NewService(mockRepo, events.NewEventBus(logger), logger)
	})

	Describe("ListForProject", func() {
		BeforeEach(func() {
			mockRepo.detours = []*projectDatamodel.Detour{
				{ID: 1, Name: "scope creep", ProjectID: 7},
				{ID: 2, Name: "vendor delay", ProjectID: 8},
			}
		})

		It("lets Commercial list any project's detours", func() {
			result, err := service.ListForProject(&auth.Caller{DNI: "2B", Role: auth.RoleCommercial}, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Name).To(Equal("scope creep"))
		})

		It("restricts Technical to their assigned project", func() {
			_, err := service.ListForProject(techCaller(8), 7)
			Expect(err).To(Equal(apperrors.ErrAccessDenied))

			result, err := service.ListForProject(techCaller(7), 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
		})

		It("denies HR and Development", func() {
			_, err := service.ListForProject(&auth.Caller{DNI: "1A", Role: auth.RoleHR}, 7)
			Expect(err).To(Equal(apperrors.ErrAccessDenied))
		})
	})

	Describe("Create", func() {
		var dto *detour.CreateDetourDTO

		BeforeEach(func() {
			dto = &detour.CreateDetourDTO{
				Name:         "scope creep",
				EmployeeCost: intPtr(2),
				HourCost:     intPtr(120),
				BudgetCost:   floatPtr(4800),
				Detail:       "two extra integrations requested mid-sprint",
			}
		})

		It("records the detour with the current time as default", func() {
			before := time.Now()
			err := service.Create(context.Background(), techCaller(7), 7, dto)
			Expect(err).NotTo(HaveOccurred())

			Expect(mockRepo.detours).To(HaveLen(1))
			stored := mockRepo.detours[0]
			Expect(stored.ProjectID).To(Equal(int64(7)))
			Expect(stored.OccurredAt).To(BeTemporally(">=", before))
			Expect(stored.NewDeadline).To(BeNil())
		})

		It("honors an explicit date and new deadline", func() {
			dto.Date = strPtr("2026-08-20T09:00:00Z")
			dto.NewDeadline = strPtr("2027-04-15")
			err := service.Create(context.Background(), techCaller(7), 7, dto)
			Expect(err).NotTo(HaveOccurred())

			stored := mockRepo.detours[0]
			Expect(stored.OccurredAt).To(Equal(time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)))
			Expect(stored.NewDeadline).NotTo(BeNil())
			Expect(stored.NewDeadline.Year()).To(Equal(2027))
		})

		It("requires the Technical assignment to the project", func() {
			err := service.Create(context.Background(), techCaller(8), 7, dto)
			Expect(err).To(Equal(apperrors.ErrAccessDenied))

			err = service.Create(context.Background(),
				&auth.Caller{DNI: "2B", Role: auth.RoleCommercial}, 7, dto)
			Expect(err).To(Equal(apperrors.ErrAccessDenied))
		})

		It("names the missing cost fields", func() {
			dto.EmployeeCost = nil
			dto.BudgetCost = nil
			err := service.Create(context.Background(), techCaller(7), 7, dto)
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("employeeCost"))
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("budgetCost"))
		})

		It("rejects an unparseable deadline", func() {
			dto.NewDeadline = strPtr("next spring")
			err := service.Create(context.Background(), techCaller(7), 7, dto)
			Expect(err).To(HaveOccurred())
		})

		It("surfaces repository failures", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("insert failed")
			err := service.Create(context.Background(), techCaller(7), 7, dto)
			Expect(err).To(MatchError(ContainSubstring("insert failed")))
		})
	})
})
