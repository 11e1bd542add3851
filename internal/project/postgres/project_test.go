package postgres_test

import (
	"testing"
	"time"

	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
	projectDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/project"
	"github.com/gestionat/hr-management/internal/project"
	projectPostgres "github.com/gestionat/hr-management/internal/project/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestProjectPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Project Postgres Suite")
}

var _ = Describe("Project Repository", func() {
	var (
		db   *gorm.DB
		repo project.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&employeeDatamodel.Person{},
			&employeeDatamodel.Credential{},
			&employeeDatamodel.Employee{},
			&projectDatamodel.Proposal{},
			&projectDatamodel.Project{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = projectPostgres.NewProjectRepository(db)
	})

	seedStaff := func() {
		for _, s := range []struct{ dni, name, dept, username string }{
			{"22222222B", "Jorge", "Comercial", "jcampos"},
			{"33333333C", "Lucia", "Tecnica", "lprieto"},
		} {
			Expect(db.Create(&employeeDatamodel.Person{DNI: s.dni, Name: s.name, Surname: "x"}).Error).To(Succeed())
			Expect(db.Create(&employeeDatamodel.Credential{Username: s.username, PasswordHash: "h"}).Error).To(Succeed())
			Expect(db.Create(&employeeDatamodel.Employee{DNI: s.dni, Department: s.dept, Username: s.username}).Error).To(Succeed())
		}
	}

	newProjectRow := func(proposalID int64) *projectDatamodel.Project {
		return &projectDatamodel.Project{
			Name:               "intranet-revamp",
			Type:               "Desarrollo",
			StartDate:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			IdealDeliveryDate:  time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
			AvailableHours:     1200,
			AvailableEmployees: 4,
			Budget:             85000,
			CommercialManager:  "22222222B",
			TechnicalManager:   "33333333C",
			ProposalID:         proposalID,
		}
	}

	Describe("CreateFromProposal", func() {
		var proposal *projectDatamodel.Proposal

		BeforeEach(func() {
			seedStaff()
			proposal = &projectDatamodel.Proposal{
				State:                 projectDatamodel.ProposalStatePending,
				FilesDir:              "data/proposals/intranet-revamp",
				CommercialEmployeeDNI: "22222222B",
				TechnicalEmployeeDNI:  "33333333C",
			}
			Expect(db.Create(proposal).Error).To(Succeed())
		})

		It("approves the proposal, inserts the project and reassigns both managers", func() {
			row := newProjectRow(proposal.ID)
			Expect(repo.CreateFromProposal(proposal, row)).To(Succeed())
			Expect(row.ID).To(BeNumerically(">", 0))

			var storedProposal projectDatamodel.Proposal
			Expect(db.First(&storedProposal, proposal.ID).Error).To(Succeed())
			Expect(storedProposal.State).To(Equal(projectDatamodel.ProposalStateApproved))

			for _, dni := range []string{"22222222B", "33333333C"} {
				var emp employeeDatamodel.Employee
				Expect(db.Where("dni = ?", dni).First(&emp).Error).To(Succeed())
				Expect(emp.AssignedProjectID).NotTo(BeNil())
				Expect(*emp.AssignedProjectID).To(Equal(row.ID))
			}
		})

		It("rolls the proposal approval back when the manager reassignment fails", func() {
			Expect(db.Exec("DROP TABLE employees").Error).To(Succeed())

			err := repo.CreateFromProposal(proposal, newProjectRow(proposal.ID))
			Expect(err).To(HaveOccurred())

			var storedProposal projectDatamodel.Proposal
			Expect(db.First(&storedProposal, proposal.ID).Error).To(Succeed())
			Expect(storedProposal.State).To(Equal(projectDatamodel.ProposalStatePending))

			var count int64
			Expect(db.Model(&projectDatamodel.Project{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("leaves an approved proposal's state alone", func() {
			Expect(db.Model(proposal).Update("state", projectDatamodel.ProposalStateApproved).Error).To(Succeed())
			proposal.State = projectDatamodel.ProposalStateApproved

			Expect(repo.CreateFromProposal(proposal, newProjectRow(proposal.ID))).To(Succeed())

			var storedProposal projectDatamodel.Proposal
			Expect(db.First(&storedProposal, proposal.ID).Error).To(Succeed())
			Expect(storedProposal.State).To(Equal(projectDatamodel.ProposalStateApproved))
		})
	})

	Describe("GetByID and GetProposal", func() {
		It("returns nil without an error when the row does not exist", func() {
			row, err := repo.GetByID(99)
			Expect(err).NotTo(HaveOccurred())
			Expect(row).To(BeNil())

			prop, err := repo.GetProposal(99)
			Expect(err).NotTo(HaveOccurred())
			Expect(prop).To(BeNil())
		})
	})

	Describe("ListEmployees", func() {
		It("returns only the employees assigned to the project", func() {
			seedStaff()
			proposal := &projectDatamodel.Proposal{
				State:                 projectDatamodel.ProposalStatePending,
				FilesDir:              "data/proposals/intranet-revamp",
				CommercialEmployeeDNI: "22222222B",
				TechnicalEmployeeDNI:  "33333333C",
			}
			Expect(db.Create(proposal).Error).To(Succeed())
			row := newProjectRow(proposal.ID)
			Expect(repo.CreateFromProposal(proposal, row)).To(Succeed())

			rows, err := repo.ListEmployees(row.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))

			rows, err = repo.ListEmployees(row.ID + 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})
})
