package vacation_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/gestionat/hr-management/internal/auth"
	vacationDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/vacation"
	"github.com/gestionat/hr-management/internal/core/events"
	"github.com/gestionat/hr-management/internal/vacation"
	vacationPostgres "github.com/gestionat/hr-management/internal/vacation/postgres"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("Vacation Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
		caller *auth.Caller
	)

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req = req.WithContext(auth.ContextWithCaller(req.Context(), caller))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&vacationDatamodel.VacationRequest{})).To(Succeed())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := vacation.NewService(
			vacationPostgres.NewVacationRepository(db),
			events.NewEventBus(slogger),
			slogger,
		)
		handler := vacation.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/vacations", handler.ListVacations)
		router.Patch("/vacations/{vacationID}", handler.PatchVacation)
		router.Get("/employees/{employeeID}/vacations", handler.ListEmployeeVacations)
		router.Post("/employees/{employeeID}/vacations", handler.CreateVacation)

		caller = &auth.Caller{DNI: "11111111A", Role: auth.RoleHR}
	})

	Describe("POST /employees/{employeeID}/vacations", func() {
		BeforeEach(func() {
			caller = &auth.Caller{DNI: "44444444D", Role: auth.RoleDevelopment}
		})

		It("files the request and answers 204", func() {
			w := serve(http.MethodPost, "/employees/44444444D/vacations",
				`{"requestedDays": 5, "from": "2026-09-14"}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())

			var stored vacationDatamodel.VacationRequest
			Expect(db.First(&stored).Error).To(Succeed())
			Expect(stored.EmployeeDNI).To(Equal("44444444D"))
			Expect(stored.State).To(Equal(vacationDatamodel.StateUnderReview))
		})

		It("answers 403 with an empty body when filing for somebody else", func() {
			w := serve(http.MethodPost, "/employees/33333333C/vacations",
				`{"requestedDays": 5, "from": "2026-09-14"}`)
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(w.Body.Len()).To(BeZero())
		})

		It("answers 400 naming the missing field", func() {
			w := serve(http.MethodPost, "/employees/44444444D/vacations",
				`{"from": "2026-09-14"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("requestedDays"))
		})
	})

	Describe("GET /vacations", func() {
		BeforeEach(func() {
			Expect(db.Create(&vacationDatamodel.VacationRequest{
				EmployeeDNI:   "44444444D",
				RequestedDays: 5,
				State:         vacationDatamodel.StateUnderReview,
				StartDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			}).Error).To(Succeed())
		})

		It("returns the full listing for HR", func() {
			w := serve(http.MethodGet, "/vacations", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var response []vacation.VacationRequest
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response).To(HaveLen(1))
			Expect(response[0].EmployeeDNI).To(Equal("44444444D"))
		})

		It("answers 403 for everyone else", func() {
			caller = &auth.Caller{DNI: "33333333C", Role: auth.RoleTechnical}
			w := serve(http.MethodGet, "/vacations", "")
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("PATCH /vacations/{vacationID}", func() {
		var id int64

		BeforeEach(func() {
			request := &vacationDatamodel.VacationRequest{
				EmployeeDNI:   "44444444D",
				RequestedDays: 5,
				State:         vacationDatamodel.StateUnderReview,
				StartDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			}
			Expect(db.Create(request).Error).To(Succeed())
			id = request.ID
		})

		It("updates the state and answers 204", func() {
			w := serve(http.MethodPatch, "/vacations/1", `{"state": "Aprobado"}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			var stored vacationDatamodel.VacationRequest
			Expect(db.First(&stored, id).Error).To(Succeed())
			Expect(stored.State).To(Equal("Aprobado"))
			Expect(stored.RequestedDays).To(Equal(5))
		})

		It("treats an empty patch as a 204 no-op", func() {
			w := serve(http.MethodPatch, "/vacations/1", `{}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			var stored vacationDatamodel.VacationRequest
			Expect(db.First(&stored, id).Error).To(Succeed())
			Expect(stored.State).To(Equal(vacationDatamodel.StateUnderReview))
		})

		It("rejects a non-numeric id", func() {
			w := serve(http.MethodPatch, "/vacations/abc", `{"state": "Aprobado"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
