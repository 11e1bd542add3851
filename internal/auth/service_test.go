package auth_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gestionat/hr-management/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements auth.RepositoryAPI for testing
type MockRepository struct {
	credentials map[string]struct {
		hash string
		dni  string
	}
	callers    map[string]*auth.Caller
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		credentials: make(map[string]struct {
			hash string
			dni  string
		}),
		callers: make(map[string]*auth.Caller),
	}
}

func (m *MockRepository) AddCredential(username, password, dni string) {
	hash, err := auth.HashPassword(password, 4)
	Expect(err).NotTo(HaveOccurred())
	m.credentials[username] = struct {
		hash string
		dni  string
	}{hash: hash, dni: dni}
}

func (m *MockRepository) GetCredential(username string) (string, string, error) {
	if m.shouldFail {
		return "", "", m.failError
	}
	cred, exists := m.credentials[username]
	if !exists {
		return "", "", errors.New("credential not found")
	}
	return cred.hash, cred.dni, nil
}

func (m *MockRepository) GetCaller(dni string) (*auth.Caller, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	c, exists := m.callers[dni]
	if !exists {
		return nil, errors.New("employee not found")
	}
	return c, nil
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockRepository
		service  *auth.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		tokens := &auth.JWTTokenGenerator{
			Secret:         []byte("test-secret"),
			AccessTokenTTL: time.Minute,
		}
		service = auth.NewService(mockRepo, tokens, logger)
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			mockRepo.AddCredential("mserrano", "password", "11111111A")
		})

		It("issues a token for valid credentials", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "mserrano", Password: "password"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.DNI).To(Equal("11111111A"))
			Expect(claims.Username).To(Equal("mserrano"))
		})

		It("rejects a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "mserrano", Password: "wrong"})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("rejects an unknown username", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "nobody", Password: "password"})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("rejects an empty login before touching the repository", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("must not be called")

			_, err := service.Authenticate(auth.LoginDTO{})
			Expect(err).To(BeAssignableToTypeOf(auth.ValidationError{}))
		})
	})

	Describe("ValidateAccessToken", func() {
		It("rejects a token signed with another secret", func() {
			other := &auth.JWTTokenGenerator{Secret: []byte("other-secret"), AccessTokenTTL: time.Minute}
			token, err := other.GenerateAccessToken("11111111A", "mserrano")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an expired token", func() {
			expired := &auth.JWTTokenGenerator{Secret: []byte("test-secret"), AccessTokenTTL: -time.Minute}
			token, err := expired.GenerateAccessToken("11111111A", "mserrano")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetCaller", func() {
		It("loads the caller's role and assignment", func() {
			projectID := int64(7)
			mockRepo.callers["11111111A"] = &auth.Caller{
				DNI:               "11111111A",
				Role:              auth.RoleTechnical,
				AssignedProjectID: &projectID,
			}

			c, err := service.GetCaller("11111111A")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Role).To(Equal(auth.RoleTechnical))
			Expect(c.AssignedTo(7)).To(BeTrue())
		})
	})
})
