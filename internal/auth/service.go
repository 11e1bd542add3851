package auth

import (
	"log/slog"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetCaller(dni string) (*Caller, error)
}

type RepositoryAPI interface {
	GetCredential(username string) (passwordHash string, dni string, err error)
	GetCaller(dni string) (*Caller, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(dni, username string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	repo   RepositoryAPI
	tokens TokenGeneratorAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	passwordHash, dni, err := s.repo.GetCredential(dto.Username)
	if err != nil {
		s.logger.Warn("login failed: credential lookup", "username", dto.Username, "error", err)
		return AuthTokens{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(passwordHash, dto.Password); err != nil {
		s.logger.Warn("login failed: password mismatch", "username", dto.Username)
		return AuthTokens{}, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(dni, dto.Username)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err, "dni", dni)
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: accessToken}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

// GetCaller loads the acting employee's identity attributes for
// authorization checks. No caching: assignments change between requests.
func (s *Service) GetCaller(dni string) (*Caller, error) {
	return s.repo.GetCaller(dni)
}
