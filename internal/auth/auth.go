package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Role is an employee's area, doubling as the authorization role.
type Role string

const (
	RoleCommercial  Role = "Comercial"
	RoleHR          Role = "RRHH"
	RoleTechnical   Role = "Tecnica"
	RoleDevelopment Role = "Desarrollo"
)

// legacyTechnicalSpelling survives in older employee rows; ParseRole folds
// it into RoleTechnical so policy checks see one canonical value.
const legacyTechnicalSpelling = "Tecnico"

func ParseRole(area string) (Role, error) {
	switch area {
	case string(RoleCommercial):
		return RoleCommercial, nil
	case string(RoleHR):
		return RoleHR, nil
	case string(RoleTechnical), legacyTechnicalSpelling:
		return RoleTechnical, nil
	case string(RoleDevelopment):
		return RoleDevelopment, nil
	}
	return "", ErrUnknownRole
}

func (r Role) Valid() bool {
	switch r {
	case RoleCommercial, RoleHR, RoleTechnical, RoleDevelopment:
		return true
	}
	return false
}

// Caller is the authenticated employee acting on a request. It is loaded
// fresh from the store by the auth middleware, never cached across requests.
type Caller struct {
	DNI               string `json:"dni"`
	Role              Role   `json:"role"`
	AssignedProjectID *int64 `json:"assigned_project_id,omitempty"`
}

// AssignedTo reports whether the caller is currently assigned to projectID.
func (c *Caller) AssignedTo(projectID int64) bool {
	return c.AssignedProjectID != nil && *c.AssignedProjectID == projectID
}

type Claims struct {
	DNI      string `json:"dni"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthTokens struct {
	AccessToken string `json:"access_token"`
}

type JWTTokenGenerator struct {
	Secret         []byte
	AccessTokenTTL time.Duration
}

func (g *JWTTokenGenerator) GenerateAccessToken(dni, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		DNI:      dni,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.AccessTokenTTL)),
			Subject:   dni,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.Secret)
}

func (g *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return g.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnknownRole        = errors.New("unknown role")
)

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type callerCtxKey struct{}

func ContextWithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, callerCtxKey{}, caller)
}

func CallerFromContext(ctx context.Context) (*Caller, bool) {
	caller, ok := ctx.Value(callerCtxKey{}).(*Caller)
	return caller, ok
}
