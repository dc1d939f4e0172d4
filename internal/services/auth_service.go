package services

import (
	"crypto/subtle"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the submitted email/password pair
// does not match the configured admin secrets.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// AuthService implements the session gate: it authenticates the single
// configured admin and issues short-lived signed session tokens.
type AuthService struct {
	adminEmail    string
	adminPassword string
	jwtSecret     []byte
	tokenDurat    time.Duration // Duration for which the session token is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminEmail, adminPassword, jwtSecret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		jwtSecret:     []byte(jwtSecret),
		tokenDurat:    ttl,
	}
}

// TokenTTL returns the configured session token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenDurat
}

// Login checks the submitted credentials against the configured secrets and
// returns a signed session token on success. Comparison is constant-time;
// when the configured password is a bcrypt hash the submission is verified
// against the hash instead of compared literally.
func (s *AuthService) Login(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	if !emailOK || !s.passwordMatches(password) {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat": time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return tokenString, nil
}

func (s *AuthService) passwordMatches(password string) bool {
	if strings.HasPrefix(s.adminPassword, "$2a$") || strings.HasPrefix(s.adminPassword, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}

// VerifyToken parses and validates a session token. Expired or tampered
// tokens put the request back into the anonymous state.
func (s *AuthService) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Session token validation error: %v", err)
		return fmt.Errorf("invalid session token: %w", err)
	}

	if !token.Valid {
		return fmt.Errorf("invalid session token")
	}

	return nil
}
