package admin

import (
	"strings"

	"rakshakmorcha/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

// adminID is the fixed identity carried in session tokens; there is
// exactly one admin account, defined by configuration.
const adminID = "admin"

// Service authenticates the single configured admin. The password is held
// only as a bcrypt hash: either supplied directly (ADMIN_PASSWORD_HASH) or
// derived once at construction from the configured plaintext.
type Service struct {
	email        string
	passwordHash []byte
	jwt          *jwt.Service
}

func NewService(email, password, passwordHash string, jwtService *jwt.Service) (*Service, error) {
	hash := []byte(passwordHash)
	if passwordHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	return &Service{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: hash,
		jwt:          jwtService,
	}, nil
}

// Login returns a signed session token iff both credentials match.
func (s *Service) Login(email, password string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.email) {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(adminID, s.email)
}
