package services

import (
	"fmt"
	"strings"
	"time"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the payload of dashboard session tokens.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type UserFinder interface {
	FindByLogin(login string) (models.User, error)
}

type AuthService struct {
	Users     UserFinder
	Secret    []byte
	TTL       time.Duration
	Now       func() time.Time
	RequestID string
}

var errBadCredentials = domain.UnauthorizedError{Msg: "Email/username atau password salah"}

// Login checks credentials and issues a signed HS256 token.
func (s AuthService) Login(login, password string) (string, models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", models.User{}, domain.ValidationError{Msg: "email/username dan password wajib diisi"}
	}

	user, err := s.users().FindByLogin(login)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, errBadCredentials
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, errBadCredentials
	}
	if strings.EqualFold(user.Status, "inactive") {
		return "", models.User{}, domain.UnauthorizedError{Msg: "akun tidak aktif"}
	}

	token, err := s.Issue(user)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d role=%s", user.ID, user.Role))
	return token, user, nil
}

// Issue signs a token for user.
func (s AuthService) Issue(user models.User) (string, error) {
	now := s.now()
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// ParseToken validates signature and expiry.
func (s AuthService) ParseToken(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return Claims{}, domain.UnauthorizedError{Msg: "token tidak valid", Err: err}
	}
	return claims, nil
}

// HashPassword returns a bcrypt hash suitable for users.password_hash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) users() UserFinder {
	if s.Users != nil {
		return s.Users
	}
	return repositories.UserRepository{}
}
