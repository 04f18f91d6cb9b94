package services

import (
	"fmt"
	"strings"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/utils"
)

const minPasswordLen = 6

// UserService manages dashboard accounts.
type UserService struct {
	Repo      repositories.UserRepository
	RequestID string
}

// Create validates p, hashes the password and stores an active account.
func (s UserService) Create(p models.UserPayload) (models.User, error) {
	u := models.User{
		Name:     utils.NormalizeSpace(p.Name),
		Username: strings.TrimSpace(p.Username),
		Email:    strings.ToLower(strings.TrimSpace(p.Email)),
		Role:     strings.ToLower(strings.TrimSpace(p.Role)),
		Status:   "active",
	}
	switch {
	case u.Name == "":
		return models.User{}, domain.ValidationError{Field: "name", Msg: "name wajib diisi"}
	case !strings.Contains(u.Email, "@"):
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email tidak valid"}
	case len(p.Password) < minPasswordLen:
		return models.User{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("password minimal %d karakter", minPasswordLen)}
	case !models.ValidRole(u.Role):
		return models.User{}, domain.ValidationError{Field: "role", Msg: "role harus admin, manager atau employee"}
	}

	hash, err := HashPassword(p.Password)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "gagal memproses password", Err: err}
	}
	u.PasswordHash = hash

	id, err := s.Repo.Create(u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	utils.LogEvent(s.RequestID, "users", "create", fmt.Sprintf("id=%d role=%s", id, u.Role))
	return u, nil
}

func (s UserService) List() ([]models.User, error) {
	return s.Repo.List()
}
