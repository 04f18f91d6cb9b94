package services

import (
	"testing"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceCreateHashesPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Siti Aminah", "siti", "siti@fleet.local", sqlmock.AnyArg(), models.RoleManager, "active").
		WillReturnResult(sqlmock.NewResult(21, 1))

	svc := UserService{Repo: repositories.UserRepository{DB: db}}
	u, err := svc.Create(models.UserPayload{
		Name:     "Siti  Aminah",
		Username: "siti",
		Email:    " Siti@Fleet.local ",
		Password: "rahasia123",
		Role:     "Manager",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.ID != 21 || u.Status != "active" {
		t.Fatalf("unexpected user %+v", u)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia123")) != nil {
		t.Fatalf("password hash does not match")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserServiceCreateValidates(t *testing.T) {
	svc := UserService{}
	bad := []models.UserPayload{
		{Email: "a@b.c", Password: "rahasia", Role: models.RoleAdmin},
		{Name: "A", Email: "ab.c", Password: "rahasia", Role: models.RoleAdmin},
		{Name: "A", Email: "a@b.c", Password: "123", Role: models.RoleAdmin},
		{Name: "A", Email: "a@b.c", Password: "rahasia", Role: "owner"},
	}
	for _, p := range bad {
		if _, err := svc.Create(p); !domain.IsValidation(err) {
			t.Fatalf("%+v: expected validation error, got %v", p, err)
		}
	}
}
