package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSettingsRepositoryGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM user_settings").WithArgs(int64(3), "upcomingServicesColumns").
		WillReturnRows(sqlmock.NewRows([]string{"setting_value"}).AddRow(`{"vehicle":true}`))
	mock.ExpectQuery("FROM user_settings").WithArgs(int64(3), "missing").
		WillReturnRows(sqlmock.NewRows([]string{"setting_value"}))

	repo := SettingsRepository{DB: db, UserID: 3}
	v, ok, err := repo.Get("upcomingServicesColumns")
	if err != nil || !ok || v != `{"vehicle":true}` {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}
	v, ok, err = repo.Get("missing")
	if err != nil || ok || v != "" {
		t.Fatalf("missing key = %q, %v, %v", v, ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingsRepositorySet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO user_settings .* ON DUPLICATE KEY UPDATE").
		WithArgs(int64(0), "upcomingServicesColumns", `{"status":false}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := (SettingsRepository{DB: db}).Set("upcomingServicesColumns", `{"status":false}`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
