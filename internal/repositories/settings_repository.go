package repositories

import (
	"database/sql"
	"errors"

	intconfig "fleetadmin/internal/config"
	"fleetadmin/internal/domain"
)

// SettingsRepository stores per-user preferences in user_settings.
// UserID 0 holds the shared anonymous preferences.
type SettingsRepository struct {
	DB     *sql.DB
	UserID int64
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SettingsRepository) Get(key string) (string, bool, error) {
	db := r.db()
	if db == nil {
		return "", false, domain.InternalError{Msg: "database belum terhubung"}
	}
	var value sql.NullString
	err := db.QueryRow(`
		SELECT setting_value
		FROM user_settings
		WHERE user_id = ? AND setting_key = ?
		LIMIT 1
	`, r.UserID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value.String, value.Valid, nil
}

func (r SettingsRepository) Set(key, value string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database belum terhubung"}
	}
	_, err := db.Exec(`
		INSERT INTO user_settings (user_id, setting_key, setting_value, updated_at)
		VALUES (?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value), updated_at = NOW()
	`, r.UserID, key, value)
	return err
}
