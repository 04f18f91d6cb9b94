package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBName      string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads configuration from the environment after loading an optional .env file.
// Variables already set in the environment win over the file.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: gagal membaca .env: %v", err)
	}

	env := Env{
		AppAddr:     getenv("APP_ADDR", ":8080"),
		GinMode:     getenv("GIN_MODE", ""),
		DBUser:      getenv("DB_USER", "root"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:      getenv("DB_NAME", "fleet_admin"),
		JWTSecret:   getenv("JWT_SECRET", "change-me-fleet-admin-secret"),
		JWTTTL:      24 * time.Hour,
		CORSOrigins: defaultCORSOrigins,
	}

	if raw := getenv("JWT_TTL_HOURS", ""); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h > 0 {
			env.JWTTTL = time.Duration(h) * time.Hour
		} else {
			log.Printf("warning: JWT_TTL_HOURS tidak valid (%q), memakai default", raw)
		}
	}

	if raw := getenv("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		env.CORSOrigins = origins
	}

	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
