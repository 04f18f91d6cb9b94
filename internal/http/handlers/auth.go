package handlers

import (
	"net/http"
	"sync"

	intconfig "fleetadmin/internal/config"
	"fleetadmin/internal/domain"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	authMu  sync.RWMutex
	authEnv = intconfig.Env{JWTSecret: "change-me-fleet-admin-secret"}
)

// ConfigureAuth sets the secret and token lifetime used by login and token checks.
func ConfigureAuth(env intconfig.Env) {
	authMu.Lock()
	defer authMu.Unlock()
	authEnv = env
}

func authService(requestID string) services.AuthService {
	authMu.RLock()
	env := authEnv
	authMu.RUnlock()
	return services.AuthService{
		Users:     repositories.UserRepository{},
		Secret:    []byte(env.JWTSecret),
		TTL:       env.JWTTTL,
		RequestID: requestID,
	}
}

// ParseToken adapts the auth service to middleware.TokenParser.
func ParseToken(token string) (int64, string, error) {
	claims, err := authService("").ParseToken(token)
	if err != nil {
		return 0, "", err
	}
	return claims.UserID, claims.Role, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, user, err := authService(requestContext(c).RequestID).Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	rc := requestContext(c)
	if rc.Anonymous() {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "sesi tidak valid"})
		return
	}
	user, err := repositories.UserRepository{}.GetByID(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": user})
}
