package handlers

import (
	"net/http"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		Repo:      repositories.UserRepository{},
		RequestID: requestContext(c).RequestID,
	}
}

// GET /api/users
func GetUsers(c *gin.Context) {
	list, err := userService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var payload models.UserPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	u, err := userService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user berhasil ditambahkan", "user": u})
}
