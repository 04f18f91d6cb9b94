package handlers

import (
	"net/http"
	"strings"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func driverService(c *gin.Context) services.DriverService {
	return services.DriverService{
		Repo:        repositories.DriverRepository{},
		VehicleRepo: repositories.VehicleRepository{},
		RequestID:   requestContext(c).RequestID,
	}
}

// GET /api/drivers?vehicle=V-001
func GetDrivers(c *gin.Context) {
	list, err := driverService(c).List(strings.TrimSpace(c.Query("vehicle")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/drivers/:id
func GetDriver(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	d, err := driverService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var payload models.DriverPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	d, err := driverService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "driver berhasil ditambahkan", "driver": d})
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var payload models.DriverPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	d, err := driverService(c).Update(id, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver berhasil diupdate", "driver": d})
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := (repositories.DriverRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver berhasil dihapus"})
}
