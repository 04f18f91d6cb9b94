package handlers

import (
	"net/http"
	"strings"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func maintenanceService(c *gin.Context) services.MaintenanceService {
	return services.MaintenanceService{
		Repo:        repositories.MaintenanceRepository{},
		VehicleRepo: repositories.VehicleRepository{},
		RequestID:   requestContext(c).RequestID,
	}
}

// GET /api/maintenance?vehicle=V-001
func GetMaintenanceRecords(c *gin.Context) {
	list, err := repositories.MaintenanceRepository{}.List(strings.TrimSpace(c.Query("vehicle")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/maintenance
func CreateMaintenanceRecord(c *gin.Context) {
	var payload models.MaintenancePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	id, err := maintenanceService(c).Record(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "data maintenance berhasil ditambahkan", "id": id})
}

// PUT /api/maintenance/:id
func UpdateMaintenanceRecord(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var payload models.MaintenancePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if err := maintenanceService(c).Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data maintenance berhasil diupdate"})
}

// DELETE /api/maintenance/:id
func DeleteMaintenanceRecord(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := (repositories.MaintenanceRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data maintenance berhasil dihapus"})
}
