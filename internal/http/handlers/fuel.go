package handlers

import (
	"net/http"
	"strings"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func fuelService(c *gin.Context) services.FuelService {
	return services.FuelService{
		Repo:        repositories.FuelRepository{},
		VehicleRepo: repositories.VehicleRepository{},
		RequestID:   requestContext(c).RequestID,
	}
}

// GET /api/fuel?vehicle=V-001
func GetFuelRecords(c *gin.Context) {
	list, err := repositories.FuelRepository{}.List(strings.TrimSpace(c.Query("vehicle")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/fuel/:id
func GetFuelRecord(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	rec, err := repositories.FuelRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/fuel
func CreateFuelRecord(c *gin.Context) {
	var payload models.FuelPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	rec, err := fuelService(c).Record(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "data BBM berhasil ditambahkan", "record": rec})
}

// PUT /api/fuel/:id
func UpdateFuelRecord(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var payload models.FuelPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	rec, err := fuelService(c).Update(id, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data BBM berhasil diupdate", "record": rec})
}

// DELETE /api/fuel/:id
func DeleteFuelRecord(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := (repositories.FuelRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data BBM berhasil dihapus"})
}
