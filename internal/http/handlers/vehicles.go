package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/services"

	"github.com/gin-gonic/gin"
)

const maxImportBytes = 10 << 20

func vehicleService(c *gin.Context) services.VehicleService {
	return services.VehicleService{
		Repo:      repositories.VehicleRepository{},
		RequestID: requestContext(c).RequestID,
	}
}

// GET /api/vehicles?q=B12&page=1&limit=50
func GetVehicles(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	page := domain.Pagination{}
	if pageStr, limitStr := strings.TrimSpace(c.Query("page")), strings.TrimSpace(c.Query("limit")); pageStr != "" && limitStr != "" {
		p, _ := strconv.Atoi(pageStr)
		limit, _ := strconv.Atoi(limitStr)
		if p < 1 {
			p = 1
		}
		if limit < 1 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}
		page = domain.Pagination{Page: p, PageSize: limit}
	}

	list, err := repositories.VehicleRepository{}.List(q, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/vehicles/:id
func GetVehicle(c *gin.Context) {
	v, err := repositories.VehicleRepository{}.GetByID(strings.TrimSpace(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var payload models.VehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	v, err := vehicleService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "kendaraan berhasil ditambahkan", "id": v.VehicleID, "vehicle": v})
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	var payload models.VehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	v, err := vehicleService(c).Update(c.Param("id"), payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kendaraan berhasil diupdate", "vehicle": v})
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	if err := (repositories.VehicleRepository{}).Delete(strings.TrimSpace(c.Param("id"))); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kendaraan berhasil dihapus"})
}

// POST /api/vehicles/import (multipart field "file", XLSX)
func ImportVehicles(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "file wajib diunggah", Err: err})
		return
	}
	f, err := fh.Open()
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "file tidak bisa dibaca", Err: err})
		return
	}
	defer f.Close()

	res, err := vehicleService(c).Import(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
