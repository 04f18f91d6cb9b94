package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/services"
	"fleetadmin/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

func columnStore(c *gin.Context) services.ColumnStore {
	rc := requestContext(c)
	return services.ColumnStore{
		Store:     repositories.SettingsRepository{UserID: rc.UserID},
		RequestID: rc.RequestID,
	}
}

func upcomingService(c *gin.Context) services.UpcomingServicesService {
	return services.UpcomingServicesService{
		Vehicles:  repositories.VehicleRepository{},
		Columns:   columnStore(c),
		RequestID: requestContext(c).RequestID,
	}
}

// filterFromQuery reads ?types=maintenance,tires&statuses=required.
func filterFromQuery(c *gin.Context) models.FilterState {
	return services.ParseFilterState(utils.SplitList(c.Query("types")), utils.SplitList(c.Query("statuses")))
}

// GET /api/upcoming-services
func GetUpcomingServices(c *gin.Context) {
	res, err := upcomingService(c).List(filterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/upcoming-services/stats
func GetUpcomingServiceStats(c *gin.Context) {
	st, err := upcomingService(c).Stats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// GET /api/upcoming-services/columns
func GetServiceColumns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"columns": columnStore(c).VisibleColumns()})
}

// POST /api/upcoming-services/columns/:name/toggle
func ToggleServiceColumn(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	cols, ok := columnStore(c).ToggleColumn(name)
	if !ok {
		if (&models.ColumnVisibility{}).Field(name) == nil {
			RespondDomainError(c, domain.ValidationError{Field: "name", Msg: fmt.Sprintf("kolom %q tidak dikenal", name)})
			return
		}
		respondError(c, http.StatusConflict, "last_visible_column", "minimal satu kolom harus tetap ditampilkan", gin.H{"columns": cols})
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": cols})
}

// POST /api/upcoming-services/columns/reset
func ResetServiceColumns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"columns": columnStore(c).ResetToDefault()})
}

// GET /api/upcoming-services/export?format=xlsx|pdf
func ExportUpcomingServices(c *gin.Context) {
	svc := services.ExportService{
		Upcoming:  upcomingService(c),
		RequestID: requestContext(c).RequestID,
	}
	filter := filterFromQuery(c)

	var (
		data     []byte
		filename string
		mime     string
		err      error
	)
	switch format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "xlsx"))); format {
	case "xlsx":
		data, filename, err = svc.UpcomingServicesXLSX(filter)
		mime = mimeXLSX
	case "pdf":
		data, filename, err = svc.UpcomingServicesPDF(filter)
		mime = mimePDF
	default:
		err = domain.ValidationError{Field: "format", Msg: "format harus xlsx atau pdf"}
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mime, data)
}
