package services

import (
	"fmt"
	"time"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/utils"
)

// VehicleLister supplies the vehicle snapshot a pass works on.
type VehicleLister interface {
	ListVehicleRecords() ([]models.VehicleRecord, error)
}

// UpcomingServicesService runs the full pipeline: load, build, stats, filter, sort, render.
type UpcomingServicesService struct {
	Vehicles  VehicleLister
	Columns   ColumnStore
	Now       func() time.Time
	RequestID string
}

// UpcomingServices is one rendered pass of the upcoming services table.
type UpcomingServices struct {
	Columns  models.ColumnVisibility `json:"columns"`
	Headers  []string                `json:"headers"`
	Entries  []models.ServiceEntry   `json:"entries"`
	Rows     []ServiceRow            `json:"rows"`
	Stats    ServiceStats            `json:"stats"`
	Total    int                     `json:"total"`
	Filtered int                     `json:"filtered"`
}

// List builds the list from a fresh vehicle snapshot. Stats cover every entry;
// Entries and Rows are filtered and sorted.
func (s UpcomingServicesService) List(f models.FilterState) (UpcomingServices, error) {
	vehicles, err := s.vehicles().ListVehicleRecords()
	if err != nil {
		return UpcomingServices{}, err
	}

	all := BuildServiceList(vehicles, s.today())
	entries := SortServiceEntries(ApplyServiceFilters(all, f))
	cols := s.Columns.VisibleColumns()

	headers := make([]string, 0, len(models.ColumnOrder))
	for _, c := range cols.Visible() {
		headers = append(headers, ColumnHeader(c, true))
	}

	utils.LogEvent(s.RequestID, "upcoming", "list", fmt.Sprintf("vehicles=%d total=%d filtered=%d", len(vehicles), len(all), len(entries)))

	return UpcomingServices{
		Columns:  cols,
		Headers:  headers,
		Entries:  entries,
		Rows:     BuildServiceRows(entries, cols),
		Stats:    ComputeServiceStats(all, len(vehicles)),
		Total:    len(all),
		Filtered: len(entries),
	}, nil
}

// Stats summarizes the unfiltered list.
func (s UpcomingServicesService) Stats() (ServiceStats, error) {
	vehicles, err := s.vehicles().ListVehicleRecords()
	if err != nil {
		return ServiceStats{}, err
	}
	return ComputeServiceStats(BuildServiceList(vehicles, s.today()), len(vehicles)), nil
}

func (s UpcomingServicesService) today() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s UpcomingServicesService) vehicles() VehicleLister {
	if s.Vehicles != nil {
		return s.Vehicles
	}
	return repositories.VehicleRepository{}
}
