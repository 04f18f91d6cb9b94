package models

// MaintenanceRecord mirrors maintenance_records.
type MaintenanceRecord struct {
	ID             int64  `json:"id"`
	VehicleID      string `json:"vehicle"`
	Date           string `json:"date"`
	Type           string `json:"type"`
	NextKilometers *int64 `json:"nextKilometers,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type MaintenancePayload struct {
	VehicleID      string `json:"vehicle" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Type           string `json:"type" binding:"required"`
	NextKilometers *int64 `json:"nextKilometers"`
	Notes          string `json:"notes"`
}
