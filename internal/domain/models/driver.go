package models

// Driver mirrors the drivers table. VehicleID is the assigned vehicle, at most one driver per vehicle.
type Driver struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseExpiry string `json:"licenseExpiry"`
	VehicleID     string `json:"vehicle,omitempty"`
	Phone         string `json:"phone,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`

	// LicenseState is "expired", "expiring" (under 30 days) or "valid".
	LicenseState    string `json:"licenseState"`
	DaysUntilExpiry *int   `json:"daysUntilExpiry,omitempty"`
}

type DriverPayload struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	LicenseExpiry string `json:"licenseExpiry" binding:"required"`
	VehicleID     string `json:"vehicle"`
	Phone         string `json:"phone"`
}

const (
	LicenseExpired  = "expired"
	LicenseExpiring = "expiring"
	LicenseValid    = "valid"
)
