package models

// VehicleRecord is a vehicle row as delivered by the data source.
// Numeric fields keep their raw text because spreadsheet exports carry
// thousands separators and blanks.
type VehicleRecord struct {
	VehicleID           string `json:"vehicleId"`
	LicensePlate        string `json:"licensePlate"`
	VehicleType         string `json:"vehicleType,omitempty"`
	Model               string `json:"model,omitempty"`
	VehicleStatus       string `json:"vehicleStatus,omitempty"`
	DriverName          string `json:"driverName,omitempty"`
	CurrentLocation     string `json:"currentLocation,omitempty"`
	CurrentKm           string `json:"currentKm,omitempty"`
	KmToNextMaintenance string `json:"kmToNextMaintenance,omitempty"`
	KmLeftForTireChange string `json:"kmLeftForTireChange,omitempty"`
	DaysToRenewLicense  string `json:"daysToRenewLicense,omitempty"`
	LicenseRenewalDate  string `json:"licenseRenewalDate,omitempty"`
	LastMaintenanceDate string `json:"lastMaintenanceDate,omitempty"`
}

// VehiclePayload is the create/update body for vehicles.
type VehiclePayload struct {
	VehicleID           string `json:"vehicleId"`
	LicensePlate        string `json:"licensePlate" binding:"required"`
	VehicleType         string `json:"vehicleType"`
	Model               string `json:"model"`
	VehicleStatus       string `json:"vehicleStatus"`
	DriverName          string `json:"driverName"`
	CurrentLocation     string `json:"currentLocation"`
	CurrentKm           string `json:"currentKm"`
	KmToNextMaintenance string `json:"kmToNextMaintenance"`
	KmLeftForTireChange string `json:"kmLeftForTireChange"`
	DaysToRenewLicense  string `json:"daysToRenewLicense"`
	LicenseRenewalDate  string `json:"licenseRenewalDate"` // YYYY-MM-DD or empty
}

func (p VehiclePayload) ToRecord() VehicleRecord {
	return VehicleRecord{
		VehicleID:           p.VehicleID,
		LicensePlate:        p.LicensePlate,
		VehicleType:         p.VehicleType,
		Model:               p.Model,
		VehicleStatus:       p.VehicleStatus,
		DriverName:          p.DriverName,
		CurrentLocation:     p.CurrentLocation,
		CurrentKm:           p.CurrentKm,
		KmToNextMaintenance: p.KmToNextMaintenance,
		KmLeftForTireChange: p.KmLeftForTireChange,
		DaysToRenewLicense:  p.DaysToRenewLicense,
		LicenseRenewalDate:  p.LicenseRenewalDate,
	}
}
