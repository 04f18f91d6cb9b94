package models

// FuelRecord is one refuelling entry. Consumption is distance per unit of fuel.
type FuelRecord struct {
	ID          int64   `json:"id"`
	VehicleID   string  `json:"vehicle"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Distance    float64 `json:"distance"`
	Consumption float64 `json:"consumption"`
	Cost        float64 `json:"cost"`
}

type FuelPayload struct {
	VehicleID string  `json:"vehicle" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	Amount    float64 `json:"amount"`
	Distance  float64 `json:"distance"`
	Cost      float64 `json:"cost"`
}
