package models

// ServiceKind is a category of upcoming vehicle service.
type ServiceKind string

const (
	ServiceMaintenance ServiceKind = "maintenance"
	ServiceTires       ServiceKind = "tires"
	ServiceLicense     ServiceKind = "license"
)

// ServiceKinds lists the kinds produced for every vehicle, in build order.
var ServiceKinds = []ServiceKind{ServiceMaintenance, ServiceTires, ServiceLicense}

// StatusCategory is the severity bucket of a service entry.
type StatusCategory string

const (
	StatusRequired StatusCategory = "required"
	StatusUpcoming StatusCategory = "upcoming"
	StatusGood     StatusCategory = "good"
	StatusUnknown  StatusCategory = "unknown"
)

// Priority orders categories from most to least urgent.
func (c StatusCategory) Priority() int {
	switch c {
	case StatusRequired:
		return 0
	case StatusUpcoming:
		return 1
	case StatusGood:
		return 2
	default:
		return 3
	}
}

// StatusInfo is the classification of one remaining value.
type StatusInfo struct {
	Category StatusCategory `json:"category"`
	Class    string         `json:"class"`
	Icon     string         `json:"icon"`
	Text     string         `json:"text"`
	Tooltip  string         `json:"tooltip"`
	Color    string         `json:"color"`
	Overdue  bool           `json:"overdue"`
}

// ServiceEntry is one (vehicle, kind) line of the upcoming services list.
type ServiceEntry struct {
	VehicleID    string      `json:"vehicleId"`
	DisplayLabel string      `json:"vehicle"`
	Kind         ServiceKind `json:"serviceType"`
	Remaining    float64     `json:"remaining"`
	ExpectedDate string      `json:"expectedDate"`
	Status       StatusInfo  `json:"status"`
}

// FilterState holds the user's kind/status selections. An empty slice means no filter.
type FilterState struct {
	Kinds    []ServiceKind    `json:"types"`
	Statuses []StatusCategory `json:"statuses"`
}

// RemainingText is a formatted remaining value; Overdue tags it for overdue styling.
type RemainingText struct {
	Text    string `json:"text"`
	Overdue bool   `json:"overdue"`
}
