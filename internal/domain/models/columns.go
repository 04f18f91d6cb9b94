package models

// Column names of the upcoming services table.
const (
	ColumnVehicle      = "vehicle"
	ColumnServiceType  = "serviceType"
	ColumnExpectedDate = "expectedDate"
	ColumnStatus       = "status"
	ColumnRemaining    = "remaining"
)

// ColumnOrder is the render and export order of the columns.
var ColumnOrder = []string{ColumnVehicle, ColumnServiceType, ColumnExpectedDate, ColumnStatus, ColumnRemaining}

// ColumnVisibility is the persisted show/hide preference of the table columns.
type ColumnVisibility struct {
	Vehicle      bool `json:"vehicle"`
	ServiceType  bool `json:"serviceType"`
	ExpectedDate bool `json:"expectedDate"`
	Status       bool `json:"status"`
	Remaining    bool `json:"remaining"`
}

func DefaultColumnVisibility() ColumnVisibility {
	return ColumnVisibility{Vehicle: true, ServiceType: true, ExpectedDate: true, Status: true, Remaining: true}
}

// Field returns a pointer to the named column flag, or nil for unknown names.
func (c *ColumnVisibility) Field(name string) *bool {
	switch name {
	case ColumnVehicle:
		return &c.Vehicle
	case ColumnServiceType:
		return &c.ServiceType
	case ColumnExpectedDate:
		return &c.ExpectedDate
	case ColumnStatus:
		return &c.Status
	case ColumnRemaining:
		return &c.Remaining
	}
	return nil
}

// IsVisible reports the flag of a named column; unknown names are hidden.
func (c ColumnVisibility) IsVisible(name string) bool {
	if f := c.Field(name); f != nil {
		return *f
	}
	return false
}

// VisibleCount counts the columns currently shown.
func (c ColumnVisibility) VisibleCount() int {
	n := 0
	for _, name := range ColumnOrder {
		if c.IsVisible(name) {
			n++
		}
	}
	return n
}

// Visible returns the shown column names in ColumnOrder.
func (c ColumnVisibility) Visible() []string {
	out := []string{}
	for _, name := range ColumnOrder {
		if c.IsVisible(name) {
			out = append(out, name)
		}
	}
	return out
}
