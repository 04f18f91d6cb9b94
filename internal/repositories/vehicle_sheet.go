package repositories

import (
	"io"
	"strconv"
	"strings"
	"time"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/utils"

	"github.com/xuri/excelize/v2"
)

// Header names used by the vehicles sheet of the spreadsheet backend.
const (
	SheetVehicleID           = "Vehicle ID"
	SheetLicensePlate        = "License Plate"
	SheetVehicleType         = "Vehicle Type"
	SheetModel               = "Model"
	SheetVehicleStatus       = "Vehicle Status"
	SheetDriverName          = "Driver Name"
	SheetCurrentLocation     = "Current Location"
	SheetCurrentKm           = "Current Km"
	SheetKmToNextMaintenance = "Km to next maintenance"
	SheetKmLeftForTireChange = "Km left for tire change"
	SheetDaysToRenewLicense  = "Days to renew license"
	SheetLicenseRenewalDate  = "License Renewal Date"
	SheetLastMaintenanceDate = "Last Maintenance Date"
)

// VehicleFromSheetRow maps a header-keyed spreadsheet row onto a VehicleRecord.
// Header lookup ignores case and surrounding spaces.
func VehicleFromSheetRow(row map[string]string) models.VehicleRecord {
	norm := make(map[string]string, len(row))
	for k, v := range row {
		norm[normalizeHeader(k)] = strings.TrimSpace(v)
	}
	get := func(h string) string { return norm[normalizeHeader(h)] }

	return models.VehicleRecord{
		VehicleID:           get(SheetVehicleID),
		LicensePlate:        get(SheetLicensePlate),
		VehicleType:         get(SheetVehicleType),
		Model:               get(SheetModel),
		VehicleStatus:       get(SheetVehicleStatus),
		DriverName:          get(SheetDriverName),
		CurrentLocation:     get(SheetCurrentLocation),
		CurrentKm:           get(SheetCurrentKm),
		KmToNextMaintenance: get(SheetKmToNextMaintenance),
		KmLeftForTireChange: get(SheetKmLeftForTireChange),
		DaysToRenewLicense:  get(SheetDaysToRenewLicense),
		LicenseRenewalDate:  get(SheetLicenseRenewalDate),
		LastMaintenanceDate: get(SheetLastMaintenanceDate),
	}
}

// ReadVehicleSheet reads the first worksheet of an XLSX workbook. The first row is
// the header; rows without a vehicle id are skipped. Cells are read raw, so date
// cells arrive as Excel serials for ParseSheetDate.
func ReadVehicleSheet(r io.Reader) ([]models.VehicleRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.ValidationError{Field: "file", Msg: "file excel tidak valid", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ValidationError{Field: "file", Msg: "workbook tidak memiliki sheet"}
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, domain.ValidationError{Field: "file", Msg: "gagal membaca sheet", Err: err}
	}
	if len(rows) == 0 {
		return []models.VehicleRecord{}, nil
	}

	header := rows[0]
	out := []models.VehicleRecord{}
	for _, cells := range rows[1:] {
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		v := VehicleFromSheetRow(row)
		if v.VehicleID == "" {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// Date layouts seen in vehicle sheets: ISO, US dates as the dashboard prints them,
// and short "mm-dd-yy" text exported by spreadsheet tools.
var sheetDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1-2-06",
	"1/2/06",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ParseSheetDate converts a date cell to YYYY-MM-DD. Raw Excel serials are
// accepted too. Blank cells give "", true; unreadable ones give "", false.
func ParseSheetDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return utils.FormatDate(t), true
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial >= 1 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return utils.FormatDate(t), true
		}
	}
	return "", false
}
