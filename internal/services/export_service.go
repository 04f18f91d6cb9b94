package services

import (
	"bytes"
	"fmt"
	"time"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// UpcomingServicesSheet is the worksheet name of the XLSX export.
const UpcomingServicesSheet = "Upcoming Services"

// ExportService turns the filtered upcoming services list into downloadable files.
// Exported columns always match the columns shown in the table.
type ExportService struct {
	Upcoming  UpcomingServicesService
	RequestID string
}

func (s ExportService) exportRows(f models.FilterState) ([][]string, error) {
	res, err := s.Upcoming.List(f)
	if err != nil {
		return nil, err
	}
	if res.Columns.VisibleCount() == 0 {
		return nil, domain.ValidationError{Field: "columns", Msg: "make at least one column visible before exporting"}
	}
	rows := BuildExportRows(res.Entries, res.Columns)
	if len(rows) <= 1 {
		return nil, domain.ErrNoExportRows
	}
	return rows, nil
}

// UpcomingServicesXLSX renders the list on a single worksheet.
func (s ExportService) UpcomingServicesXLSX(f models.FilterState) ([]byte, string, error) {
	rows, err := s.exportRows(f)
	if err != nil {
		return nil, "", err
	}

	data, err := buildServicesWorkbook(rows)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat file excel", Err: err}
	}
	utils.LogEvent(s.RequestID, "export", "xlsx", fmt.Sprintf("rows=%d", len(rows)-1))
	return data, fmt.Sprintf("upcoming_services_%s.xlsx", utils.FileStamp(s.now())), nil
}

// UpcomingServicesPDF renders the same rows as a landscape table.
func (s ExportService) UpcomingServicesPDF(f models.FilterState) ([]byte, string, error) {
	rows, err := s.exportRows(f)
	if err != nil {
		return nil, "", err
	}

	data, err := buildServicesPDF(rows, s.now())
	if err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat file pdf", Err: err}
	}
	utils.LogEvent(s.RequestID, "export", "pdf", fmt.Sprintf("rows=%d", len(rows)-1))
	return data, fmt.Sprintf("upcoming_services_%s.pdf", utils.FileStamp(s.now())), nil
}

func (s ExportService) now() time.Time {
	return s.Upcoming.today()
}

func buildServicesWorkbook(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", UpcomingServicesSheet); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		r := row
		if err := f.SetSheetRow(UpcomingServicesSheet, cell, &r); err != nil {
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(UpcomingServicesSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(UpcomingServicesSheet, "A", lastCol, 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildServicesPDF(rows [][]string, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(UpcomingServicesSheet, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "UPCOMING SERVICES")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(generatedAt))
	pdf.Ln(10)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(rows[0]))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(226, 232, 240)
	for _, h := range rows[0] {
		pdf.CellFormat(colW, 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows[1:] {
		for _, v := range row {
			pdf.CellFormat(colW, 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
