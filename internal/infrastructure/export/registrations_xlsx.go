package export

import (
	"bytes"
	"fmt"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName       = "Registrations"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

var headers = []string{
	"ID", "Status", "Created at",
	"Member", "Email", "Phone", "Date of birth",
	"Day", "Start", "End", "Level",
	"Experience", "Newsletter", "Medical certificate", "Notes",
}

// XLSXExporter renders registrations as an Excel workbook with one row per
// registration.
type XLSXExporter struct{}

var _ contract.IRegistrationExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string {
	return XLSXContentType
}

func (e *XLSXExporter) Export(rows []contract.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, bold)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := rowValues(row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(sheetName, "A", "O", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func rowValues(row contract.ExportRow) []interface{} {
	r := row.Registration
	values := []interface{}{
		r.ID, string(r.Status), r.CreatedAt.Format(timestampLayout),
		"", "", "", "",
		"", "", "", "",
		deref(r.Experience), yesNo(r.Newsletter), deref(r.MedicalCertificateFile), deref(r.Notes),
	}
	if u := row.User; u != nil {
		values[3] = u.FirstName + " " + u.LastName
		values[4] = u.Email
		values[5] = deref(u.Phone)
		if u.DateOfBirth != nil {
			values[6] = u.DateOfBirth.Format(dateLayout)
		}
	}
	if s := row.Schedule; s != nil {
		values[7] = string(s.DayOfWeek)
		values[8] = s.StartTime
		values[9] = s.EndTime
		values[10] = string(s.Level)
	}
	return values
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
