package attendance

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var exportHeader = []interface{}{"Date", "Clock In", "Clock Out", "Status", "Total Seconds", "Worked"}

// Export renders the user's history as an xlsx workbook.
func (s *service) Export(ctx context.Context, userID, userName string) ([]byte, error) {
	entries, err := s.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	return WriteWorkbook(userName, entries)
}

// WriteWorkbook builds the export workbook: a title row, a header row and
// one row per entry.
func WriteWorkbook(userName string, entries []HistoryEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetCellValue(exportSheet, "A1", "Attendance history: "+userName); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A2", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		in, out, worked := "--", "--", e.Display
		if e.ClockInTime != nil {
			in = e.ClockInTime.Format("15:04:05")
		}
		if e.ClockOutTime != nil && !e.InProgress {
			out = e.ClockOutTime.Format("15:04:05")
		}
		if e.InProgress {
			worked = "In Progress"
		}
		row := []interface{}{e.DateKey, in, out, string(e.Status), e.TotalSeconds, worked}
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "F", 16); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
