package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"habittracker/backend/models"
	"habittracker/backend/store"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	exportSheet = "Habits"
)

var exportHeader = []string{"habitId", "name", "date", "checked"}

type ExportService struct {
	store store.Store
}

func NewExportService(s store.Store) *ExportService {
	return &ExportService{store: s}
}

// Rows returns one row per (habit, check date) of the user, habits oldest first.
func (s *ExportService) Rows(ctx context.Context, userID string) ([]models.ExportRow, error) {
	habits, err := s.store.Habits().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	rows := make([]models.ExportRow, 0)
	for _, h := range habits {
		dates, err := s.store.Checks().List(ctx, h.ID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list checks of %s: %w", h.ID, err)
		}
		for _, d := range uniqueDays(dates) {
			rows = append(rows, models.ExportRow{HabitID: h.ID, Name: h.Name, Date: d.Format(models.DateLayout)})
		}
	}
	return rows, nil
}

// Write renders the user's export in format to w and returns its content type.
func (s *ExportService) Write(ctx context.Context, userID, format string, w io.Writer) (string, error) {
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return "", newValidationError("format must be one of: csv, xlsx")
	}

	rows, err := s.Rows(ctx, userID)
	if err != nil {
		return "", err
	}

	if format == FormatXLSX {
		return ContentTypeXLSX, WriteXLSX(w, rows)
	}
	return ContentTypeCSV, WriteCSV(w, rows)
}

func WriteCSV(w io.Writer, rows []models.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.HabitID, r.Name, r.Date, "true"}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteXLSX(w io.Writer, rows []models.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &[]interface{}{r.HabitID, r.Name, r.Date, "true"}); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
