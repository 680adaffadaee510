package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/alzcare/screening-service/internal/repositories"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a subject's result history for caregiver review.
type ExportService interface {
	ExportResultsToExcel(ctx context.Context, subjectID string) ([]byte, error)
}

type exportService struct {
	results repositories.ResultRepository
	logger  utils.Logger
}

func NewExportService(results repositories.ResultRepository, logger utils.Logger) ExportService {
	return &exportService{
		results: results,
		logger:  logger,
	}
}

func (s *exportService) ExportResultsToExcel(ctx context.Context, subjectID string) ([]byte, error) {
	s.logger.Info("Exporting screening results", "subject_id", subjectID)

	results, err := s.results.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load results for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Date Taken", "Total Score (0-30)", "Interpretation", "Section Scores", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}
	}

	for row, result := range results {
		sections := result.SectionScores.Data()
		parts := make([]string, 0, len(sections))
		for _, sec := range sections {
			parts = append(parts, fmt.Sprintf("%s: %d", sec.Name, sec.Points))
		}
		notes := ""
		if result.Notes != nil {
			notes = *result.Notes
		}

		values := []interface{}{
			result.DateTaken.Format("2006-01-02 15:04"),
			result.TotalScore,
			string(result.Interpretation),
			strings.Join(parts, "; "),
			notes,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write export row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render export file: %w", err)
	}
	return buf.Bytes(), nil
}
