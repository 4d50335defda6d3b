package annotation

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// DefaultCSVFile is where ExportCSV writes when no path is given.
const DefaultCSVFile = "annotations.csv"

// annotationColumns is the CSV header, matching Annotation field order.
var annotationColumns = []string{"image_id", "category", "confidence", "timestamp", "notes"}

// ExportCSV writes one row per annotation to path (DefaultCSVFile when path
// is empty). With no annotations it logs a diagnostic and returns nil
// without touching the filesystem.
func (s *Session) ExportCSV(path string) error {
	if len(s.annotations) == 0 {
		s.logger.Warn().Msg("No annotations to export")
		return nil
	}

	if path == "" {
		path = DefaultCSVFile
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(annotationColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, a := range s.annotations {
		row := []string{
			a.ImageID,
			a.Category,
			strconv.Itoa(a.Confidence),
			a.Timestamp,
			a.Notes,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv file: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Int("rows", len(s.annotations)).
		Msg("Annotations exported to CSV")

	return nil
}
