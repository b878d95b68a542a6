package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"quote-scraper/pkg/models"
	"quote-scraper/pkg/utils"
)

// AuthorsFileName is the fixed output file for author records. Only the
// quotes file location is configurable.
const AuthorsFileName = "author.csv"

var (
	quoteHeader  = []string{"text", "author", "tags"}
	authorHeader = []string{"name", "born_date", "born_location", "description"}
)

// CSVWriter writes crawl results as CSV files. Target files are always
// truncated: every crawl rewrites its outputs from scratch.
type CSVWriter struct {
	log *logrus.Entry
}

// NewCSVWriter creates a CSVWriter.
func NewCSVWriter(log *logrus.Entry) *CSVWriter {
	return &CSVWriter{log: log}
}

// WriteQuotes writes quotes to path in input order under a header row.
// A quote's tags are joined with ", " into a single column.
func (w *CSVWriter) WriteQuotes(path string, quotes []models.Quote) error {
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{q.Text, q.Author, strings.Join(q.Tags, ", ")})
	}
	if err := w.writeFile(path, quoteHeader, rows); err != nil {
		return err
	}
	w.log.WithFields(logrus.Fields{"path": path, "rows": len(rows)}).Info("Wrote quotes CSV")
	return nil
}

// WriteAuthors writes authors to path in input order under a header row.
func (w *CSVWriter) WriteAuthors(path string, authors []models.Author) error {
	rows := make([][]string, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, []string{a.Name, a.BornDate, a.BornLocation, a.Description})
	}
	if err := w.writeFile(path, authorHeader, rows); err != nil {
		return err
	}
	w.log.WithFields(logrus.Fields{"path": path, "rows": len(rows)}).Info("Wrote authors CSV")
	return nil
}

// writeFile writes a single CSV file: header row first, then data rows.
// Every failure wraps utils.ErrOutputIO.
func (w *CSVWriter) writeFile(path string, header []string, rows [][]string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: opening '%s': %v", utils.ErrOutputIO, path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("%w: writing header to '%s': %v", utils.ErrOutputIO, path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("%w: writing row to '%s': %v", utils.ErrOutputIO, path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("%w: flushing '%s': %v", utils.ErrOutputIO, path, err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("%w: syncing '%s': %v", utils.ErrOutputIO, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: closing '%s': %v", utils.ErrOutputIO, path, err)
	}
	return nil
}
