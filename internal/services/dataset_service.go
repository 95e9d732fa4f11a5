package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"lexitag/internal/models"
	"lexitag/internal/util"
)

// DatasetService parses uploaded delimited files and serializes datasets
// back out.
type DatasetService struct{}

func NewDatasetService() *DatasetService {
	return &DatasetService{}
}

// ParseCSV reads a complete CSV document with a header row. Malformed input
// (binary data, invalid UTF-8, ragged rows, missing header) maps to
// models.ErrMalformedCSV so callers can report a recoverable user error.
func (s *DatasetService) ParseCSV(r io.Reader, name string) (*models.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", name, err)
	}
	if util.IsLikelyBinary(data) {
		return nil, fmt.Errorf("%q looks like a binary file: %w", name, models.ErrMalformedCSV)
	}
	content, err := util.CleanUploadContent(data, name)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, models.ErrMalformedCSV)
	}

	reader := csv.NewReader(strings.NewReader(content))
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%q has no header row: %w", name, models.ErrMalformedCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %q: %w", name, models.ErrMalformedCSV)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// encoding/csv enforces a constant field count after the
			// header, so ragged rows land here.
			return nil, fmt.Errorf("parse %q: %v: %w", name, err, models.ErrMalformedCSV)
		}
		rows = append(rows, record)
	}

	ds := &models.Dataset{Name: name, Header: header, Rows: rows}
	log.WithFields(log.Fields{
		"dataset": name,
		"columns": len(header),
		"rows":    len(rows),
	}).Info("dataset parsed")
	return ds, nil
}

// WriteCSV serializes the dataset with its header row, preserving column
// and row order.
func (s *DatasetService) WriteCSV(w io.Writer, ds *models.Dataset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ds.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range ds.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Preview returns a copy of the dataset truncated to at most n rows.
func (s *DatasetService) Preview(ds *models.Dataset, n int) *models.Dataset {
	if n < 0 {
		n = 0
	}
	if n > len(ds.Rows) {
		n = len(ds.Rows)
	}
	return &models.Dataset{Name: ds.Name, Header: ds.Header, Rows: ds.Rows[:n]}
}
