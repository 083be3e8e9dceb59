package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/entity"
)

// CSVSource reads loan records from a file with the header
// loan_id,borrower_name,servicer_amount,investor_amount,status.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Describe() string {
	return "csv:" + s.path
}

func (s *CSVSource) Load() ([]entity.LoanRecord, error) {
	log.Infof("[CsvLoader] Reading loan records file: %s", s.path)

	file, err := os.Open(s.path)
	if err != nil {
		log.Errorf("[CsvLoader] Failed to open file: %v", err)
		return nil, fmt.Errorf("failed to open loan records file %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		log.Errorf("[CsvLoader] Failed to read CSV: %v", err)
		return nil, fmt.Errorf("failed to read CSV from loan records file %s: %w", s.path, err)
	}

	var records []entity.LoanRecord
	skipped := 0

	for i, row := range rows {
		if i == 0 || len(row) < 5 || strings.TrimSpace(row[0]) == "" {
			skipped++
			continue
		}

		servicerAmount, err1 := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		investorAmount, err2 := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err1 != nil || err2 != nil {
			log.Warnf("[CsvLoader] Skipping row %d: invalid amounts (%q, %q)", i, row[2], row[3])
			skipped++
			continue
		}

		records = append(records, entity.NewLoanRecord(
			strings.TrimSpace(row[0]),
			strings.TrimSpace(row[1]),
			servicerAmount,
			investorAmount,
			strings.TrimSpace(row[4]),
		))
	}

	log.Infof("[CsvLoader] Parsed %d loan records, skipped %d invalid rows", len(records), skipped)

	if len(records) == 0 {
		return nil, fmt.Errorf("loan records file %s: %w", s.path, ErrNoUsableRecords)
	}
	return records, nil
}
