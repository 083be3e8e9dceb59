package loader

import (
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/entity"
	"github.com/radhian/loan-reconciliation-mcp/infra/db/dao"
)

// PostgresSource reads loan records from the loan_records table.
type PostgresSource struct {
	dao dao.DaoMethod
}

func NewPostgresSource(d dao.DaoMethod) *PostgresSource {
	return &PostgresSource{dao: d}
}

func (s *PostgresSource) Describe() string {
	return "postgres:loan_records"
}

func (s *PostgresSource) Load() ([]entity.LoanRecord, error) {
	if count, err := s.dao.CountLoanRecords(); err == nil {
		log.Infof("[DbLoader] loan_records table reports %d rows", count)
	}

	rows, err := s.dao.FetchLoanRecords()
	if err != nil {
		log.Errorf("[DbLoader] Failed to fetch loan records: %v", err)
		return nil, fmt.Errorf("failed to load loan records from postgres: %w", err)
	}

	records := make([]entity.LoanRecord, 0, len(rows))
	skipped := 0

	for _, row := range rows {
		if strings.TrimSpace(row.LoanID) == "" {
			skipped++
			continue
		}
		records = append(records, entity.NewLoanRecord(
			strings.TrimSpace(row.LoanID),
			row.BorrowerName,
			row.ServicerAmount,
			row.InvestorAmount,
			row.Status,
		))
	}

	log.Infof("[DbLoader] Loaded %d loan records, skipped %d invalid rows", len(records), skipped)

	if len(records) == 0 {
		return nil, fmt.Errorf("table loan_records: %w", ErrNoUsableRecords)
	}
	return records, nil
}
