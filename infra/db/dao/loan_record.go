package dao

import (
	"fmt"

	"github.com/radhian/loan-reconciliation-mcp/infra/db/model"
)

func (d *dao) FetchLoanRecords() ([]model.LoanRecordRow, error) {
	var rows []model.LoanRecordRow
	if err := d.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch loan records: %w", err)
	}
	return rows, nil
}

func (d *dao) CountLoanRecords() (int64, error) {
	var count int64
	if err := d.db.Model(&model.LoanRecordRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count loan records: %w", err)
	}
	return count, nil
}
