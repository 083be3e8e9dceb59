package dao

import (
	"github.com/radhian/loan-reconciliation-mcp/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	FetchLoanRecords() ([]model.LoanRecordRow, error)
	CountLoanRecords() (int64, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
