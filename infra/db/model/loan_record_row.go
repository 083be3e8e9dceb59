package model

type LoanRecordRow struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	LoanID         string  `gorm:"size:100;not null;unique_index" json:"loan_id"`
	BorrowerName   string  `gorm:"size:255;not null" json:"borrower_name"`
	ServicerAmount float64 `gorm:"not null" json:"servicer_amount"`
	InvestorAmount float64 `gorm:"not null" json:"investor_amount"`
	Status         string  `gorm:"size:100;not null" json:"status"`
}

func (LoanRecordRow) TableName() string {
	return "loan_records"
}
