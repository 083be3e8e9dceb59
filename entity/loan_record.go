package entity

type LoanRecord struct {
	LoanID               string  `json:"loanId"`
	BorrowerName         string  `json:"borrowerName"`
	ServicerAmount       float64 `json:"servicerAmount"`
	InvestorAmount       float64 `json:"investorAmount"`
	DifferenceAmount     float64 `json:"differenceAmount"`
	ReconciliationStatus string  `json:"reconciliationStatus"`
	HasMismatch          bool    `json:"hasMismatch"`
}

// NewLoanRecord derives DifferenceAmount and HasMismatch from the two
// reported amounts. Records are immutable once built.
func NewLoanRecord(loanID, borrowerName string, servicerAmount, investorAmount float64, status string) LoanRecord {
	diff := servicerAmount - investorAmount
	return LoanRecord{
		LoanID:               loanID,
		BorrowerName:         borrowerName,
		ServicerAmount:       servicerAmount,
		InvestorAmount:       investorAmount,
		DifferenceAmount:     diff,
		ReconciliationStatus: status,
		HasMismatch:          diff != 0,
	}
}
