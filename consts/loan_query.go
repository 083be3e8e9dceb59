package consts

const (
	// Query categories, in cascade priority order
	QueryTypeMismatchedLoans       = "MismatchedLoans"
	QueryTypeDifferenceGreaterThan = "DifferenceGreaterThan"
	QueryTypeDifferenceLessThan    = "DifferenceLessThan"
	QueryTypeReconciledLoans       = "ReconciledLoans"
	QueryTypeUnreconciledLoans     = "UnreconciledLoans"
	QueryTypeLoanByID              = "LoanByID"
	QueryTypeBorrowerSearch        = "BorrowerSearch"
	QueryTypeTopDifferences        = "TopDifferences"
	QueryTypeBottomDifferences     = "BottomDifferences"
	QueryTypePositiveDifferences   = "PositiveDifferences"
	QueryTypeNegativeDifferences   = "NegativeDifferences"
	QueryTypeServicerExcess        = "ServicerExcess"
	QueryTypeInvestorExcess        = "InvestorExcess"
	QueryTypeLoanCount             = "LoanCount"
	QueryTypeAllLoans              = "AllLoans"
	QueryTypeSummary               = "Summary"
	QueryTypeUnknown               = "Unknown"

	// Reconciliation status match value, compared case-insensitively
	StatusReconciled = "reconciled"

	// Default config
	DefaultQueryLimit    = 100
	DefaultTopN          = 10
	SummarySampleSize    = 10
	DefaultDebounceMs    = 500
	DefaultCSVPath       = "data/loan_records.csv"
	SourceDriverCSV      = "csv"
	SourceDriverPostgres = "postgres"
)
