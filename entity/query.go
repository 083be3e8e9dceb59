package entity

import "time"

type QueryRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
	Skip  int    `json:"skip"`
}

type QueryMetadata struct {
	QueryType       string             `json:"queryType"`
	ExecutionTimeMs int64              `json:"executionTimeMs"`
	Statistics      map[string]float64 `json:"statistics"`
}

type QueryResult struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	Data       []LoanRecord  `json:"data"`
	TotalCount int           `json:"totalCount"`
	Metadata   QueryMetadata `json:"metadata"`
}

type DatasetStatistics struct {
	TotalRecords    int       `json:"totalRecords"`
	LastLoadTime    time.Time `json:"lastLoadTime"`
	DataLoaded      bool      `json:"dataLoaded"`
	MismatchCount   int       `json:"mismatchCount"`
	SnapshotVersion string    `json:"snapshotVersion"`
}
