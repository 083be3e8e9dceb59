package handler

import (
	"context"
	"time"
)

type statisticsPayload struct {
	TotalRecords    int    `json:"totalRecords"`
	LastLoadTime    string `json:"lastLoadTime"`
	DataLoaded      bool   `json:"dataLoaded"`
	MismatchCount   int    `json:"mismatchCount"`
	SnapshotVersion string `json:"snapshotVersion,omitempty"`
}

// GetStatistics reports dataset health. The tool takes no arguments.
func (h *ToolHandler) GetStatistics(ctx context.Context) (ToolCallResult, error) {
	stats := h.Usecase.DatasetStatistics(ctx)

	payload := statisticsPayload{
		TotalRecords:    stats.TotalRecords,
		DataLoaded:      stats.DataLoaded,
		MismatchCount:   stats.MismatchCount,
		SnapshotVersion: stats.SnapshotVersion,
	}
	if !stats.LastLoadTime.IsZero() {
		payload.LastLoadTime = stats.LastLoadTime.Format(time.RFC3339)
	}
	return textResult(payload)
}
