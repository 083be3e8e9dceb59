package handler

import (
	"encoding/json"
	"net/http"
)

type healthPayload struct {
	Status  string `json:"status"`
	Records int    `json:"records,omitempty"`
}

// Health reports 200 with the record count once a dataset is loaded, and
// 503 while the first load is still pending.
func (h *ToolHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.Usecase.DatasetStatistics(r.Context())
	if !stats.DataLoaded {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(healthPayload{Status: "loading"})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthPayload{Status: "ok", Records: stats.TotalRecords})
}
