package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/consts"
)

// HandleRPC serves the same dispatch over HTTP: one JSON-RPC request object
// per POST body, one response object per reply. HTTP status is 200 even for
// error responses; the outcome travels in the JSON-RPC error member.
func (c *RPCController) HandleRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxLineBytes))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse(nil, consts.CodeInternalError, "failed to read request body"))
		return
	}

	resp := c.HandleLine(r.Context(), body)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("[Rpc] Failed to encode http response: %v", err)
	}
}
