package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/consts"
	"github.com/radhian/loan-reconciliation-mcp/handler"
	"github.com/radhian/loan-reconciliation-mcp/infra/metrics"
)

// rpcRequest is one decoded request line. The ID stays raw so string,
// numeric and null ids are echoed back byte for byte.
type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcResponse struct {
	ID     json.RawMessage `json:"id"`
	Result interface{}     `json:"result,omitempty"`
	Error  *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type initializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      serverInfo             `json:"serverInfo"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type toolsListResult struct {
	Tools []handler.ToolDefinition `json:"tools"`
}

// RPCController turns request lines into responses. It owns no transport;
// the stdio session and the HTTP bridge both feed it one request at a time.
type RPCController struct {
	Handler *handler.ToolHandler
}

func NewRPCController(h *handler.ToolHandler) *RPCController {
	return &RPCController{Handler: h}
}

// HandleLine produces exactly one response for one request line. Parse
// failures and handler panics become internal-error responses, so the
// caller keeps the session alive regardless of outcome.
func (c *RPCController) HandleLine(ctx context.Context, line []byte) (resp rpcResponse) {
	var req rpcRequest

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Rpc] Panic recovered for method %q: %v", req.Method, r)
			resp = errorResponse(req.ID, consts.CodeInternalError, fmt.Sprintf("internal error: %v", r))
		}
		if resp.Error != nil {
			metrics.ProtocolErrorsTotal.WithLabelValues(strconv.Itoa(resp.Error.Code)).Inc()
		}
	}()

	if err := json.Unmarshal(line, &req); err != nil {
		log.Warnf("[Rpc] Failed to parse request line: %v", err)
		return errorResponse(nil, consts.CodeInternalError, fmt.Sprintf("parse error: %v", err))
	}

	countRequest(req.Method)

	switch req.Method {
	case consts.MethodInitialize:
		return resultResponse(req.ID, initializeResult{
			ProtocolVersion: consts.ProtocolVersion,
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
			ServerInfo:      serverInfo{Name: consts.ServerName, Version: consts.ServerVersion},
		})
	case consts.MethodToolsList:
		return resultResponse(req.ID, toolsListResult{Tools: c.Handler.ListTools()})
	case consts.MethodToolsCall:
		result, err := c.Handler.CallTool(ctx, req.Params)
		if err != nil {
			log.Warnf("[Rpc] tools/call failed: %v", err)
			return errorResponse(req.ID, consts.CodeInternalError, err.Error())
		}
		return resultResponse(req.ID, result)
	default:
		log.Warnf("[Rpc] Method not found: %q", req.Method)
		return errorResponse(req.ID, consts.CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

// countRequest collapses unknown methods into one label so client-supplied
// names cannot grow the metric cardinality.
func countRequest(method string) {
	switch method {
	case consts.MethodInitialize, consts.MethodToolsList, consts.MethodToolsCall:
	default:
		method = "unknown"
	}
	metrics.RequestsTotal.WithLabelValues(method).Inc()
}

func resultResponse(id json.RawMessage, result interface{}) rpcResponse {
	return rpcResponse{ID: id, Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) rpcResponse {
	return rpcResponse{ID: id, Error: &rpcError{Code: code, Message: message}}
}
