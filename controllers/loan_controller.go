package controllers

import (
	"github.com/radhian/loan-reconciliation-mcp/handler"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterLoanRoutes(router *mux.Router, rpc *RPCController, h *handler.ToolHandler) {
	router.HandleFunc("/rpc", rpc.HandleRPC).Methods("POST")
	router.HandleFunc("/healthz", h.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
