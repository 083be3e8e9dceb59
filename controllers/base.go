package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/radhian/loan-reconciliation-mcp/handler"
	"github.com/radhian/loan-reconciliation-mcp/middlewares"
)

type App struct {
	Router *mux.Router
	RPC    *RPCController
	Tools  *handler.ToolHandler
}

func (a *App) Initialize(toolHandler *handler.ToolHandler) {
	a.Tools = toolHandler
	a.RPC = NewRPCController(toolHandler)

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	RegisterLoanRoutes(a.Router, a.RPC, a.Tools)
}

func (a *App) RunServer() {

	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("\nServer starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
