package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/radhian/loan-reconciliation-mcp/consts"
	"github.com/radhian/loan-reconciliation-mcp/controllers"
	"github.com/radhian/loan-reconciliation-mcp/handler"
	"github.com/radhian/loan-reconciliation-mcp/infra/db"
	"github.com/radhian/loan-reconciliation-mcp/infra/db/dao"
	"github.com/radhian/loan-reconciliation-mcp/infra/loader"
	"github.com/radhian/loan-reconciliation-mcp/infra/locker"
	"github.com/radhian/loan-reconciliation-mcp/infra/store"
	"github.com/radhian/loan-reconciliation-mcp/infra/watcher"
	"github.com/radhian/loan-reconciliation-mcp/usecase/loanquery"
)

func buildSource() (loader.Source, string, error) {
	driver := os.Getenv("SOURCE_DRIVER")
	if driver == "" {
		driver = consts.SourceDriverCSV
	}

	switch driver {
	case consts.SourceDriverCSV:
		path := os.Getenv("CSV_PATH")
		if path == "" {
			path = consts.DefaultCSVPath
		}
		return loader.NewCSVSource(path), path, nil
	case consts.SourceDriverPostgres:
		conn, err := db.Open(db.Config{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Name:     os.Getenv("DB_NAME"),
			Password: os.Getenv("DB_PASSWORD"),
		})
		if err != nil {
			return nil, "", err
		}
		return loader.NewPostgresSource(dao.NewDaoMethod(conn)), "", nil
	default:
		return nil, "", fmt.Errorf("unknown SOURCE_DRIVER %q", driver)
	}
}

func watchEnabled() bool {
	v := os.Getenv("WATCH_SOURCE")
	if v == "" {
		return true
	}
	return strings.EqualFold(v, "true") || v == "1"
}

func main() {
	source, csvPath, err := buildSource()
	if err != nil {
		log.Fatalf("configure source: %v", err)
	}

	records, err := source.Load()
	if err != nil {
		log.Fatalf("load dataset from %s: %v", source.Describe(), err)
	}

	st := store.New()
	st.Build(records)

	tools := handler.NewToolHandler(loanquery.NewLoanQueryUsecase(st))

	if watchEnabled() && csvPath != "" {
		w := watcher.New(csvPath, consts.DefaultDebounceMs*time.Millisecond, locker.New(), func() error {
			recs, err := source.Load()
			if err != nil {
				return err
			}
			st.Build(recs)
			return nil
		})
		go func() {
			if err := w.Run(context.Background()); err != nil {
				log.Printf("watcher stopped: %v", err)
			}
		}()
	}

	app := controllers.App{}
	app.Initialize(tools)

	app.RunServer()
}
