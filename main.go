package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"

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

// buildSource selects the record source from the environment. The returned
// path is empty unless the csv driver is active; only file sources can be
// watched for changes.
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

func reloadFunc(source loader.Source, st *store.Store) watcher.ReloadFunc {
	return func() error {
		records, err := source.Load()
		if err != nil {
			return err
		}
		st.Build(records)
		return nil
	}
}

// watchEnabled reports whether the source file should be watched for
// changes. On unless WATCH_SOURCE disables it.
func watchEnabled() bool {
	v := os.Getenv("WATCH_SOURCE")
	if v == "" {
		return true
	}
	return strings.EqualFold(v, "true") || v == "1"
}

func configureLogging() {
	// Stdout carries the protocol, so every log line goes to stderr.
	log.SetOutput(os.Stderr)

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	default:
		log.SetLevel(log.INFO)
	}
}

func main() {
	configureLogging()

	source, csvPath, err := buildSource()
	if err != nil {
		stdlog.Fatalf("configure source: %v", err)
	}

	records, err := source.Load()
	if err != nil {
		stdlog.Fatalf("load dataset from %s: %v", source.Describe(), err)
	}

	st := store.New()
	st.Build(records)

	tools := handler.NewToolHandler(loanquery.NewLoanQueryUsecase(st))
	rpc := controllers.NewRPCController(tools)
	session := controllers.NewSession(rpc, os.Stdin, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if watchEnabled() && csvPath != "" {
		w := watcher.New(csvPath, consts.DefaultDebounceMs*time.Millisecond, locker.New(), reloadFunc(source, st))
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Errorf("[Main] Watcher stopped: %v", err)
			}
		}()
	} else if watchEnabled() && os.Getenv("WATCH_SOURCE") != "" {
		log.Warnf("[Main] WATCH_SOURCE is set but the active source is not a file, ignoring")
	}

	if addr := os.Getenv("ADMIN_ADDR"); addr != "" {
		adminApp := &controllers.App{}
		adminApp.Initialize(tools)
		go func() {
			log.Infof("[Main] Admin server listening on %s", addr)
			if err := http.ListenAndServe(addr, adminApp.Router); err != nil {
				log.Errorf("[Main] Admin server stopped: %v", err)
			}
		}()
	}

	log.Infof("[Main] Serving %d records over stdio from %s", st.Count(), source.Describe())

	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			stdlog.Fatalf("session ended with error: %v", err)
		}
		log.Infof("[Main] Session ended")
	case s := <-sig:
		log.Infof("[Main] Received %s, shutting down", s)
		cancel()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
		}
	}
}
