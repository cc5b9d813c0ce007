package main

import (
	_ "embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/slicer/internal/config"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "web",
	})

	cfg, err := config.LoadWeb()
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	logger.SetLevel(config.Level(cfg.LogLevel))

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, cfg); err != nil {
			logger.Error("render page", "err", err)
		}
		logger.Debug("served page", "remote", r.RemoteAddr)
	})

	srv := &http.Server{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:     mux,
		ReadTimeout: cfg.ReadTimeout,
	}

	logger.Info("starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}
