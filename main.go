package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/raypark-console/cafe"
	"github.com/danielhkuo/raypark-console/catalog"
	"github.com/danielhkuo/raypark-console/cliparse"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/router"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load catalogs (built-in unless overridden)
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		slog.Error("catalog load failed", "error", err, "file", cfg.CatalogFile)
		os.Exit(1)
	}

	// Open the key-value store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := kv.Open(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("store open failed", "error", err, "backend", cfg.DatabaseType)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Store ready", "backend", cfg.DatabaseType)

	// Create router
	svc := cafe.NewServices(store, cat, cafe.Options{})
	handler := router.NewRouter(store, svc, cfg)

	// Create server
	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "error", err, "addr", server.Addr)
		return
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Listening", "port", cfg.Port, "autofill", cfg.AutofillEnabled)
	if err := serve(&server, ln, ctrlc); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

// serve runs server on ln until stop fires, then returns once in-flight
// requests have drained or the shutdown timeout expires.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	drained := make(chan error, 1)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		drained <- server.Shutdown(ctx)
	}()

	if err := server.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	return <-drained
}
