package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/go-inventory-orders.git/internal/config"
	"github.com/ariefcatur/go-inventory-orders.git/internal/httpx"
	"github.com/ariefcatur/go-inventory-orders.git/internal/invclient"
	"github.com/ariefcatur/go-inventory-orders.git/internal/logging"
	"github.com/ariefcatur/go-inventory-orders.git/internal/orders"
	"github.com/ariefcatur/go-inventory-orders.git/internal/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadOrder()
	log := logging.New(cfg.ServiceName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, orders.Migrations); err != nil {
		log.Error("migrate", "err", err)
		os.Exit(1)
	}

	// Outbound inventory dependency
	inv := invclient.New(cfg.InventoryBaseURL, cfg.InventoryTimeout)

	// Service & handler
	svc := &orders.Service{Store: &orders.Repo{DB: db}, Inventory: inv, Log: log}
	router := httpx.NewRouter()
	h := &httpx.OrdersHandler{Svc: svc, Log: log}
	h.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", "addr", cfg.HTTPAddr, "inventory", cfg.InventoryBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}
