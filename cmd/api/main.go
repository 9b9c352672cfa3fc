package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/go-rental-bookings/internal/catalog"
	"github.com/ariefcatur/go-rental-bookings/internal/config"
	"github.com/ariefcatur/go-rental-bookings/internal/httpx"
	kafkax "github.com/ariefcatur/go-rental-bookings/internal/kafka"
	"github.com/ariefcatur/go-rental-bookings/internal/redisx"
	"github.com/ariefcatur/go-rental-bookings/internal/rental"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog (static, read-only)
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		c, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
		cat = c
	} else {
		cat = catalog.LoadSeed()
	}
	log.Printf("catalog loaded: %d products", cat.Len())

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers: created & status (dua topic berbeda)
	pCreated := kafkax.NewProducer(cfg.KafkaBrokers, rental.TopicOrderCreated, 1024)
	pCreated.Start(ctx)
	pStatus := kafkax.NewProducer(cfg.KafkaBrokers, rental.TopicOrderStatus, 1024)
	pStatus.Start(ctx)

	// Store & handler
	store := rental.NewStore(cat)
	router := httpx.NewRouter()
	rh := &httpx.RentalHandler{
		Catalog:         cat,
		Store:           store,
		ProducerCreated: pCreated,
		ProducerStatus:  pStatus,
		Redis:           rdb,
		Service:         cfg.ServiceName,
	}
	rh.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	pCreated.Close() // tutup inbox -> flush & close writer
	pStatus.Close()
	pCreated.WaitClosed()
	pStatus.WaitClosed()
	cancel()
}
