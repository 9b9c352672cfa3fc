package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/go-rental-bookings/internal/config"
	"github.com/ariefcatur/go-rental-bookings/internal/eventlog"
	kafkax "github.com/ariefcatur/go-rental-bookings/internal/kafka"
	"github.com/ariefcatur/go-rental-bookings/internal/redisx"
	"github.com/ariefcatur/go-rental-bookings/internal/rental"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (dedup event)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &eventlog.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-eventlog",
	}

	group := getenv("EVENTLOG_GROUP", "eventlog-svc")
	workers := mustAtoi(os.Getenv("EVENTLOG_WORKERS"), "4")

	// satu consumer per topic, handler sama
	topics := []string{rental.TopicOrderCreated, rental.TopicOrderStatus}
	for _, topic := range topics {
		cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, topic, workers)
		go func(topic string) {
			log.Printf("eventlog consumer started: group=%s topic=%s workers=%d", group, topic, workers)
			if err := cons.Start(ctx, svc.HandleEvent); err != nil {
				log.Printf("consumer exit (%s): %v", topic, err)
				cancel()
			}
		}(topic)
	}

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
