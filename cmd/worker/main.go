package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loanflow/internal/adapter/queue/redisq"
	"loanflow/internal/adapter/repository/mysql"
	"loanflow/internal/config"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/messaging"
	"loanflow/internal/infrastructure/cache"
	"loanflow/internal/infrastructure/db"
	"loanflow/internal/listener"
	"loanflow/internal/usecase/decision"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := logging.NewSlog(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	tx := mysql.NewGormUoW(gdb)
	sender := messaging.NewSender(redisq.NewPublisher(rdb), messaging.Channels{
		CreditAnalysis:     cfg.CreditAnalysisStream,
		StatusNotification: cfg.NotificationStream,
		LoanApproved:       cfg.ApprovedStream,
	})
	processor := decision.NewProcessor(decision.NewUpdater(tx, logger), sender, logger)

	src := redisq.NewSource(rdb, cfg.DecisionStream, cfg.ConsumerGroup, cfg.ConsumerName,
		redisq.WithReclaimIdle(cfg.ReclaimIdle()))
	if err := src.EnsureGroup(context.Background()); err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	metrics := listener.NewMetrics(reg)

	poller := listener.NewPoller(src, processor, logger,
		listener.WithBatchSize(cfg.BatchSize),
		listener.WithDelays(
			time.Duration(cfg.WaitSecs)*time.Second,
			time.Duration(cfg.PollDelaySecs)*time.Second,
			time.Duration(cfg.BackoffSecs)*time.Second,
		),
		listener.WithMetrics(metrics),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: ":" + cfg.MetricsPort, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	log.Printf("consuming %s as %s/%s", cfg.DecisionStream, cfg.ConsumerGroup, cfg.ConsumerName)
	poller.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
