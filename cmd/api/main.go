package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"loanflow/internal/adapter/client"
	httpadp "loanflow/internal/adapter/http"
	"loanflow/internal/adapter/middleware"
	"loanflow/internal/adapter/queue/redisq"
	"loanflow/internal/adapter/repository/cached"
	"loanflow/internal/adapter/repository/mysql"
	"loanflow/internal/config"
	"loanflow/internal/domain/logging"
	"loanflow/internal/domain/messaging"
	"loanflow/internal/infrastructure/cache"
	"loanflow/internal/infrastructure/db"
	"loanflow/internal/usecase/decision"
	"loanflow/internal/usecase/loanapp"
	"loanflow/internal/usecase/loanlist"
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

	loans := mysql.NewLoanRepository(gdb)
	types := cached.NewLoanTypes(mysql.NewLoanTypeRepository(gdb), rdb, cfg.RefCacheTTL())
	statuses := cached.NewStatuses(mysql.NewLoanStatusRepository(gdb), rdb, cfg.RefCacheTTL())
	tx := mysql.NewGormUoW(gdb)
	snapshots := client.NewUserSnapshotClient(cfg.UserAPIBaseURL)

	sender := messaging.NewSender(redisq.NewPublisher(rdb), messaging.Channels{
		CreditAnalysis:     cfg.CreditAnalysisStream,
		StatusNotification: cfg.NotificationStream,
		LoanApproved:       cfg.ApprovedStream,
	})

	dispatcher := loanapp.NewDispatcher(loans, snapshots, sender, logger)
	createUC := loanapp.NewUsecase(tx, types, dispatcher, logger)
	listUC := loanlist.NewUsecase(loans, statuses, snapshots, logger)
	processor := decision.NewProcessor(decision.NewUpdater(tx, logger), sender, logger)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(createUC, listUC, processor)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	auth := middleware.Auth([]byte(cfg.JWTSecret))
	v1 := e.Group("/api/v1", auth)
	v1.POST("/loans", lh.CreateLoan, middleware.RequireRoles(middleware.RoleCustomer, middleware.RoleAdviser))
	v1.GET("/loans", lh.ListLoans, middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleAdviser))
	v1.PUT("/loans", lh.UpdateLoan, middleware.RequireRoles(middleware.RoleAdviser))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
