package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"loanflow/internal/adapter/cache"
	httpadp "loanflow/internal/adapter/http"
	idem "loanflow/internal/adapter/middleware"
	notifyadp "loanflow/internal/adapter/notify"
	"loanflow/internal/adapter/repository/mysql"
	"loanflow/internal/config"
	"loanflow/internal/domain/notify"
	"loanflow/internal/domain/plafond"
	infracache "loanflow/internal/infrastructure/cache"
	"loanflow/internal/infrastructure/db"
	"loanflow/internal/infrastructure/mq"
	"loanflow/internal/usecase/eligibility"
	loanuc "loanflow/internal/usecase/loan"
	plafonduc "loanflow/internal/usecase/plafond"
	"loanflow/internal/usecase/workflow"
)

func slogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		log.Error("mysql unavailable", "error", err)
		os.Exit(1)
	}
	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(gdb); err != nil {
			log.Error("auto-migrate failed", "error", err)
			os.Exit(1)
		}
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Error("mysql handle", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()
	checks := []httpadp.Check{{Name: "mysql", Ping: sqlDB.PingContext}}

	// Redis backs the plafond cache and idempotency. Without it the service
	// still runs, uncached and without replay protection.
	var (
		plafondCache plafond.Cache = cache.Nop{}
		idempotency  echo.MiddlewareFunc
		rdb          *redis.Client
	)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rdb, err = infracache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	cancel()
	if err != nil {
		log.Warn("redis unavailable; running without cache and idempotency", "error", err)
	} else {
		defer rdb.Close()
		plafondCache = cache.NewPlafondCache(rdb, cfg.CacheTTL())
		idempotency = idem.Idempotency(rdb, cfg.IdempotencyTTL())
		checks = append(checks, httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	var notifier notify.Notifier = notifyadp.NewLogNotifier(log)
	if cfg.RabbitURL != "" {
		conn, err := mq.Dial(cfg.RabbitURL)
		if err != nil {
			log.Warn("rabbitmq unavailable; notifications are logged only", "error", err)
		} else {
			defer conn.Close()
			rn, err := notifyadp.NewRabbitNotifier(conn.Channel, cfg.NotifyExchange)
			if err != nil {
				log.Warn("rabbitmq exchange setup failed; notifications are logged only", "error", err)
			} else {
				notifier = rn
			}
		}
	}
	dispatcher := notify.NewDispatcher(notifier, log, cfg.NotifyTimeout())

	repos := mysql.NewRepos(gdb)
	plafonds := plafonduc.NewUsecase(repos.Plafonds, plafondCache, log)
	engine := eligibility.NewEngine(plafonds)
	loans := loanuc.NewUsecase(repos, mysql.NewCustomerRepository(gdb), engine, dispatcher)
	flow := workflow.NewUsecase(mysql.NewGormUoW(gdb), dispatcher, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Health:      httpadp.NewHandler(checks...),
		Loans:       httpadp.NewLoanHandler(loans),
		Workflow:    httpadp.NewWorkflowHandler(flow),
		Simulations: httpadp.NewSimulationHandler(engine),
		Plafonds:    httpadp.NewPlafondHandler(plafonds, engine),
	}, idempotency)

	stop, release := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer release()

	go func() {
		addr := ":" + cfg.AppPort
		log.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			release()
		}
	}()

	<-stop.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
