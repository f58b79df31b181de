package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/chain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/config"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/handler"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/middleware"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/notification"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/repository"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/router"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/scheduler"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	chain       *chain.Client
	poolService *service.PoolService
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"lootpool",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initChain(); err != nil {
		return nil, fmt.Errorf("init chain: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initChain() error {
	c, err := chain.New(context.Background(), chain.OptionsFromConfig(a.cfg.Chain), a.log)
	if err != nil {
		return err
	}
	a.chain = c

	mode := "read-only"
	if c.CanWrite() {
		mode = "operator " + c.OperatorAddress()
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "chain client ready",
		logger.String("rpc", a.cfg.Chain.RPCURL),
		logger.Int64("chain_id", a.cfg.Chain.ChainID),
		logger.String("pool_manager", c.PoolManagerAddress()),
		logger.String("mode", mode),
	)

	return nil
}

func (a *App) initServices() error {
	poolRepo := repository.NewPoolRepo(a.db)
	participationRepo := repository.NewParticipationRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	participationService := service.NewParticipationService(participationRepo, poolRepo, userRepo, a.chain, n, a.log)
	poolService := service.NewPoolService(poolRepo, a.chain, participationService, a.log)
	userService := service.NewUserService(userRepo, participationRepo, a.chain, a.log)
	a.poolService = poolService

	a.scheduler = scheduler.New(
		poolService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.AutoFinalize,
		a.log,
	)

	h := handler.NewHandler(poolService, participationService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		loaded, err := a.poolService.LoadPools(ctx)
		if err != nil {
			a.log.LogAttrs(ctx, logger.ErrorLevel, "initial pool sync failed",
				logger.String("error", err.Error()),
			)
			return
		}
		a.log.LogAttrs(ctx, logger.InfoLevel, "initial pool sync done",
			logger.Int("pools", loaded),
		)
	}()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.chain.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "chain client closed")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
