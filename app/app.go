package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/safehaven-world/safehaven"
	"github.com/safehaven-world/safehaven/admin"
	"github.com/safehaven-world/safehaven/api"
	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/db"
	"github.com/safehaven-world/safehaven/pkg/http/middlewares"
	"github.com/safehaven-world/safehaven/pkg/log"
	"github.com/safehaven-world/safehaven/services/mailer"
	"github.com/safehaven-world/safehaven/services/payment"
	"go.uber.org/zap"
)

var (
	ErrApplicationStarted = errors.New("already started")
	ErrApplicationStopped = errors.New("already stopped")
)

type Application struct {
	cfg *config.Config

	mux     sync.Mutex
	started bool

	stop chan struct{}

	log   *zap.SugaredLogger
	db    *db.DB
	cron  *cron.Cron
	srv   *api.Server
	admin *admin.Admin
}

func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		cfg:  cfg,
		stop: make(chan struct{}),
	}

	err := app.initialize()
	if err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) initialize() error {
	cfg := app.cfg

	logger, err := log.NewZapLogger(&cfg.Log)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger.Desugar())
	app.log = logger

	sqlDB, err := db.NewSqlDB(cfg.Database)
	if err != nil {
		return err
	}
	database, err := db.NewDB(sqlDB, logger)
	if err != nil {
		return err
	}
	app.db = database

	mail := mailer.New(cfg.Email, logger)
	payments := payment.New(cfg.PayPal, cfg.Server.SiteURL, logger)

	// site API
	if cfg.Server.IsEnabled() {
		opts := api.Options{
			Config:      cfg,
			DB:          database,
			Mailer:      mail,
			Payments:    payments,
			Middlewares: []mux.MiddlewareFunc{middlewares.AccessLog(logger)},
		}
		app.srv = api.NewServer(cfg.Server, api.NewAPI(opts).Handler())
	}

	// admin
	if cfg.Admin.IsEnabled() {
		opts := admin.Options{
			Config:      cfg,
			DB:          database,
			Middlewares: []mux.MiddlewareFunc{middlewares.AccessLog(logger)},
		}
		app.admin = admin.NewAdmin(cfg.Admin, admin.NewAPI(opts).Handler())
	}

	// retention purge
	if cfg.Analytics.RetentionDays > 0 {
		app.cron = cron.New()
		_, err := app.cron.AddFunc(cfg.Analytics.RetentionSchedule, app.purgeExpiredEvents)
		if err != nil {
			return err
		}
	}

	return nil
}

func (app *Application) purgeExpiredEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := app.db.Events.DeleteOlderThan(ctx, app.cfg.Analytics.RetentionDays)
	if err != nil {
		app.log.Errorw("failed to purge expired analytics events", "error", err)
		return
	}
	app.log.Infow("purged expired analytics events", "deleted", n, "retention_days", app.cfg.Analytics.RetentionDays)
}

func (app *Application) DB() *db.DB {
	return app.db
}

func (app *Application) Config() *config.Config {
	return app.cfg
}

// Start starts application
func (app *Application) Start() error {
	app.mux.Lock()
	defer app.mux.Unlock()

	if app.started {
		return ErrApplicationStarted
	}

	if err := app.db.Ping(); err != nil {
		app.log.Warnw("database is not reachable at startup",
			"error", err,
			"source", app.cfg.Database.Source(),
		)
	}

	app.log.Infof("starting SafeHaven %s", safehaven.VERSION)

	if app.srv != nil {
		app.srv.Start()
	}
	if app.admin != nil {
		app.admin.Start()
	}
	if app.cron != nil {
		app.cron.Start()
	}

	app.started = true

	return nil
}

func (app *Application) Wait() {
	<-app.stop
}

// Stop stops application
func (app *Application) Stop() error {
	app.mux.Lock()
	defer app.mux.Unlock()

	if !app.started {
		return ErrApplicationStopped
	}

	app.log.Info("exiting")

	defer func() {
		app.log.Info("exit")
		_ = app.log.Sync()
	}()

	if app.cron != nil {
		app.cron.Stop()
	}
	if app.srv != nil {
		_ = app.srv.Stop()
	}
	if app.admin != nil {
		_ = app.admin.Stop()
	}
	_ = app.db.Close()

	app.started = false
	close(app.stop)

	return nil
}
