package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"placement_portal/config"
	"placement_portal/repository"
	"placement_portal/server"
	"placement_portal/service"
)

// Application owns process lifecycle: config, database, services, the HTTP
// server and graceful shutdown.
type Application struct {
	cfg  *config.GlobalConfig
	db   *gorm.DB
	http *http.Server
}

func NewApplication() *Application {
	return &Application{}
}

// InitConfig loads .env (if present) and the viper configuration.
func (app *Application) InitConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env")
	}

	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}
	app.cfg = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)
	return nil
}

// InitDatabase opens the configured store. sqlite is the default and keeps
// the whole portal in one file; mysql and postgres are for shared setups.
func (app *Application) InitDatabase() error {
	var dialector gorm.Dialector
	switch app.cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(app.cfg.Database.DSN)
	case "mysql":
		dialector = mysql.Open(app.cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(app.cfg.Database.DSN)
	default:
		return fmt.Errorf("unknown database driver %q", app.cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	app.db = db
	log.WithField("driver", app.cfg.Database.Driver).Info("database connected")
	return nil
}

// InitServices builds repositories, services and the HTTP handler, then
// runs the bootstrap steps: schema, admin singleton, session sweep and
// optional fixtures.
func (app *Application) InitServices() error {
	userRepo := repository.NewUserRepository(app.db)
	studentRepo := repository.NewStudentRepository(app.db)
	companyRepo := repository.NewCompanyRepository(app.db)
	jobRepo := repository.NewJobRepository(app.db)
	appRepo := repository.NewApplicationRepository(app.db)
	sessionRepo := repository.NewSessionRepository(app.db)

	sessionTTL := time.Duration(app.cfg.Session.TTLHours) * time.Hour
	authService := service.NewAuthService(app.db, userRepo, sessionRepo, sessionTTL)
	profileService := service.NewProfileService(app.db, companyRepo, studentRepo)
	jobService := service.NewJobService(app.db, jobRepo, companyRepo)
	applicationService := service.NewApplicationService(app.db, appRepo, jobRepo, studentRepo, companyRepo)
	adminService := service.NewAdminService(app.db, userRepo, jobRepo)

	bootstrap := service.NewBootstrapService(app.db)
	if err := bootstrap.EnsureSchema(); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if err := bootstrap.EnsureAdmin(app.cfg.Admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if swept, err := authService.SweepExpiredSessions(); err != nil {
		log.WithError(err).Warn("session sweep failed")
	} else if swept > 0 {
		log.WithField("count", swept).Info("swept expired sessions")
	}
	if app.cfg.Seed.File != "" {
		if err := bootstrap.LoadFixtures(app.cfg.Seed.File); err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}
	}

	srv := server.NewServer(
		app.cfg.Session,
		authService,
		profileService,
		jobService,
		applicationService,
		adminService,
	)
	app.http = &http.Server{
		Addr:    app.cfg.Server.Addr(),
		Handler: srv.Handler(),
	}
	return nil
}

// Start runs the HTTP server in the background.
func (app *Application) Start() {
	go func() {
		log.WithField("addr", app.http.Addr).Info("portal listening")
		if err := app.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server failed")
		}
	}()
}

// Stop drains the HTTP server and closes the database.
func (app *Application) Stop(ctx context.Context) {
	if app.http != nil {
		if err := app.http.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("http shutdown")
		}
	}
	if app.db != nil {
		if sqlDB, err := app.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// waitForShutdown blocks until SIGINT/SIGTERM, then shuts down with a
// timeout.
func (app *Application) waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	app.Stop(ctx)
}

func main() {
	app := NewApplication()

	if err := app.InitConfig(); err != nil {
		log.WithError(err).Fatal("config init failed")
	}
	if err := app.InitDatabase(); err != nil {
		log.WithError(err).Fatal("database init failed")
	}
	if err := app.InitServices(); err != nil {
		log.WithError(err).Fatal("service init failed")
	}

	app.Start()
	app.waitForShutdown()
}
