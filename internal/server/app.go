// Package server initializes and runs the development credits server: it
// prepares the SQLite store, seeds the admin account and serves HTTP until
// a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/filex"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
	"github.com/dmitrijs2005/rfidcredits/internal/server/config"
	"github.com/dmitrijs2005/rfidcredits/internal/server/httpapi"
	"github.com/dmitrijs2005/rfidcredits/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/rfidcredits/internal/server/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	userService   *services.UserService
	creditService *services.CreditService
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if c.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key error: %w", err)
		}
		c.SecretKey = key
		logger.Warn(ctx, "No secret key configured, sessions will not survive a restart")
	}

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir error: %w", err)
	}

	db, err := repomanager.OpenSQLite(ctx, c.DSN(dataDir))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLiteRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	cs := services.NewCreditService(db, rm, c.SpinCost)

	created, err := us.EnsureUser(ctx, c.AdminUser, []byte(c.AdminPassword), true)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("admin seed error: %w", err)
	}
	if created {
		logger.Info(ctx, "Admin user created", "username", c.AdminUser)
	}

	return &App{config: c, logger: logger, db: db, userService: us, creditService: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a signal arrives, then closes the
// database.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.userService, app.creditService)
	err := s.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.db.Close(); cerr != nil && err == nil {
		err = cerr
	}

	app.logger.Info(ctx, "Stopped")
	return err
}
