// Package store contains the persistence layer implemented with GORM on MySQL or PostgreSQL.
package store

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"aeon/config"
	"aeon/internal/domain/lifecycle"
	"aeon/internal/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store and ties the pool to the fx lifecycle: ping on start, close on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects with the configured driver and applies the pool limits.
// It does not ping; callers outside fx (the maintenance CLI) ping themselves.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverMySQL:
		db, err = openMySQL(cfg, logger)
	case config.DriverPostgres:
		db, err = openPostgres(cfg, logger)
	default:
		return nil, errors.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	applyPool(sqlDB, cfg.Database.Pool)

	return db, nil
}

func openMySQL(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	mysqlCfg := cfg.Database.MySQL
	if mysqlCfg == nil {
		return nil, errors.New("database.mysql is not configured")
	}

	db, err := gorm.Open(mysql.Open(mysqlDSN(mysqlCfg.Host, mysqlCfg.Port, mysqlCfg.User, mysqlCfg.Password, mysqlCfg.Database)), &gorm.Config{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MySQL client")
	}

	if len(mysqlCfg.Replicas) == 0 {
		return db, nil
	}

	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Replicas))
	for _, replica := range mysqlCfg.Replicas {
		replicas = append(replicas, mysql.Open(mysqlDSN(replica.Host, replica.Port, replica.User, replica.Password, mysqlCfg.Database)))
	}

	pool := cfg.Database.Pool
	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	}).
		SetMaxOpenConns(pool.MaxOpenConns).
		SetMaxIdleConns(pool.MaxIdleConns).
		SetConnMaxLifetime(pool.ConnMaxLifetime).
		SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	if err := db.Use(resolver); err != nil {
		return nil, errors.Wrap(err, "failed to register MySQL read replicas")
	}

	logger.Info("MySQL read replicas registered", slog.Int("replicas", len(replicas)))

	return db, nil
}

func openPostgres(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := pgLib.New(cfg.Database.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db.Config.TranslateError = true

	return db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

// mysqlDSN builds a DSN whose UPDATE row counts report matched rows, so an
// update that rewrites identical values is not mistaken for a missing row.
func mysqlDSN(host string, port int, user, password, database string) string {
	dsn := mysqldriver.NewConfig()
	dsn.User = user
	dsn.Passwd = password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	dsn.DBName = database
	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	dsn.Loc = time.Local
	dsn.Params = map[string]string{"charset": "utf8mb4"}

	return dsn.FormatDSN()
}

type sqlPool interface {
	SetMaxOpenConns(n int)
	SetMaxIdleConns(n int)
	SetConnMaxLifetime(d time.Duration)
	SetConnMaxIdleTime(d time.Duration)
}

func applyPool(pool sqlPool, cfg config.PoolConfig) {
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		pool.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}
