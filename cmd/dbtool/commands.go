package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"aeon/config"
	"aeon/internal/domain/entity"
	"aeon/internal/infra/auth"
	logs "aeon/internal/infra/log"
	"aeon/internal/infra/persistence/store"
	"aeon/internal/usecase"
	"aeon/internal/usecase/impl"

	"github.com/pkg/errors"
)

// toolkit is the maintenance usecase with the store it owns.
type toolkit struct {
	maintenance usecase.MaintenanceUsecase
	close       func() error
}

func openToolkit() (*toolkit, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := store.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	maintenance := impl.NewMaintenanceService(impl.MaintenanceServiceParams{
		TxManager:  store.NewTransactionManager(db),
		SchemaRepo: store.NewSchemaRepository(db),
		HealthRepo: store.NewHealthRepository(db),
		Hasher:     auth.NewBcryptHasher(cfg),
		Logger:     logger,
	})

	return &toolkit{maintenance: maintenance, close: sqlDB.Close}, nil
}

func withToolkit(fn func(tk *toolkit) error) error {
	tk, err := openToolkit()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := tk.close(); cerr != nil {
			slog.Warn("Failed to close database", slog.Any("error", cerr))
		}
	}()

	return fn(tk)
}

func handleMigrate(ctx context.Context, flags *dbtoolFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return withToolkit(func(tk *toolkit) error {
		if err := tk.maintenance.Migrate(ctx); err != nil {
			return err
		}
		fmt.Println("Database migrated.")

		if !*flags.Migrate.withUsers {
			return nil
		}

		return seedUsers(ctx, tk, os.Stdout)
	})
}

func handleSeedUsers(ctx context.Context, flags *dbtoolFlags) error {
	if err := flags.SeedUsers.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed-users flags")
	}

	return withToolkit(func(tk *toolkit) error {
		return seedUsers(ctx, tk, os.Stdout)
	})
}

func seedUsers(ctx context.Context, tk *toolkit, w io.Writer) error {
	seeded, err := tk.maintenance.SeedUsers(ctx)
	if err != nil {
		return err
	}

	printSeeded(w, seeded)

	return nil
}

func printSeeded(w io.Writer, seeded []usecase.SeededUser) {
	for _, user := range seeded {
		action := "updated"
		if user.Created {
			action = "created"
		}
		fmt.Fprintf(w, "%-8s %-10s %s\n", user.Username, user.Role, action)
	}
}

func handlePing(ctx context.Context, flags *dbtoolFlags) error {
	if err := flags.Ping.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse ping flags")
	}

	return withToolkit(func(tk *toolkit) error {
		pingCtx, cancel := context.WithTimeout(ctx, *flags.Ping.timeout)
		defer cancel()

		if err := tk.maintenance.Ping(pingCtx); err != nil {
			return err
		}
		fmt.Println("Database connection OK.")

		return nil
	})
}

func handleTables(ctx context.Context, flags *dbtoolFlags) error {
	if err := flags.Tables.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse tables flags")
	}

	return withToolkit(func(tk *toolkit) error {
		tables, err := tk.maintenance.Tables(ctx)
		if err != nil {
			return err
		}

		printTables(os.Stdout, tables, *flags.Tables.columns)

		return nil
	})
}

func printTables(w io.Writer, tables []entity.TableInfo, columns bool) {
	if len(tables) == 0 {
		fmt.Fprintln(w, "No tables found.")

		return
	}

	for _, table := range tables {
		fmt.Fprintln(w, table.Name)
		if !columns {
			continue
		}
		for _, column := range table.Columns {
			nullable := "NOT NULL"
			if column.Nullable {
				nullable = "NULL"
			}
			fmt.Fprintf(w, "  %-24s %-20s %s\n", column.Name, column.Type, nullable)
		}
	}
}

func handleEnv(flags *dbtoolFlags) error {
	if err := flags.Env.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse env flags")
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	printSettings(os.Stdout, describeDatabase(cfg))

	return nil
}
