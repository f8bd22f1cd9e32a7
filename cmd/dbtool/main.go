package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aeon/internal/errors"
)

// Supported subcommands:
// - migrate:    Create tables and seed payment methods
// - seed-users: Create or reset the sample admin and customer accounts
// - ping:       Check the database connection
// - tables:     List tables and their columns
// - env:        Print the database settings with secrets masked

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	seedUsersCmd := flag.NewFlagSet("seed-users", flag.ExitOnError)
	pingCmd := flag.NewFlagSet("ping", flag.ExitOnError)
	tablesCmd := flag.NewFlagSet("tables", flag.ExitOnError)
	envCmd := flag.NewFlagSet("env", flag.ExitOnError)

	migrateWithUsers := migrateCmd.Bool("with-users", false, "Seed the sample accounts after migrating")
	pingTimeout := pingCmd.Duration("timeout", 5*time.Second, "Give up after this long")
	tablesColumns := tablesCmd.Bool("columns", true, "Print the columns of every table")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := dbtoolFlags{
		Migrate: migrateFlags{
			cmd:       migrateCmd,
			withUsers: migrateWithUsers,
		},
		SeedUsers: seedUsersFlags{
			cmd: seedUsersCmd,
		},
		Ping: pingFlags{
			cmd:     pingCmd,
			timeout: pingTimeout,
		},
		Tables: tablesFlags{
			cmd:     tablesCmd,
			columns: tablesColumns,
		},
		Env: envFlags{
			cmd: envCmd,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type dbtoolFlags struct {
	Migrate   migrateFlags
	SeedUsers seedUsersFlags
	Ping      pingFlags
	Tables    tablesFlags
	Env       envFlags
}

type migrateFlags struct {
	cmd       *flag.FlagSet
	withUsers *bool
}

type seedUsersFlags struct {
	cmd *flag.FlagSet
}

type pingFlags struct {
	cmd     *flag.FlagSet
	timeout *time.Duration
}

type tablesFlags struct {
	cmd     *flag.FlagSet
	columns *bool
}

type envFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(ctx context.Context, flags *dbtoolFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "seed-users":
		return handleSeedUsers(ctx, flags)
	case "ping":
		return handlePing(ctx, flags)
	case "tables":
		return handleTables(ctx, flags)
	case "env":
		return handleEnv(flags)
	case "-h", "--help", "help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Println(`Usage: dbtool <command> [options]

Commands:
  migrate     Create tables and seed payment methods
  seed-users  Create or reset admin/admin123 and user/user123
  ping        Check the database connection
  tables      List tables and their columns
  env         Print the database settings with secrets masked

Run 'dbtool <command> -h' for command options.`)
}
