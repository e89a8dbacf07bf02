// Command clear-database deletes every row of the application tables and restarts their id
// sequences. It asks for confirmation unless -yes is given.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	database "github.com/SolarInitiative/Cloud-Solar-Backend/app/db"
	appLogger "github.com/SolarInitiative/Cloud-Solar-Backend/app/logger"
	"github.com/SolarInitiative/Cloud-Solar-Backend/config"
)

// Children first, so the listing reads in dependency order.
var tables = []string{
	"notifications",
	"grid_feed_in",
	"inverters",
	"transactions",
	"maintenance_records",
	"energy_credits",
	"customer_consumption",
	"energy_generation",
	"panel_ownership",
	"solar_panels",
	"solar_farms",
	"trials",
	"users",
}

type cleaner struct {
	db     *sql.DB
	logger *slog.Logger
}

type tableCount struct {
	Table string
	Rows  int64
}

func (c *cleaner) counts(ctx context.Context) ([]tableCount, error) {
	out := make([]tableCount, 0, len(tables))
	for _, t := range tables {
		var n int64
		if err := c.db.QueryRowContext(ctx, "SELECT count(*) FROM "+t).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", t, err)
		}
		out = append(out, tableCount{Table: t, Rows: n})
	}
	return out, nil
}

func (c *cleaner) clear(ctx context.Context) (err error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				c.logger.ErrorContext(ctx, "Rollback failed", slog.Any("error", rbErr))
			}
		}
	}()

	stmt := "TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err = tx.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	c.logger.InfoContext(ctx, "Database cleared", slog.Int("tables", len(tables)))
	return nil
}

// confirmed reads one line and accepts only "yes", in any case.
func confirmed(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "\nAre you sure you want to delete all data? (yes/no): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}

func printCounts(out io.Writer, title string, counts []tableCount) {
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, c := range counts {
		fmt.Fprintf(out, "  - %-22s %d\n", c.Table, c.Rows)
	}
}

func run(ctx context.Context, c *cleaner, skipConfirm bool, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "WARNING: This will delete ALL data from the database!")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	before, err := c.counts(ctx)
	if err != nil {
		return err
	}
	printCounts(out, "Current data", before)

	if !skipConfirm && !confirmed(in, out) {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}
	if err := c.clear(ctx); err != nil {
		return err
	}

	after, err := c.counts(ctx)
	if err != nil {
		return err
	}
	printCounts(out, "Remaining data", after)
	return nil
}

func main() {
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}
	logger := appLogger.New(cfg.Mode)

	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	db, err := sql.Open("pgx", dbConfig.ConnectionURL)
	if err != nil {
		log.Fatalf("FATAL: open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, &cleaner{db: db, logger: logger}, *yes, os.Stdin, os.Stdout); err != nil {
		logger.Error("Failed to clear database", slog.Any("error", err))
		os.Exit(1)
	}
}
