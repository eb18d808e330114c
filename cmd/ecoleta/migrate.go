package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vbonduro/ecoleta/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withUnmigratedDB(func(conn *sql.DB) error {
					if err := db.MigrateUp(conn); err != nil {
						return err
					}
					a.logger.Info("migrations: up completed")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down [N]",
			Short: "Roll back the last N migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n < 1 {
						return fmt.Errorf("down: invalid steps argument %q", args[0])
					}
					steps = n
				}
				return a.withUnmigratedDB(func(conn *sql.DB) error {
					if err := db.MigrateDown(conn, steps); err != nil {
						return err
					}
					a.logger.Info("migrations: down completed", "steps", steps)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withUnmigratedDB(func(conn *sql.DB) error {
					v, dirty, err := db.Version(conn)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "version: %d  dirty: %v\n", v, dirty)
					return err
				})
			},
		},
	)
	return cmd
}

// withUnmigratedDB opens the configured database without applying
// migrations, so the migrate sub-commands control the schema themselves.
func (a *app) withUnmigratedDB(fn func(*sql.DB) error) error {
	if err := os.MkdirAll(filepath.Dir(a.cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	conn, err := db.OpenUnmigrated(a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			a.logger.Error("failed to close database", "error", err)
		}
	}()
	return fn(conn)
}
