package main

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the PostgreSQL schema migrations",
	Long: `Applies every pending migration from --dir to the database described by
POSTGRES_DB_ADDRESS, POSTGRES_USER, POSTGRES_PASSWORD and POSTGRES_DB. Only
needed with EVENTTRACKER_STORAGE=postgres.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "directory with goose migrations")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	conn, err := sql.Open("postgres", pgConfig().ConnString())
	if err != nil {
		return errors.New("opening database error: " + err.Error())
	}
	defer conn.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Up(conn, migrationsDir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	dbVersion, err := goose.GetDBVersion(conn)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema is at version %d\n", dbVersion)
	return nil
}
