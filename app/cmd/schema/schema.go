package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/persistence/v1/schema"
	"github.com/ribgsilva/note-app/platform/database"
	"github.com/ribgsilva/note-app/platform/env"
	"github.com/ribgsilva/note-app/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

// Command groups the schema subcommands
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Creates the schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(ctx context.Context) error {
					cmd.Println("creating schema")
					if err := schema.Create(ctx); err != nil {
						return fmt.Errorf("failed to create schema: %w", err)
					}
					cmd.Println("created schema")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Deletes the schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(ctx context.Context) error {
					cmd.Println("deleting schema")
					if err := schema.Drop(ctx); err != nil {
						return fmt.Errorf("failed to delete schema: %w", err)
					}
					cmd.Println("deleted schema")
					return nil
				})
			},
		},
	)
	return cmd
}

func withDatabase(f func(ctx context.Context) error) error {
	// empty logger
	log := zap.NewNop().Sugar()
	if err := initVars(log); err != nil {
		return err
	}
	defer func() {
		if err := sys.R.Database.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	return f(context.Background())
}

func initVars(log *zap.SugaredLogger) error {
	env.Load(log)
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	// mysql
	db, err := database.Open("mysql", sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
