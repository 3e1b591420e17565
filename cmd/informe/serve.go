package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmoralesv/informe/internal/interpreter"
	"github.com/nmoralesv/informe/internal/server"
	"github.com/nmoralesv/informe/internal/suggest"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interpreter over HTTP",
		Long: `Start the HTTP API: POST /api/v1/interpret takes a report request and
returns the structured interpretation; the reports endpoints expose the
request history.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			api := server.NewWebAPI(interpreter.New(), server.Config{
				Store:     db,
				Suggester: suggest.New(db),
				Addr:      viper.GetString("server.addr"),
			})

			return api.Start(ctx)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
