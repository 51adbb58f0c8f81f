package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/savings-planner/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var maxBodyBytes int64

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := server.NewHandler(a.logger, a.planner, maxBodyBytes, version)
			if err := server.Serve(ctx, addr, handler, a.logger); err != nil {
				a.logger.Error("server stopped", zap.String("op", "serve"), zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().Int64Var(&maxBodyBytes, "max-body-bytes", server.DefaultMaxBodyBytes, "Maximum request body size in bytes")
	return cmd
}
