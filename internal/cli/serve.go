package cli

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docmorph/internal/httpapi"
	"github.com/yaklabco/docmorph/internal/logging"
	"github.com/yaklabco/docmorph/pkg/config"
)

func newServeCommand(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion server",
		Long: `Serve starts an HTTP server exposing the converter. Documents are
posted to /convert/{format} as multipart uploads, either a single file
or a zip archive bundling the document with its images.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return errors.Join(errors.New("failed to load configuration"), err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			logging.SetLevel(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := httpapi.New(cfg, logging.Default())
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+config.DefaultAddr+")")

	return cmd
}
