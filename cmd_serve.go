// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/imbtrack/middleware"
	"github.com/danielhkuo/imbtrack/router"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the local JSON console",
		Long: `Starts the local console service for a browser front-end on --port
(PORT, default 3318). See the router package for the endpoints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, closeFn, err := a.commands(true)
			if err != nil {
				return err
			}
			defer closeFn()

			// Create server
			server := http.Server{
				Handler: middleware.CORS(router.NewRouter(h)),
				Addr:    ":" + strconv.Itoa(a.cfg.Port),
			}

			// signal.Notify requires the channel to be buffered
			ctrlc := make(chan os.Signal, 1)
			signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(ctrlc)
			go func() {
				// Wait for Ctrl-C signal
				<-ctrlc
				server.Close()
			}()

			slog.Info("Listening", "port", a.cfg.Port, "api_base", a.cfg.APIBase)
			err = server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Server closed", "error", err)
				return err
			}
			slog.Info("Server closed")
			return nil
		},
	}
}
