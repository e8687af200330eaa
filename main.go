package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/imbtrack/client"
	"github.com/danielhkuo/imbtrack/cliparse"
	"github.com/danielhkuo/imbtrack/commands"
	"github.com/danielhkuo/imbtrack/db"
	"github.com/danielhkuo/imbtrack/session"
)

// app holds what every subcommand shares. It is filled by the root
// command's PersistentPreRunE.
type app struct {
	cfg cliparse.Config
}

// session opens the settings database. The returned close func must be
// called when the command is done.
func (a *app) session() (*session.Session, func(), error) {
	conn, err := db.Open(a.cfg.DatabaseType, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return session.New(session.NewSQLStore(conn, a.cfg.DatabaseType)), func() { conn.Close() }, nil
}

// commands wires the command handler; requireAPI is false for commands that
// never reach the tracking API.
func (a *app) commands(requireAPI bool) (*commands.Handler, func(), error) {
	var api commands.API
	if requireAPI {
		if err := a.cfg.RequireAPI(); err != nil {
			return nil, nil, err
		}
		api = client.New(a.cfg.APIBase, client.NewHTTPClient(a.cfg.HTTPTimeout))
	}

	sess, closeFn, err := a.session()
	if err != nil {
		return nil, nil, err
	}
	return commands.New(api, sess), closeFn, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "imbtrack",
		Short: "Track Intelligent Mail barcode batches",
		Long: `imbtrack prepares lists of Intelligent Mail barcodes (IMBs), submits them
to the tracking API as a batch, and follows their delivery status.

Configuration comes from flags, then environment variables (a .env file in
the working directory is loaded first), then defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cliparse.LoadDotEnv()
			if err := a.cfg.Resolve(); err != nil {
				return err
			}
			level, err := a.cfg.SlogLevel()
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cliparse.BindFlags(root.PersistentFlags(), &a.cfg)

	root.AddCommand(
		newPreviewCmd(a),
		newCreateCmd(a),
		newShowCmd(a),
		newRefreshCmd(a),
		newSetStatusCmd(a),
		newAdminKeyCmd(a),
		newServeCmd(a),
	)
	return root
}

// readInput returns all of r, or "" for a nil reader.
func readInput(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimPrefix(string(b), "\ufeff"), nil
}

func main() {
	root := newRootCmd(&app{})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.Message(err))
		os.Exit(1)
	}
}
