// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/imbtrack/auth"
)

func newAdminKeyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin-key",
		Short: "Manage the session admin key",
		Long: `The admin key authorizes manual status overrides. It is kept in the
settings database until cleared.

Available subcommands:
  set    - Save a key, or adopt it from a link's adminKey parameter
  clear  - Forget the key
  status - Show whether a key is held (masked)`,
	}

	setCmd := &cobra.Command{
		Use:   "set <key|link>",
		Short: "Save an admin key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.session()
			if err != nil {
				return err
			}
			defer closeFn()

			ref := strings.TrimSpace(args[0])
			if strings.Contains(ref, auth.QueryAdminKey+"=") {
				stripped, _, err := sess.AdoptFromURL(cmd.Context(), ref)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Admin key saved. Link without key: %s\n", stripped)
				return nil
			}

			if err := sess.SetAdminKey(cmd.Context(), ref); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Admin key saved.")
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the admin key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.session()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := sess.ClearAdminKey(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Admin key cleared.")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether an admin key is held",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := a.session()
			if err != nil {
				return err
			}
			defer closeFn()

			key, err := sess.AdminKey(cmd.Context())
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No admin key.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin key: %s\n", auth.Mask(key))
			return nil
		},
	}

	cmd.AddCommand(setCmd, clearCmd, statusCmd)
	return cmd
}
