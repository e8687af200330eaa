// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/imbtrack/batchview"
	"github.com/danielhkuo/imbtrack/commands"
	"github.com/danielhkuo/imbtrack/imb"
	"github.com/danielhkuo/imbtrack/locate"
	"github.com/danielhkuo/imbtrack/models"
)

func newPreviewCmd(a *app) *cobra.Command {
	var text string
	var list bool

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Check a candidate list without submitting it",
		Long: `Parses, deduplicates and format-checks IMBs from --text and an optional
file (.txt, .csv or .xlsx). With neither, the list is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := previewRequest(cmd, text, args)
			if err != nil {
				return err
			}

			res := commands.New(nil, nil).Preview(req)
			out := cmd.OutOrStdout()
			if res.FileError != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), res.FileError)
			}
			printCandidates(out, res.Candidates)
			if list {
				for _, v := range res.Candidates.IMBs {
					fmt.Fprintln(out, v)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Pasted IMB list")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print the deduplicated list")
	return cmd
}

func newCreateCmd(a *app) *cobra.Command {
	var (
		text      string
		file      string
		source    string
		note      string
		shareBase string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a candidate list as a new batch",
		Long: `Submits the deduplicated IMBs from --text and --file (or stdin when neither
is given) to the tracking API and prints the new batch id.

Example:
  imbtrack create -f march.xlsx --source csv --share-base https://track.example/app/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fileArgs []string
			if file != "" {
				fileArgs = []string{file}
			}
			req, err := previewRequest(cmd, text, fileArgs)
			if err != nil {
				return err
			}

			h, closeFn, err := a.commands(true)
			if err != nil {
				return err
			}
			defer closeFn()

			res := h.Preview(req)
			if res.FileError != "" {
				return errors.New(res.FileError)
			}
			out := cmd.OutOrStdout()
			printCandidates(out, res.Candidates)

			batchID, err := h.CreateBatch(cmd.Context(), commands.CreateRequest{
				IMBs:           res.Candidates.IMBs,
				SourcePlatform: source,
				Note:           note,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Batch created: %s\n", batchID)
			if shareBase != "" {
				u, err := url.Parse(shareBase)
				if err != nil {
					return fmt.Errorf("invalid share base: %w", err)
				}
				fmt.Fprintf(out, "Share link: %s\n", locate.ShareLink(u.Scheme+"://"+u.Host, u.Path, batchID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Pasted IMB list")
	cmd.Flags().StringVarP(&file, "file", "f", "", "IMB file (.txt, .csv or .xlsx)")
	cmd.Flags().StringVar(&source, "source", "", "Source platform recorded with the batch")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note recorded with the batch")
	cmd.Flags().StringVar(&shareBase, "share-base", "", "Front-end URL used to print a share link")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "show <batch-id|link>",
		Short: "Show a batch and its item statuses",
		Long: `Loads a batch by id or by share link. An adminKey parameter in the link is
saved to the session for later status overrides.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, closeFn, err := a.commands(true)
			if err != nil {
				return err
			}
			defer closeFn()

			v, err := openRef(cmd, h, args[0])
			if err != nil {
				return err
			}
			renderView(cmd.OutOrStdout(), v, query)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show items whose IMB or status contains this")
	return cmd
}

func newRefreshCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "refresh <batch-id|link>",
		Short: "Re-poll a batch and show the updated statuses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, closeFn, err := a.commands(true)
			if err != nil {
				return err
			}
			defer closeFn()

			v, err := openRef(cmd, h, args[0])
			if err != nil {
				return err
			}
			if err := h.Refresh(cmd.Context(), v); err != nil {
				return err
			}

			renderView(cmd.OutOrStdout(), v, query)
			fmt.Fprintln(cmd.OutOrStdout(), "Refresh complete.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show items whose IMB or status contains this")
	return cmd
}

func newSetStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <batch-id|link> <item-id> <status>",
		Short: "Manually override one item's status",
		Long: `Sets an item's status using the session admin key. Status may be the wire
value or its label, in any case: PENDING, IN_TRANSIT ("In Transit"),
DELIVERED, RETURNED, ERROR.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseStatus(args[2])
			if err != nil {
				return err
			}

			h, closeFn, err := a.commands(true)
			if err != nil {
				return err
			}
			defer closeFn()

			v, err := openRef(cmd, h, args[0])
			if err != nil {
				return err
			}
			item, err := h.Override(cmd.Context(), v, args[1], status)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status updated. %s is now %s.\n", item.IMB, item.Status.Label())
			return nil
		},
	}
}

// previewRequest collects --text, an optional file and, when both are
// absent, stdin.
func previewRequest(cmd *cobra.Command, text string, args []string) (commands.PreviewRequest, error) {
	req := commands.PreviewRequest{Text: text}
	if len(args) > 0 {
		req.FilePath = args[0]
	}
	if req.Text == "" && req.FilePath == "" {
		in, err := readInput(cmd.InOrStdin())
		if err != nil {
			return req, err
		}
		req.Text = in
	}
	return req, nil
}

// openRef adopts any admin key carried by ref, then loads the batch it names.
func openRef(cmd *cobra.Command, h *commands.Handler, ref string) (*batchview.View, error) {
	if _, adopted, err := h.Session().AdoptFromURL(cmd.Context(), ref); err != nil {
		return nil, err
	} else if adopted {
		fmt.Fprintln(cmd.ErrOrStderr(), "Admin key saved.")
	}

	batchID, err := locate.BatchID(ref)
	if err != nil {
		return nil, err
	}
	return h.Open(cmd.Context(), batchID)
}

func printCandidates(w io.Writer, c imb.Candidates) {
	fmt.Fprintln(w, c.Summary())
	fmt.Fprintln(w, c.WarningSample(imb.DefaultWarningSample))
}

func renderView(w io.Writer, v *batchview.View, query string) {
	fmt.Fprintln(w, v.Headline())
	fmt.Fprintln(w, v.MetaLine())

	items := v.Filter(query)
	if len(items) == 0 {
		if query != "" {
			fmt.Fprintf(w, "No items match %q.\n", query)
		} else {
			fmt.Fprintln(w, "No items.")
		}
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Item", "IMB", "Status", "Updated"})
	table.SetAutoWrapText(false)
	for _, item := range items {
		updated := ""
		if !item.UpdatedAt.IsZero() {
			updated = humanize.Time(item.UpdatedAt)
		}
		table.Append([]string{item.ID, item.IMB, item.Status.Label(), updated})
	}
	table.Render()
}
