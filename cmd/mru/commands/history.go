package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/mru/internal/app"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/ui/listing"
	"go.trai.ch/mru/internal/ui/output"
	"go.trai.ch/mru/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newAddCmd(st domain.StorageType) *cobra.Command {
	return &cobra.Command{
		Use:   "add <identity>",
		Short: fmt.Sprintf("Record a use of an item in the %s history", st),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Add(cmd.Context(), st, args[0])
			return err
		},
	}
}

func (c *CLI) newListCmd(st domain.StorageType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List the %s history, most recent first", st),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			long, _ := cmd.Flags().GetBool("long")
			asJSON, _ := cmd.Flags().GetBool("json")
			if limit < 0 {
				return zerr.With(zerr.Wrap(domain.ErrInvalidLimit, "invalid --limit"), "limit", limit)
			}

			entries, err := c.app.List(cmd.Context(), st, app.ListOptions{Limit: limit})
			if err != nil {
				return err
			}

			format := listing.Plain
			switch {
			case asJSON:
				format = listing.JSON
			case long:
				format = listing.Long
			}
			return listing.New(cmd.OutOrStdout()).Render(entries, format)
		},
	}

	cmd.Flags().IntP("limit", "n", 0, "Print at most this many entries (0 for all)")
	cmd.Flags().BoolP("long", "l", false, "Show last use and use count")
	cmd.Flags().Bool("json", false, "Print entries as JSON")
	cmd.MarkFlagsMutuallyExclusive("long", "json")

	return cmd
}

func (c *CLI) newRemoveCmd(st domain.StorageType) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <identity>",
		Short: fmt.Sprintf("Remove an item from the %s history", st),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.app.Remove(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}
			if !removed {
				status(cmd.ErrOrStderr(), style.Warning, style.Caution, fmt.Sprintf("%s is not in the %s history", args[0], st))
			}
			return nil
		},
	}
}

func (c *CLI) newClearCmd(st domain.StorageType) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: fmt.Sprintf("Remove every entry from the %s history", st),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.app.Clear(cmd.Context(), st)
			if err != nil {
				return err
			}
			status(cmd.OutOrStdout(), style.Check, style.Success, fmt.Sprintf("cleared %d %s", n, plural(n, "entry", "entries")))
			return nil
		},
	}
}

func (c *CLI) newPruneCmd(st domain.StorageType) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop entries whose files no longer exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pruned, err := c.app.Prune(cmd.Context(), st)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, id := range pruned {
				status(w, style.Cross, style.Failure, id.String())
			}
			status(w, style.Check, style.Success, fmt.Sprintf("pruned %d %s", len(pruned), plural(len(pruned), "entry", "entries")))
			return nil
		},
	}
}

func (c *CLI) newPathCmd(st domain.StorageType) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: fmt.Sprintf("Print the location of the %s history file", st),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.app.Path(st)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

// status prints an icon-prefixed line.
func status(w io.Writer, icon string, color lipgloss.Color, msg string) {
	out := output.New(w)
	_, _ = fmt.Fprintf(out, "%s %s\n", style.Paint(out, color, icon), msg)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
