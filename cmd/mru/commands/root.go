// Package commands implements the CLI commands for the mru history tracker.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mru/internal/app"
	"go.trai.ch/mru/internal/build"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/engine/manager"
)

// CLI represents the command line interface for mru.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Add(ctx context.Context, st domain.StorageType, raw string) (manager.Entry, error)
	List(ctx context.Context, st domain.StorageType, opts app.ListOptions) ([]manager.Entry, error)
	Remove(ctx context.Context, st domain.StorageType, raw string) (bool, error)
	Clear(ctx context.Context, st domain.StorageType) (int, error)
	Prune(ctx context.Context, st domain.StorageType) ([]domain.Identity, error)
	Path(st domain.StorageType) (string, error)
}

// New creates the mru CLI with one command group per storage type.
func New(a Application) *CLI {
	c := &CLI{app: a}
	c.rootCmd = newRootCmd("mru", "Track and query most-recently-used files and commands")

	for _, st := range domain.StorageTypes() {
		group := &cobra.Command{
			Use:   st.String(),
			Short: fmt.Sprintf("Manage the %s history", st),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cmd.Help()
			},
		}
		c.addStorageCmds(group, st)
		c.rootCmd.AddCommand(group)
	}
	c.rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// NewForStorage creates a CLI named use whose subcommands operate on st only.
func NewForStorage(a Application, use string, st domain.StorageType) *CLI {
	c := &CLI{app: a}
	c.rootCmd = newRootCmd(use, fmt.Sprintf("Track and query the most-recently-used %s", st))
	c.addStorageCmds(c.rootCmd, st)
	c.rootCmd.AddCommand(c.newVersionCmd())
	return c
}

func newRootCmd(use, short string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	return rootCmd
}

func (c *CLI) addStorageCmds(parent *cobra.Command, st domain.StorageType) {
	parent.AddCommand(
		c.newAddCmd(st),
		c.newListCmd(st),
		c.newRemoveCmd(st),
		c.newClearCmd(st),
		c.newPathCmd(st),
	)
	if st == domain.StorageFiles {
		parent.AddCommand(c.newPruneCmd(st))
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
