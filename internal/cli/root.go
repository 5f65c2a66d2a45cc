package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbout22/filetree/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the top-level `ftree` command.
func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "ftree",
		Short: "ftree — materialize a declarative directory tree in one call",
		Long: `ftree reads a tree file (TOML, YAML or JSON) in which every mapping is a
directory and every other value is a file, and creates that layout on disk.
Entries are created depth-first in the order they are written; the first
failure stops the run and leaves what was already created in place.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.InitLogger(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); defaults to $"+logger.LevelEnvVar+" or warn")

	root.AddCommand(newCreateCmd())
	root.AddCommand(newTempCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newCheckCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
