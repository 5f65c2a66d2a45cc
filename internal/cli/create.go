package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/filetree/internal/config"
	"github.com/cbout22/filetree/internal/journal"
	"github.com/cbout22/filetree/internal/logger"
	"github.com/cbout22/filetree/internal/materialize"
	"github.com/cbout22/filetree/internal/tree"
	"github.com/cbout22/filetree/internal/writer"
)

var cliLog = logger.Logger.WithField("logger", "Cli")

// newCreateCmd creates the `create` command.
// Usage: ftree create [tree-file] [--root DIR] [--journal FILE]
func newCreateCmd() *cobra.Command {
	var (
		src         treeSource
		perms       permFlags
		root        string
		journalPath string
	)

	cmd := &cobra.Command{
		Use:   "create [tree-file]",
		Short: "Create the directories and files described by a tree file",
		Long: `Creates every directory and file in the tree file under --root.

Directories are created before their contents and siblings in the order they
are written. The first error stops the run; anything created before it stays.

Example:
  ftree create scaffold.yaml --root ./new-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src.fromArgs(args)
			t, err := src.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			settings := config.DefaultSettings()
			settings.Root = root
			if err := perms.apply(&settings); err != nil {
				return err
			}
			return runCreateWith(cmd.OutOrStdout(), t, settings, journalPath)
		},
	}

	src.register(cmd)
	perms.register(cmd)
	cmd.Flags().StringVarP(&root, "root", "r", ".", "Directory the tree is created under")
	cmd.Flags().StringVar(&journalPath, "journal", "", "Write a JSON record of every operation to this file")

	return cmd
}

// runCreateWith is the testable core of the create command.
func runCreateWith(out io.Writer, t *tree.Dir, settings config.Settings, journalPath string) error {
	dirs, files := tree.Count(t)
	fmt.Fprintf(out, "🔨 Creating %d director(ies) and %d file(s) under %s...\n", dirs-1, files, settings.Root)

	var fs writer.FileWriter = settings.Writer()
	var j *journal.Journal
	if journalPath != "" {
		j = journal.New(fs)
		fs = j
	}

	err := materialize.New(fs).Materialize(settings.Root, t)

	if j != nil {
		if saveErr := j.Save(journalPath); saveErr != nil {
			cliLog.Warnf("could not save journal: %v", saveErr)
		} else {
			cliLog.Debugf("journal written to %s", journalPath)
		}
	}

	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", err)
		return fmt.Errorf("creating tree: %w", err)
	}

	fmt.Fprintf(out, "✅ Tree created under %s.\n", settings.Root)
	return nil
}
