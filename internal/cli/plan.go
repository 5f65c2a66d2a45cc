package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/filetree/internal/journal"
	"github.com/cbout22/filetree/internal/materialize"
	"github.com/cbout22/filetree/internal/tree"
	"github.com/cbout22/filetree/internal/writer"
)

// newPlanCmd creates the `plan` command.
// Usage: ftree plan [tree-file] [--root DIR]
func newPlanCmd() *cobra.Command {
	var (
		src  treeSource
		root string
	)

	cmd := &cobra.Command{
		Use:   "plan [tree-file]",
		Short: "Show the operations create would perform, without touching disk",
		Long: `Renders the tree into an in-memory filesystem and prints every directory
creation and file write in the order create would issue them. Conflicts that
only show up while writing, such as a file and a directory at the same path,
are reported the same way create would report them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src.fromArgs(args)
			t, err := src.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runPlanWith(cmd.OutOrStdout(), t, root)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&root, "root", "r", ".", "Directory the tree would be created under")

	return cmd
}

// runPlanWith is the testable core of the plan command.
func runPlanWith(out io.Writer, t *tree.Dir, root string) error {
	j := journal.New(writer.NewMemory())
	err := materialize.New(j).Materialize(root, t)

	fmt.Fprintf(out, "📋 Plan for %s (%d operation(s)):\n\n", root, len(j.Entries))
	for i, e := range j.Entries {
		switch {
		case e.Error != "":
			fmt.Fprintf(out, "  %3d ❌ %s — %s\n", i+1, e.Path, e.Error)
		case e.Op == journal.OpDir:
			fmt.Fprintf(out, "  %3d 📁 mkdir %s\n", i+1, e.Path)
		default:
			fmt.Fprintf(out, "  %3d 📄 write %s (%d bytes)\n", i+1, e.Path, e.Size)
		}
	}
	fmt.Fprintln(out)

	if err != nil {
		return fmt.Errorf("plan stops at the first failure: %w", err)
	}
	return nil
}
