package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/filetree/internal/tree"
	"github.com/cbout22/filetree/internal/writer"
)

// newCheckCmd creates the `check` command.
// Usage: ftree check [tree-file] [--root DIR] [--strict]
func newCheckCmd() *cobra.Command {
	var (
		src    treeSource
		root   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check [tree-file]",
		Short: "Check that a tree file's layout exists on disk",
		Long: `Verifies that every directory and file in the tree file exists under --root,
with the right type and content. Useful in CI to catch drift in generated
scaffolding.

With --strict, the command exits with a non-zero code if anything is missing
or different.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src.fromArgs(args)
			t, err := src.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runCheckWith(cmd.OutOrStdout(), t, root, &writer.OSFileWriter{}, strict)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&root, "root", "r", ".", "Directory the tree is expected under")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with error code if anything is missing or different")

	return cmd
}

// runCheckWith is the testable core of the check command.
func runCheckWith(out io.Writer, t *tree.Dir, root string, fs writer.FileReader, strict bool) error {
	results := CheckTree(root, t, fs)

	fmt.Fprintf(out, "🔍 Checking %d entr(ies) under %s...\n\n", len(results), root)

	var issues int
	for _, r := range results {
		label := r.Path
		if r.Dir {
			label += "/"
		}
		switch r.Status {
		case CheckOK:
			fmt.Fprintf(out, "  ✅ %s — ok\n", label)
		case CheckMissing:
			fmt.Fprintf(out, "  ❌ %s — missing\n", label)
			issues++
		case CheckWrongType:
			want := "file"
			if r.Dir {
				want = "directory"
			}
			fmt.Fprintf(out, "  ❌ %s — exists but is not a %s\n", label, want)
			issues++
		case CheckContentMismatch:
			fmt.Fprintf(out, "  ⚠️  %s — content differs\n", label)
			issues++
		case CheckError:
			fmt.Fprintf(out, "  ⚠️  %s — %s\n", label, r.Err)
			issues++
		}
	}

	fmt.Fprintln(out)
	if issues > 0 {
		msg := fmt.Sprintf("Found %d issue(s). Run 'ftree create' to fix.", issues)
		if strict {
			return fmt.Errorf("%s", msg)
		}
		fmt.Fprintf(out, "⚠️  %s\n", msg)
	} else {
		fmt.Fprintln(out, "✅ Tree is in place.")
	}
	return nil
}
