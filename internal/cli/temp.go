package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cbout22/filetree/internal/config"
	"github.com/cbout22/filetree/internal/materialize"
	"github.com/cbout22/filetree/internal/tree"
)

// newTempCmd creates the `temp` command.
// Usage: ftree temp [tree-file] [--keep]
func newTempCmd() *cobra.Command {
	var (
		src   treeSource
		perms permFlags
		keep  bool
	)

	cmd := &cobra.Command{
		Use:   "temp [tree-file]",
		Short: "Create the tree inside a fresh temporary directory",
		Long: `Provisions a uniquely named temporary directory, creates the tree inside it
and lists what was created. The directory is removed afterwards unless --keep
is given, in which case its path is printed for later use.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src.fromArgs(args)
			t, err := src.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			settings := config.DefaultSettings()
			if err := perms.apply(&settings); err != nil {
				return err
			}
			_, err = runTempWith(cmd.OutOrStdout(), t, settings, keep)
			return err
		},
	}

	src.register(cmd)
	perms.register(cmd)
	cmd.Flags().BoolVar(&keep, "keep", false, "Leave the temporary directory in place")

	return cmd
}

// runTempWith is the testable core of the temp command. It returns the path
// of the temporary directory, which no longer exists unless keep is set.
func runTempWith(out io.Writer, t *tree.Dir, settings config.Settings, keep bool) (string, error) {
	h, err := materialize.New(settings.Writer()).MaterializeTemp(t)
	if h == nil {
		return "", fmt.Errorf("provisioning temporary directory: %w", err)
	}
	if keep {
		h.Keep()
	}
	defer func() {
		if closeErr := h.Close(); closeErr != nil {
			cliLog.Warnf("could not remove %s: %v", h.Path(), closeErr)
		}
	}()

	fmt.Fprintf(out, "📂 %s\n", h.Path())
	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", err)
		return h.Path(), fmt.Errorf("creating tree: %w", err)
	}

	walkErr := tree.Walk("", t, func(path string, n tree.Node) error {
		if path == "" {
			return nil
		}
		switch n.(type) {
		case *tree.Dir:
			fmt.Fprintf(out, "  📁 %s%c\n", path, filepath.Separator)
		case *tree.File:
			fmt.Fprintf(out, "  📄 %s\n", path)
		}
		return nil
	})
	if walkErr != nil {
		return h.Path(), walkErr
	}

	if keep {
		fmt.Fprintf(out, "✅ Kept %s\n", h.Path())
	} else {
		fmt.Fprintln(out, "🧹 Temporary directory removed.")
	}
	return h.Path(), nil
}
