package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/filetree/internal/config"
	"github.com/cbout22/filetree/internal/manifest"
	"github.com/cbout22/filetree/internal/tree"
)

// treeSource names where a command reads its tree from.
type treeSource struct {
	path   string // "-" reads stdin
	format string // optional override of the extension-based guess
}

func (s *treeSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.format, "format", "f", "", "Tree file format: toml, yaml or json (default: from extension)")
}

func (s *treeSource) fromArgs(args []string) {
	s.path = manifest.DefaultTreeFile
	if len(args) > 0 {
		s.path = args[0]
	}
}

func (s *treeSource) load(stdin io.Reader) (*tree.Dir, error) {
	var format config.Format
	if s.format != "" {
		f, err := config.ParseFormat(s.format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	if s.path != "-" {
		return manifest.Load(s.path, format)
	}

	if format == "" {
		return nil, fmt.Errorf("--format is required when reading the tree from stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	d, err := manifest.Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("parsing stdin: %w", err)
	}
	return d, nil
}

// permFlags holds the raw permission flags shared by commands that write.
type permFlags struct {
	dirPerm  string
	filePerm string
}

func (p *permFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.dirPerm, "dir-perm", "0755", "Permissions for created directories (octal)")
	cmd.Flags().StringVar(&p.filePerm, "file-perm", "0644", "Permissions for created files (octal)")
}

func (p *permFlags) apply(s *config.Settings) error {
	d, err := config.ParsePerm(p.dirPerm, s.DirPerm)
	if err != nil {
		return fmt.Errorf("--dir-perm: %w", err)
	}
	f, err := config.ParsePerm(p.filePerm, s.FilePerm)
	if err != nil {
		return fmt.Errorf("--file-perm: %w", err)
	}
	s.DirPerm, s.FilePerm = d, f
	return nil
}
