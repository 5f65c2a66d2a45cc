package manifest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cbout22/filetree/internal/tree"
)

// decodeTOML builds a tree from TOML. Go maps lose key order, so the order
// is recovered from the decoder's metadata: an entry sorts by the first
// position at which it or anything under it was defined.
func decodeTOML(data []byte) (*tree.Dir, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	order := make(map[string]int)
	for i, k := range md.Keys() {
		for n := 1; n <= len(k); n++ {
			id := keyID(k[:n])
			if _, seen := order[id]; !seen {
				order[id] = i
			}
		}
	}

	return tomlDir(raw, nil, order)
}

func keyID(parts []string) string {
	return strings.Join(parts, "\x00")
}

func tomlDir(m map[string]any, path []string, order map[string]int) (*tree.Dir, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	pos := func(name string) int {
		p, ok := order[keyID(append(path[:len(path):len(path)], name))]
		if !ok {
			return len(order)
		}
		return p
	}
	sort.SliceStable(names, func(i, j int) bool {
		pi, pj := pos(names[i]), pos(names[j])
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})

	d := tree.NewDir()
	for _, name := range names {
		childPath := append(path[:len(path):len(path)], name)
		n, err := tomlNode(m[name], childPath, order)
		if err != nil {
			return nil, err
		}
		if n != nil {
			d.Add(tree.Name(name), n)
		}
	}
	return d, nil
}

// tomlNode returns nil for entries that are left out.
func tomlNode(v any, path []string, order map[string]int) (tree.Node, error) {
	switch val := v.(type) {
	case map[string]any:
		return tomlDir(val, path, order)
	case string:
		return tree.TextFile(val), nil
	case bool:
		if val {
			return tree.EmptyFile(), nil
		}
		return nil, nil
	case int64:
		return tree.TextFile(strconv.FormatInt(val, 10)), nil
	case float64:
		return tree.TextFile(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case time.Time:
		return tree.TextFile(val.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		// toml.LocalDate, toml.LocalTime, toml.LocalDateTime
		return tree.TextFile(val.String()), nil
	case []any, []map[string]any:
		return nil, fmt.Errorf("%s: arrays are not supported, use a table for a directory", strings.Join(path, "."))
	default:
		return nil, fmt.Errorf("%s: unsupported value of type %T", strings.Join(path, "."), v)
	}
}
