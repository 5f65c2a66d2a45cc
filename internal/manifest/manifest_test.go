package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cbout22/filetree/internal/config"
	"github.com/cbout22/filetree/internal/tree"
)

// --- helpers ---

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// flatten lists every node below d as "d path" or "f path=content",
// in walk order, with slash-separated paths.
func flatten(t *testing.T, d *tree.Dir) []string {
	t.Helper()
	var out []string
	err := tree.Walk("", d, func(path string, n tree.Node) error {
		if path == "" {
			return nil
		}
		path = filepath.ToSlash(path)
		switch v := n.(type) {
		case *tree.Dir:
			out = append(out, "d "+path)
		case *tree.File:
			b, err := v.Content.Resolve()
			if err != nil {
				return err
			}
			out = append(out, "f "+path+"="+string(b))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func mustDecode(t *testing.T, f config.Format, src string) *tree.Dir {
	t.Helper()
	d, err := Decode(f, []byte(src))
	if err != nil {
		t.Fatalf("Decode(%s): unexpected error: %v", f, err)
	}
	return d
}

func assertFlat(t *testing.T, d *tree.Dir, want []string) {
	t.Helper()
	if got := flatten(t, d); !reflect.DeepEqual(got, want) {
		t.Errorf("tree mismatch:\n got  %q\n want %q", got, want)
	}
}

// --- TOML ---

func TestDecodeTOML_KeepsDefinitionOrder(t *testing.T) {
	t.Parallel()
	src := `"README.md" = "# Project"
LICENSE = "MIT"

["long/path"]
"z.md" = "z"
"a.md" = "a"

["long/path".docs]
".gitkeep" = true

[other]
"not-created" = false
`
	assertFlat(t, mustDecode(t, config.TOML, src), []string{
		"f README.md=# Project",
		"f LICENSE=MIT",
		"d long/path",
		"f long/path/z.md=z",
		"f long/path/a.md=a",
		"d long/path/docs",
		"f long/path/docs/.gitkeep=",
		"d other",
	})
}

func TestDecodeTOML_ImplicitTables(t *testing.T) {
	t.Parallel()
	src := `first = "1"

[outer.inner]
f = "x"

[second]
`
	assertFlat(t, mustDecode(t, config.TOML, src), []string{
		"f first=1",
		"d outer",
		"d outer/inner",
		"f outer/inner/f=x",
		"d second",
	})
}

func TestDecodeTOML_InlineTablesAndScalars(t *testing.T) {
	t.Parallel()
	src := `dir = { "b.txt" = "world", empty = {} }
count = 42
ratio = 0.5
`
	got := flatten(t, mustDecode(t, config.TOML, src))
	want := []string{
		"d dir",
		"f count=42",
		"f ratio=0.5",
	}
	for _, w := range want {
		if !contains(got, w) {
			t.Errorf("missing %q in %q", w, got)
		}
	}
	if !contains(got, "f dir/b.txt=world") || !contains(got, "d dir/empty") {
		t.Errorf("inline table children missing: %q", got)
	}
	if got[0] != "d dir" {
		t.Errorf("first entry = %q, want the inline table", got[0])
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestDecodeTOML_RejectsArrays(t *testing.T) {
	t.Parallel()
	_, err := Decode(config.TOML, []byte("[dir]\nfiles = [\"a\", \"b\"]\n"))
	if err == nil || !strings.Contains(err.Error(), "dir.files: arrays are not supported") {
		t.Errorf("error = %v, want array rejection naming dir.files", err)
	}
}

func TestDecodeTOML_SyntaxError(t *testing.T) {
	t.Parallel()
	if _, err := Decode(config.TOML, []byte("[unterminated")); err == nil {
		t.Error("expected syntax error")
	}
}

// --- YAML / JSON ---

func TestDecodeYAML_KeepsOrderAndValueRules(t *testing.T) {
	t.Parallel()
	src := `long/path:
  README.md: "# Rust project"
  docs:
    assets: {}
  .adr-dir: adr
other:
  not-create-1: false
  not-create-2: null
  not-create-3:
  .gitkeep: true
  version: 3
  logo.bin: !!binary aGVsbG8=
`
	assertFlat(t, mustDecode(t, config.YAML, src), []string{
		"d long/path",
		"f long/path/README.md=# Rust project",
		"d long/path/docs",
		"d long/path/docs/assets",
		"f long/path/.adr-dir=adr",
		"d other",
		"f other/.gitkeep=",
		"f other/version=3",
		"f other/logo.bin=hello",
	})
}

func TestDecodeYAML_AnchorsAndMerge(t *testing.T) {
	t.Parallel()
	src := `template: &tpl
  LICENSE: MIT
  README.md: hi
service-a:
  <<: *tpl
  main.go: package main
service-b: *tpl
`
	assertFlat(t, mustDecode(t, config.YAML, src), []string{
		"d template",
		"f template/LICENSE=MIT",
		"f template/README.md=hi",
		"d service-a",
		"f service-a/LICENSE=MIT",
		"f service-a/README.md=hi",
		"f service-a/main.go=package main",
		"d service-b",
		"f service-b/LICENSE=MIT",
		"f service-b/README.md=hi",
	})
}

func TestDecodeYAML_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name, src, want string
	}{
		{"list value", "dir:\n  files:\n    - a\n", "line 3: dir/files: lists are not supported"},
		{"top level list", "- a\n- b\n", "top level must be a mapping"},
		{"syntax", "a: [unclosed\n", ""},
		{"self alias", "a: &x\n  b: *x\n", "a/b: recursive alias"},
		{"self merge", "a: &x\n  <<: *x\n", "recursive alias"},
	}
	for _, tc := range cases {
		_, err := Decode(config.YAML, []byte(tc.src))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error = %q, want it to contain %q", tc.name, err, tc.want)
		}
	}
}

func TestDecodeYAML_AliasExpansionLimit(t *testing.T) {
	t.Parallel()
	// Each level references the previous one ten times.
	var b strings.Builder
	b.WriteString("l0: &l0 {f: x}\n")
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&b, "l%d: &l%d {", i, i)
		for j := 0; j < 10; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "k%d: *l%d", j, i-1)
		}
		b.WriteString("}\n")
	}

	_, err := Decode(config.YAML, []byte(b.String()))
	if err == nil || !strings.Contains(err.Error(), "alias expansions") {
		t.Fatalf("error = %v, want the alias expansion limit", err)
	}
}

func TestDecodeYAML_AliasReusedAcrossSiblings(t *testing.T) {
	t.Parallel()
	src := "base: &b\n  f.txt: x\none: *b\ntwo: *b\n"
	assertFlat(t, mustDecode(t, config.YAML, src), []string{
		"d base",
		"f base/f.txt=x",
		"d one",
		"f one/f.txt=x",
		"d two",
		"f two/f.txt=x",
	})
}

func TestDecodeYAML_Empty(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"", "~\n", "{}"} {
		d := mustDecode(t, config.YAML, src)
		if d.Len() != 0 {
			t.Errorf("Decode(%q) has %d entries, want 0", src, d.Len())
		}
	}
}

func TestDecodeJSON_KeepsOrder(t *testing.T) {
	t.Parallel()
	src := `{"b": {"z.txt": "z", "a.txt": "a"}, "a": true, "skip": null}`
	assertFlat(t, mustDecode(t, config.JSON, src), []string{
		"d b",
		"f b/z.txt=z",
		"f b/a.txt=a",
		"f a=",
	})
}

func TestDecode_UnknownFormat(t *testing.T) {
	t.Parallel()
	if _, err := Decode("ini", []byte("a=b")); err == nil {
		t.Error("expected error for unknown format")
	}
}

// --- Load ---

func TestLoad_InfersFormatFromExtension(t *testing.T) {
	t.Parallel()
	path := writeTempFile(t, "layout.yml", "a.txt: hello\n")
	d, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	assertFlat(t, d, []string{"f a.txt=hello"})
}

func TestLoad_ExplicitFormatOverridesExtension(t *testing.T) {
	t.Parallel()
	path := writeTempFile(t, "layout.txt", `"a.txt" = "hello"`+"\n")
	d, err := Load(path, config.TOML)
	if err != nil {
		t.Fatal(err)
	}
	assertFlat(t, d, []string{"f a.txt=hello"})
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml"), ""); err == nil || !strings.Contains(err.Error(), "reading tree file") {
		t.Errorf("missing file: error = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "tree.txt"), ""); err == nil {
		t.Error("unknown extension: expected error")
	}

	bad := writeTempFile(t, "bad.toml", "x = [1]\n")
	if _, err := Load(bad, ""); err == nil || !strings.Contains(err.Error(), "parsing "+bad) {
		t.Errorf("bad content: error = %v", err)
	}
}
