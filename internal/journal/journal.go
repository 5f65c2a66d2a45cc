// Package journal records the filesystem operations a materialization
// performs, in the order they were issued.
package journal

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cbout22/filetree/internal/writer"
)

// Op is the kind of a recorded operation.
type Op string

const (
	OpDir  Op = "dir"
	OpFile Op = "file"
)

// Entry is one attempted operation.
type Entry struct {
	Op       Op     `json:"op"`
	Path     string `json:"path"`
	Size     int    `json:"size,omitempty"`     // bytes written; files only
	Checksum string `json:"checksum,omitempty"` // SHA-256 of the content; files only
	Error    string `json:"error,omitempty"`    // set when the operation failed
}

// Journal is a FileWriter that records each call before forwarding it.
// With a nil inner writer it records only, which makes it a dry run.
type Journal struct {
	// Version of the journal file format.
	Version int `json:"version"`
	// CreatedAt is an RFC 3339 timestamp.
	CreatedAt string  `json:"created_at"`
	Entries   []Entry `json:"entries"`

	inner writer.FileWriter
	data  map[string][]byte
}

var _ writer.FileWriter = (*Journal)(nil)

// New returns an empty journal forwarding to inner.
func New(inner writer.FileWriter) *Journal {
	return &Journal{
		Version:   1,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:   []Entry{},
		inner:     inner,
		data:      make(map[string][]byte),
	}
}

func (j *Journal) MkdirAll(path string) error {
	var err error
	if j.inner != nil {
		err = j.inner.MkdirAll(path)
	}
	j.record(Entry{Op: OpDir, Path: path}, err)
	return err
}

func (j *Journal) Write(path string, data []byte) error {
	var err error
	if j.inner != nil {
		err = j.inner.Write(path, data)
	}
	j.record(Entry{Op: OpFile, Path: path, Size: len(data), Checksum: checksum(data)}, err)
	if err == nil {
		j.data[path] = data
	}
	return err
}

func (j *Journal) record(e Entry, err error) {
	if err != nil {
		e.Error = err.Error()
	}
	j.Entries = append(j.Entries, e)
}

// Content returns the bytes last written to path through the journal.
func (j *Journal) Content(path string) ([]byte, bool) {
	b, ok := j.data[path]
	return b, ok
}

// Paths returns the path of every recorded entry in order.
func (j *Journal) Paths() []string {
	paths := make([]string, len(j.Entries))
	for i, e := range j.Entries {
		paths[i] = e.Path
	}
	return paths
}

// Failed returns the failing entry, if any.
func (j *Journal) Failed() (Entry, bool) {
	for _, e := range j.Entries {
		if e.Error != "" {
			return e, true
		}
	}
	return Entry{}, false
}

// Save writes the journal as JSON to the given path.
func (j *Journal) Save(path string) error {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}

	return nil
}

// Load reads a journal written by Save. The result records only.
func Load(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	j := New(nil)
	if err := json.Unmarshal(data, j); err != nil {
		return nil, fmt.Errorf("parsing journal: %w", err)
	}
	if j.Entries == nil {
		j.Entries = []Entry{}
	}
	return j, nil
}

// checksum returns the hex-encoded SHA-256 of the given data.
func checksum(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)
}
