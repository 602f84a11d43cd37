package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/terracreatures/internal/telemetry"
)

// Format is an on-disk encoding for FileStore.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported save file extension %q", filepath.Ext(path))
	}
}

// FileStore keeps the save in one JSON or YAML file.
type FileStore struct {
	path   string
	format Format
}

// NewFileStore creates a store for path. The format follows the extension.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("save path is required")
	}
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Clean(path), format: format}, nil
}

// Path returns the save file location.
func (s *FileStore) Path() string { return s.path }

// Save writes the record atomically: readers see either the old or the new
// file, never a partial one.
func (s *FileStore) Save(ctx context.Context, rec Record) error {
	tracer := telemetry.Tracer("save")
	_, span := tracer.Start(ctx, "save.write")
	defer span.End()
	span.SetAttributes(
		attribute.String("save.backend", "file"),
		attribute.String("save.format", s.format.String()),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.encode(rec)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	span.SetAttributes(attribute.Int("save.bytes", len(data)))

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp save: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Load reads and validates the saved record. It returns ErrNoSave when the
// file does not exist.
func (s *FileStore) Load(ctx context.Context) (Record, error) {
	tracer := telemetry.Tracer("save")
	_, span := tracer.Start(ctx, "save.read")
	defer span.End()
	span.SetAttributes(
		attribute.String("save.backend", "file"),
		attribute.String("save.format", s.format.String()),
	)

	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNoSave
	}
	if err != nil {
		return Record{}, fmt.Errorf("read save: %w", err)
	}

	rec, err := s.decode(data)
	if err != nil {
		return Record{}, fmt.Errorf("decode save: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Close is a no-op; the file is only open during Save and Load.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) encode(rec Record) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(rec)
	}
	return json.MarshalIndent(rec, "", "  ")
}

func (s *FileStore) decode(data []byte) (Record, error) {
	var rec Record
	var err error
	if s.format == FormatYAML {
		err = yaml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	return rec, err
}

var _ Store = (*FileStore)(nil)
