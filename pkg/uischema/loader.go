package uischema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forminput/pkg/input"
)

// LoadFS walks the provided filesystem and parses JSON/YAML UI documents.
// When fsys is nil or no documents are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]FieldConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		return store.merge(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Parse builds a store from a single JSON or YAML document.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{fields: make(map[string]FieldConfig)}
	if err := store.merge(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Field returns the configuration for a field id or UI document key.
func (s *Store) Field(id string) (FieldConfig, bool) {
	if s == nil {
		return FieldConfig{}, false
	}
	cfg, ok := s.fields[FieldID(id)]
	return cfg, ok
}

// FieldIDs lists the configured field ids in sorted order.
func (s *Store) FieldIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.fields))
	for id := range s.fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

type documentFile struct {
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func (s *Store) merge(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for key, cfg := range doc.Fields {
		id := FieldID(key)
		if id == "" {
			return fmt.Errorf("uischema: file %s field key %q normalises to an empty id", source, key)
		}
		if _, exists := s.fields[id]; exists {
			return fmt.Errorf("uischema: duplicate field %q (file %s)", id, source)
		}
		cfg.OriginalPath = key
		cfg.Options = cfg.Options.Clone()
		s.fields[id] = cfg
	}
	return nil
}

// parseDocument decodes JSON or YAML with yaml.v3, which reads both. Unknown
// keys are rejected so misspelt options surface as errors instead of being
// ignored.
func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(bytes.TrimSpace(data)) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && unknownFieldError(typeErr) {
			return documentFile{}, fmt.Errorf("uischema: parse %s: %w: %s", source, input.ErrUnknownOption, strings.Join(typeErr.Errors, "; "))
		}
		return documentFile{}, fmt.Errorf("uischema: parse %s: %w", source, err)
	}
	return doc, nil
}

func unknownFieldError(err *yaml.TypeError) bool {
	for _, msg := range err.Errors {
		if strings.Contains(msg, "not found in type") {
			return true
		}
	}
	return false
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
