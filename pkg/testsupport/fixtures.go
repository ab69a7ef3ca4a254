package testsupport

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/jsonschema"
	"github.com/goliatone/go-forminput/pkg/schema"
)

// UpdateEnv names the environment variable that rewrites golden files.
const UpdateEnv = "UPDATE_GOLDENS"

// MustLoadSchema reads a JSON or YAML schema fragment fixture.
func MustLoadSchema(t *testing.T, path string) schema.Schema {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read schema fixture: %v", err)
	}
	s, err := jsonschema.Parse(data)
	if err != nil {
		t.Fatalf("parse schema fixture %s: %v", path, err)
	}
	return s
}

// AssertJSONGolden compares got with the JSON document stored at path. Both
// sides go through a JSON round trip into T so that numbers and omitted
// fields compare the same way they would reach a client.
func AssertJSONGolden[T any](t *testing.T, path string, got T) {
	t.Helper()

	payload, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	updateGolden(t, path, append(payload, '\n'))

	var want, actual T
	if err := json.Unmarshal(MustReadGolden(t, path), &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	if err := json.Unmarshal(payload, &actual); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if diff := cmp.Diff(want, actual); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", filepath.Base(path), diff)
	}
}

// AssertGoldenString compares rendered text with the file at path.
func AssertGoldenString(t *testing.T, path, got string) {
	t.Helper()

	updateGolden(t, path, []byte(got))
	if want := MustReadGoldenString(t, path); want != got {
		t.Fatalf("%s mismatch\nwant: %q\n got: %q", filepath.Base(path), want, got)
	}
}

// MustReadGolden reads a golden file.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureRender runs render against a buffer and returns both the returned
// string and what was written.
func CaptureRender(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}

func updateGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
