package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// Dir is the location of the test data relative to the module root.
const Dir = "internal/testutil/testdata"

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Sources returns the names of every embedded .lox file.
func Sources() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.lox")
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = strings.TrimPrefix(m, "testdata/")
	}
	return matches, nil
}
