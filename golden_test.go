package loxt_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-loxt"
	"github.com/KimNorgaard/go-loxt/internal/testutil"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := testutil.Sources()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := testutil.ReadTestData(file)
			require.NoError(t, err)

			toks := loxt.Lex(src)
			actual := toks.String()
			if err := toks.Err(); err != nil {
				// Sources that are expected to fail end with the error message.
				actual += "error: " + err.Error() + "\n"
			}

			goldenFile := filepath.Join(testutil.Dir, strings.Replace(file, ".lox", ".golden", 1))
			if *update {
				err := os.WriteFile(goldenFile, []byte(actual), 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), actual, "Token stream does not match golden file.")
		})
	}
}
