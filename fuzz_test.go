//go:build go1.18

package loxt_test

import (
	"testing"

	"github.com/KimNorgaard/go-loxt"
	"github.com/KimNorgaard/go-loxt/internal/testutil"
)

func FuzzLex(f *testing.F) {
	// Seed the corpus with the golden sources.
	files, err := testutil.Sources()
	if err != nil {
		f.Fatalf("failed to list seed files: %v", err)
	}
	for _, file := range files {
		data, err := testutil.ReadTestData(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte(""))
	f.Add([]byte(`"unterminated`))
	f.Add([]byte("// comment without newline"))
	f.Add([]byte("99999999999999999999999999"))
	f.Add([]byte("é@\x00\xff"))
	f.Add([]byte("!=!==<=>=>"))

	f.Fuzz(func(t *testing.T, src []byte) {
		for _, policy := range []loxt.OverflowPolicy{loxt.OverflowReject, loxt.OverflowSaturate, loxt.OverflowWrap} {
			toks := loxt.Lex(src, loxt.WithOverflowPolicy(policy))
			requireWellFormed(t, src, toks)
			// Rendering must work for every token the scanner produces.
			_ = toks.String()
		}
	})
}
