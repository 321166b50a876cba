/*
Package loxt is the lexical analyzer of the loxt scripting language. It
turns source text into an ordered stream of typed tokens with source
positions, deduplicated identifier text and decoded literal values.

A scan never fails. Lexical errors, such as an unterminated string or a
character the language does not use, are turned into Error tokens and
recorded on the returned TokenList, and scanning carries on with the next
character:

	src := []byte("var answer = 42; // the answer")

	toks := loxt.Lex(src)
	if toks.HasError() {
		// toks.Err() describes every problem found
	}
	for _, tok := range toks.All() {
		fmt.Println(toks.Format(tok))
	}

Identifier tokens carry an id into the list's identifier table, so equal
spellings compare by id. String and Number tokens carry an id into the
matching literal store:

	tok := toks.At(1)
	name := toks.Identifier(tok.Index) // "answer"

The TokenList copies every piece of text it needs, so the source buffer may
be reused as soon as Lex returns.

Diagnostics can be surfaced as they are found with WithReporter, and
numbers that do not fit in 64 bits are handled according to
WithOverflowPolicy:

	toks := loxt.Lex(src,
		loxt.WithReporter(errors.WriterReporter{W: os.Stderr}),
		loxt.WithOverflowPolicy(loxt.OverflowSaturate),
	)
*/
package loxt
