package loxt

import "github.com/KimNorgaard/go-loxt/token"

// cursor walks the source one byte at a time, tracking line and column.
type cursor struct {
	src []byte
	loc token.Location
}

func newCursor(src []byte) cursor {
	return cursor{src: src, loc: token.Location{Line: 1, Column: 1}}
}

func (c *cursor) atEnd() bool {
	return c.loc.Offset >= len(c.src)
}

// peek returns the current byte without consuming it, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.src[c.loc.Offset]
}

// advance consumes the current byte and returns it together with the
// location it was found at. It must not be called at end of input.
func (c *cursor) advance() (byte, token.Location) {
	ch, at := c.src[c.loc.Offset], c.loc
	c.loc.Offset++
	if ch == '\n' {
		c.loc.Line++
		c.loc.Column = 1
	} else {
		c.loc.Column++
	}
	return ch, at
}

// match consumes the current byte only if it equals expected.
func (c *cursor) match(expected byte) bool {
	if c.atEnd() || c.src[c.loc.Offset] != expected {
		return false
	}
	c.advance()
	return true
}

// since returns the source text from start up to the cursor.
func (c *cursor) since(start token.Location) []byte {
	return c.src[start.Offset:c.loc.Offset]
}
