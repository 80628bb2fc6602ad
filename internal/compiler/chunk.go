package compiler

import "strings"

// Chunk is a rose tree of emitted target-source lines: leaves are
// strings, internal nodes are subchunks rendered indented one level
// further than their parent. It exists so nested blocks (a function
// body, a do/end) can be built up without premature string concatenation
// — a subchunk can keep being appended to long after its enclosing form
// has moved on to emitting its own trailing lines.
type Chunk struct {
	items []chunkItem
}

type chunkItem struct {
	line  string
	child *Chunk
	isSub bool
}

// NewChunk returns an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// AddLine appends a leaf line, verbatim.
func (c *Chunk) AddLine(line string) {
	c.items = append(c.items, chunkItem{line: line})
}

// NewChild appends and returns a fresh subchunk; every line later added to
// it (directly or via its own children) is indented one level relative to
// c when rendered.
func (c *Chunk) NewChild() *Chunk {
	child := NewChunk()
	c.items = append(c.items, chunkItem{child: child, isSub: true})
	return child
}

// Append moves every item of other onto the end of c, at c's current
// nesting level. It lets a special form build a body in a detached
// scratch chunk — to inspect what compiling its tail produced — before
// deciding where in the real tree that body belongs.
func (c *Chunk) Append(other *Chunk) {
	c.items = append(c.items, other.items...)
}

// Render assembles the chunk tree into text, indenting each subchunk's
// lines by tab once per nesting level. Render is pure: it depends only on
// the chunk tree and tab.
func Render(c *Chunk, tab string) string {
	return strings.Join(renderLines(c, tab), "\n")
}

func renderLines(c *Chunk, tab string) []string {
	var out []string
	for _, item := range c.items {
		if !item.isSub {
			out = append(out, item.line)
			continue
		}
		for _, sub := range renderLines(item.child, tab) {
			out = append(out, tab+sub)
		}
	}
	return out
}
