package format

// writer accumulates printed output and provides helpers for emitting
// canonical whitespace.
type writer struct {
	buf         []byte
	indentWidth int
}

func newWriter(indentWidth int, sizeHint int) *writer {
	return &writer{
		buf:         make([]byte, 0, sizeHint),
		indentWidth: indentWidth,
	}
}

func (w *writer) string(s string) {
	w.buf = append(w.buf, s...)
}

func (w *writer) byte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *writer) newline() {
	w.buf = append(w.buf, '\n')
}

// indent writes the indentation for the given nesting depth.
func (w *writer) indent(depth int) {
	w.pad(depth * w.indentWidth)
}

// pad writes n spaces.
func (w *writer) pad(n int) {
	for range n {
		w.buf = append(w.buf, ' ')
	}
}
