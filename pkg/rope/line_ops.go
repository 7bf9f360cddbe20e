package rope

// TotalLines returns the number of lines in the rope: one more than
// LineCount, since the rope's final line need not end with '\n'. This,
// and the rest of this file, draw the raw-line-count vs
// line-including-terminator distinction at the façade level: the
// underlying RawLineMetric (metrics.go) only ever counts '\n' bytes.
func (r *Rope) TotalLines() int {
	return r.LineCount() + 1
}

// ByteOfLine returns the byte offset where line l (0-indexed) begins.
func (r *Rope) ByteOfLine(l int) (int, error) {
	total := r.LineCount()
	if l < 0 || l > total {
		return 0, errOutOfBounds("Rope.ByteOfLine", l, l, total)
	}
	if l == 0 {
		return 0, nil
	}
	ts := r.tree.Slice(RawLineMetric{}, 0, l)
	return ts.Summary().Bytes, nil
}

// LineOfByte returns the line index (0-indexed) containing byte i.
func (r *Rope) LineOfByte(i int) (int, error) {
	if i < 0 || i > r.Len() {
		return 0, errOutOfBounds("Rope.LineOfByte", i, i, r.Len())
	}
	if i == 0 {
		return 0, nil
	}
	ts := r.tree.Slice(ByteMetric{}, 0, i)
	return ts.Summary().LineBreaks, nil
}

// Lines returns the concatenated content of lines [lo, hi) (0-indexed,
// half-open); every line keeps its own trailing '\n' except possibly the
// rope's very last line. hi may equal TotalLines() to mean "through the
// end of the rope", including a final line with no terminator.
func (r *Rope) Lines(lo, hi int) (string, error) {
	total := r.TotalLines()
	if lo < 0 || hi < lo || hi > total {
		return "", errOutOfBounds("Rope.Lines", lo, hi, total)
	}
	if lo == hi {
		return "", nil
	}
	start, err := r.ByteOfLine(lo)
	if err != nil {
		return "", err
	}
	end := r.Len()
	if hi != total {
		end, err = r.ByteOfLine(hi)
		if err != nil {
			return "", err
		}
	}
	return r.Slice(start, end)
}
