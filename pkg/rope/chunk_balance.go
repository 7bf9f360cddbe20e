package rope

import "unicode/utf8"

// BalanceSlices implements tree.Leaf[Chunk, ChunkSummary]'s redistribution
// contract, a two-leaf balancer built on the same CRLF-safe splitting rule
// as the chunk streamer:
//
//   - if both chunks already meet min_bytes, they are returned unchanged;
//   - else if they fit in one chunk, they are concatenated into one;
//   - else bytes move from the short side's neighbour until the short side
//     meets min_bytes, with the cut adjusted to the nearest UTF-8 boundary
//     and, if that boundary would split a CRLF pair, one byte further.
func (c Chunk) BalanceSlices(left Chunk, leftSummary ChunkSummary, right Chunk, rightSummary ChunkSummary) (Chunk, ChunkSummary, *Chunk, ChunkSummary) {
	bounds := left.bounds

	if left.IsBigEnough(leftSummary) && right.IsBigEnough(rightSummary) {
		r := right
		return left, leftSummary, &r, rightSummary
	}

	combined := left.text + right.text
	if len(combined) <= bounds.MaxBytes {
		merged := Chunk{text: combined, bounds: bounds}
		return merged, merged.Summarize(), nil, ChunkSummary{}
	}

	var cut int
	if leftSummary.Bytes < bounds.MinBytes {
		cut = growLeftCut(combined, bounds)
	} else {
		cut = growRightCut(combined, bounds)
	}

	newLeft := Chunk{text: combined[:cut], bounds: bounds}
	newRight := Chunk{text: combined[cut:], bounds: bounds}
	return newLeft, newLeft.Summarize(), &newRight, newRight.Summarize()
}

// growLeftCut picks the split point when left is short: advance to
// min_bytes, round forward to a UTF-8 boundary, and push one further byte
// forward if that boundary would otherwise separate a CRLF pair.
func growLeftCut(combined string, bounds ChunkBounds) int {
	pos := bounds.MinBytes
	if pos > len(combined) {
		pos = len(combined)
	}
	pos = nextRuneBoundary(combined, pos)
	if splitsCRLF(combined, pos) {
		pos++
	}
	return pos
}

// growRightCut picks the split point when right is short: back off from
// the end by min_bytes, round backward to a UTF-8 boundary, and pull one
// further byte backward if that boundary would otherwise separate a CRLF
// pair.
func growRightCut(combined string, bounds ChunkBounds) int {
	pos := len(combined) - bounds.MinBytes
	if pos < 0 {
		pos = 0
	}
	pos = prevRuneBoundary(combined, pos)
	if splitsCRLF(combined, pos) {
		pos--
	}
	return pos
}

// splitsCRLF reports whether cutting s at byte offset pos would separate a
// '\r' (at pos-1) from the '\n' that follows it (at pos).
func splitsCRLF(s string, pos int) bool {
	return pos > 0 && pos < len(s) && s[pos-1] == '\r' && s[pos] == '\n'
}

func prevRuneBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	if pos <= 0 {
		return 0
	}
	for pos > 0 && !utf8.RuneStart(s[pos]) {
		pos--
	}
	return pos
}
