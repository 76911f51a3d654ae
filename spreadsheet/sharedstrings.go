package spreadsheet

// SharedStrings is the workbook's string pool. Add and Append both
// return a string's table id; Add dedupes identical plain strings
// against the pool, while Append always inserts a new entry because a
// rich-text run's flattened plain-text rendering is not a reliable
// dedup key (two differently-formatted runs can render to the same
// text). A segment-based entry is built with
// StartSegment/AppendSegment/CommitSegments rather than Append/Add
// directly, since it may carry several differently formatted runs.
type SharedStrings interface {
	Add(text []byte) int
	Append(text []byte) int

	StartSegment() SegmentBuilder
}

// SegmentBuilder accumulates the runs of a single rich-text shared
// string; CommitSegments flattens the accumulated runs into one table
// entry and returns its id.
type SegmentBuilder interface {
	SetBold(value bool)
	SetItalic(value bool)
	SetFontName(name string)
	SetFontSize(points float64)
	SetFontColor(color Color)
	AppendSegment(text []byte)
	CommitSegments() int
}
