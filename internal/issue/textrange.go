package issue

// TextRange identifies a span of code inside a file. Lines are 1-based;
// offsets are 0-based within their line. A range with StartLine and EndLine
// both 0 is the whole-file sentinel and refers to the entire file content.
type TextRange struct {
	StartLine   int `json:"startLine"`
	StartOffset int `json:"startOffset"`
	EndLine     int `json:"endLine"`
	EndOffset   int `json:"endOffset"`
}

// WholeFile reports whether the range is the whole-file sentinel.
func (r *TextRange) WholeFile() bool {
	return r != nil && r.StartLine == 0 && r.EndLine == 0
}

// TextRangeWithHash is a text range annotated with the digest of the code it
// anchored at recording time.
type TextRangeWithHash struct {
	TextRange
	Hash string `json:"hash"`
}
