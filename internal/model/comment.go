package model

// RegionKind はコメント領域の種別（行コメント／ブロックコメント）を表します。
type RegionKind string

const (
	RegionLine  RegionKind = "line"
	RegionBlock RegionKind = "block"
)

// Region は走査対象テキスト内の 1 件のコメント領域です。
// Start は走査時に指定したオフセットを加算済みのバイト位置です。
type Region struct {
	Start        int        `json:"start"`
	Length       int        `json:"length"`
	Kind         RegionKind `json:"kind"`
	Unterminated bool       `json:"unterminated,omitempty"`
}

// End は領域の終端（排他的）を返します。
func (r Region) End() int {
	return r.Start + r.Length
}

// Span は 1 件の領域を行・桁・バイトオフセットで表します。
type Span struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
	ByteStart int `json:"byte_start"`
	ByteEnd   int `json:"byte_end"`
}

// ExtractedComment は区切り記号を取り除いたコメント本文と元の領域の組です。
type ExtractedComment struct {
	Content string `json:"content"`
	Region  Region `json:"region"`
	Span    Span   `json:"span"`
}
