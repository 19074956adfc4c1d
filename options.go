package yajson

// ParseOptions toggles non-standard parsing extensions. The zero value is
// strict RFC 8259 parsing with AllowDuplicateKeys false, so a repeated key
// is a DuplicateKey error; StrictOptions, LenientOptions and JSON5Options
// all set AllowDuplicateKeys (last-value-wins).
type ParseOptions struct {
	AllowComments       bool
	AllowTrailingCommas bool
	AllowSingleQuotes   bool
	AllowUnquotedKeys   bool
	AllowNaNInf         bool
	AllowHexNumbers     bool
	AllowControlChars   bool
	AllowDuplicateKeys  bool
	MaxDepth            int
}

const defaultMaxDepth = 512

// StrictOptions is RFC 8259 / ECMA-404 parsing with no extensions.
func StrictOptions() ParseOptions {
	return ParseOptions{AllowDuplicateKeys: true, MaxDepth: defaultMaxDepth}
}

// LenientOptions accepts comments, trailing commas, single-quoted
// strings, unquoted keys, and NaN/Infinity literals.
func LenientOptions() ParseOptions {
	return ParseOptions{
		AllowComments:       true,
		AllowTrailingCommas: true,
		AllowSingleQuotes:   true,
		AllowUnquotedKeys:   true,
		AllowNaNInf:         true,
		AllowDuplicateKeys:  true,
		MaxDepth:            defaultMaxDepth,
	}
}

// JSON5Options is LenientOptions plus hex numbers and unescaped control
// characters in strings.
func JSON5Options() ParseOptions {
	o := LenientOptions()
	o.AllowHexNumbers = true
	o.AllowControlChars = true
	return o
}

func (o ParseOptions) maxDepth() int {
	if o.MaxDepth <= 0 {
		return defaultMaxDepth
	}
	return o.MaxDepth
}

// SerializeOptions controls textual output shape.
type SerializeOptions struct {
	Indent      int // <0 compact, >=0 pretty with that many spaces per level
	EnsureASCII bool
	AllowNaNInf bool
	SortKeys    bool
}

// CompactOptions is the default compact, ASCII-passthrough serialization.
func CompactOptions() SerializeOptions {
	return SerializeOptions{Indent: -1}
}

// PrettyOptions serializes with the given per-level indent width.
func PrettyOptions(indent int) SerializeOptions {
	return SerializeOptions{Indent: indent}
}

func (o SerializeOptions) pretty() bool { return o.Indent >= 0 }
