package yajson

import "fmt"

// ErrorCode mirrors the errc taxonomy: parse errors occupy 1-49, value
// access errors 50-79, serialization errors 80-99.
type ErrorCode int

const (
	UnexpectedEndOfInput ErrorCode = 1
	UnexpectedCharacter  ErrorCode = 2
	InvalidEscape        ErrorCode = 3
	InvalidUnicodeEscape ErrorCode = 4
	InvalidNumber        ErrorCode = 5
	UnterminatedString   ErrorCode = 6
	UnterminatedArray    ErrorCode = 7
	UnterminatedObject   ErrorCode = 8
	TrailingContent      ErrorCode = 9
	MaxDepthExceeded     ErrorCode = 10
	InvalidLiteral       ErrorCode = 11
	DuplicateKey         ErrorCode = 12
	InvalidUTF8          ErrorCode = 13
	InvalidComment       ErrorCode = 14

	TypeMismatch    ErrorCode = 50
	OutOfRange      ErrorCode = 51
	KeyNotFound     ErrorCode = 52
	IntegerOverflow ErrorCode = 53

	NaNOrInfinity ErrorCode = 80
)

func (c ErrorCode) String() string {
	switch c {
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case UnexpectedCharacter:
		return "unexpected character"
	case InvalidEscape:
		return "invalid escape sequence"
	case InvalidUnicodeEscape:
		return "invalid unicode escape"
	case InvalidNumber:
		return "invalid number"
	case UnterminatedString:
		return "unterminated string"
	case UnterminatedArray:
		return "unterminated array"
	case UnterminatedObject:
		return "unterminated object"
	case TrailingContent:
		return "trailing content after JSON"
	case MaxDepthExceeded:
		return "maximum nesting depth exceeded"
	case InvalidLiteral:
		return "invalid literal"
	case DuplicateKey:
		return "duplicate key"
	case InvalidUTF8:
		return "invalid UTF-8 encoding"
	case InvalidComment:
		return "invalid comment"
	case TypeMismatch:
		return "type mismatch"
	case OutOfRange:
		return "index out of range"
	case KeyNotFound:
		return "key not found"
	case IntegerOverflow:
		return "integer overflow"
	case NaNOrInfinity:
		return "NaN or Infinity not representable"
	default:
		return "unknown json error"
	}
}

// SourceLocation pinpoints a byte offset in the source text, 1-based for
// line/column, matching the convention editors use when reporting
// diagnostics at that offset.
type SourceLocation struct {
	Line   int
	Column int
	Offset int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// Error is the single error type returned throughout the package. There
// is no separate exception hierarchy: Go has one error interface, so
// ParseError/TypeError/OutOfRangeError collapse into Code-discriminated
// instances of the same struct rather than three Go types.
type Error struct {
	Code ErrorCode
	Msg  string
	Loc  SourceLocation // zero value when not a parse error
}

func (e *Error) Error() string {
	if e.Code < 50 {
		return fmt.Sprintf("json: parse error at %s: %s", e.Loc, e.Msg)
	}
	return fmt.Sprintf("json: %s", e.Msg)
}

// Is reports whether target is an *Error with the same Code, so
// errors.Is(err, &Error{Code: KeyNotFound}) matches regardless of Msg or Loc.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newErr(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func newParseErr(code ErrorCode, msg string, loc SourceLocation) *Error {
	return &Error{Code: code, Msg: msg, Loc: loc}
}

func typeMismatch(want, got Type) *Error {
	return newErr(TypeMismatch, fmt.Sprintf("expected %s, got %s", want, got))
}

// MustValue panics if err is non-nil, otherwise returns v. It gives
// callers that prefer the reference implementation's default
// exception-throwing style an equivalent entry point alongside the
// (Value, error) result style used everywhere else.
func MustValue(v Value, err error) Value {
	if err != nil {
		panic(err)
	}
	return v
}
