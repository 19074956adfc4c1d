package yajson

import (
	"bufio"
	"bytes"
	"io"
	"sort"

	"github.com/aloshkarev/yajson/internal/dtoa"
	"github.com/aloshkarev/yajson/internal/scanner"
	"github.com/aloshkarev/yajson/internal/utf8x"
)

// stringSinkReserve and streamSinkReserve size the initial buffers for
// Serialize and SerializeTo (which Encoder uses) respectively: 4 KiB for
// the string path and a larger 8 KiB for the streaming one.
const (
	stringSinkReserve = 4096
	streamSinkReserve = 8192
)

// Serialize renders v to a freshly allocated string under opts.
func Serialize(v Value, opts SerializeOptions) string {
	buf := bytes.NewBuffer(make([]byte, 0, estimateSize(v, stringSinkReserve)))
	w := selectWriter(opts)
	w(buf, v, opts, 0)
	return buf.String()
}

// SerializeTo streams v to dst under opts through a buffered writer.
func SerializeTo(dst io.Writer, v Value, opts SerializeOptions) error {
	bw := bufio.NewWriterSize(dst, streamSinkReserve)
	w := selectWriter(opts)
	w(bw, v, opts, 0)
	return bw.Flush()
}

// sink is the minimal surface the four writer specializations need;
// *bytes.Buffer and *bufio.Writer both satisfy it without adaptation.
type sink interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
	Write([]byte) (int, error)
}

type writerFunc func(sink, Value, SerializeOptions, int)

// selectWriter picks one of the four concrete writer specializations so
// the pretty/ensure_ascii decision is made once per call instead of
// being re-checked at every recursive step, mirroring the reference
// implementation's compile-time dispatch on those two flags.
func selectWriter(opts SerializeOptions) writerFunc {
	switch {
	case opts.pretty() && opts.EnsureASCII:
		return writePrettyASCII
	case opts.pretty() && !opts.EnsureASCII:
		return writePrettyUTF8
	case !opts.pretty() && opts.EnsureASCII:
		return writeCompactASCII
	default:
		return writeCompactUTF8
	}
}

func writeCompactASCII(w sink, v Value, opts SerializeOptions, depth int) {
	writeValue(w, v, opts, depth, false, true)
}

func writeCompactUTF8(w sink, v Value, opts SerializeOptions, depth int) {
	writeValue(w, v, opts, depth, false, false)
}

func writePrettyASCII(w sink, v Value, opts SerializeOptions, depth int) {
	writeValue(w, v, opts, depth, true, true)
}

func writePrettyUTF8(w sink, v Value, opts SerializeOptions, depth int) {
	writeValue(w, v, opts, depth, true, false)
}

func writeValue(w sink, v Value, opts SerializeOptions, depth int, pretty, ensureASCII bool) {
	switch v.Type() {
	case Null:
		w.WriteString("null")
	case Bool:
		b, _ := v.AsBool()
		if b {
			w.WriteString("true")
		} else {
			w.WriteString("false")
		}
	case Integer:
		i, _ := v.AsInteger()
		var buf [20]byte
		w.Write(dtoa.AppendInt(buf[:0], i))
	case UInteger:
		u, _ := v.AsUInteger()
		var buf [20]byte
		w.Write(dtoa.AppendUint(buf[:0], u))
	case Float:
		f, _ := v.AsFloat()
		writeFloat(w, f, opts)
	case String:
		s, _ := v.AsStringView()
		writeEscapedString(w, s, ensureASCII)
	case Array:
		writeArray(w, v, opts, depth, pretty, ensureASCII)
	case TypeObject:
		writeObject(w, v, opts, depth, pretty, ensureASCII)
	}
}

func writeFloat(w sink, f float64, opts SerializeOptions) {
	if f != f { // NaN
		if opts.AllowNaNInf {
			w.WriteString("NaN")
		} else {
			w.WriteString("null")
		}
		return
	}
	if f > maxFloat64 || f < -maxFloat64 {
		if !opts.AllowNaNInf {
			w.WriteString("null")
			return
		}
		if f > 0 {
			w.WriteString("Infinity")
		} else {
			w.WriteString("-Infinity")
		}
		return
	}
	var buf [32]byte
	w.Write(dtoa.AppendFloat(buf[:0], f))
}

const maxFloat64 = 1.7976931348623157e+308

func writeArray(w sink, v Value, opts SerializeOptions, depth int, pretty, ensureASCII bool) {
	a, _ := v.AsArray()
	if len(a) == 0 {
		w.WriteString("[]")
		return
	}
	w.WriteByte('[')
	for i, elem := range a {
		if i > 0 {
			w.WriteByte(',')
		}
		writeIndent(w, opts, depth+1, pretty)
		writeValue(w, elem, opts, depth+1, pretty, ensureASCII)
	}
	writeIndent(w, opts, depth, pretty)
	w.WriteByte(']')
}

func writeObject(w sink, v Value, opts SerializeOptions, depth int, pretty, ensureASCII bool) {
	obj, _ := v.AsObject()
	if obj.empty() {
		w.WriteString("{}")
		return
	}
	keys := obj.entries
	if opts.SortKeys {
		keys = sortedEntries(obj.entries)
	}
	w.WriteByte('{')
	for i, e := range keys {
		if i > 0 {
			w.WriteByte(',')
		}
		writeIndent(w, opts, depth+1, pretty)
		writeEscapedString(w, e.key, ensureASCII)
		w.WriteByte(':')
		if pretty {
			w.WriteByte(' ')
		}
		writeValue(w, e.val, opts, depth+1, pretty, ensureASCII)
	}
	writeIndent(w, opts, depth, pretty)
	w.WriteByte('}')
}

// sortedEntries returns entries ordered by key, leaving the object's own
// slice untouched.
func sortedEntries(entries []entry) []entry {
	out := make([]entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func writeIndent(w sink, opts SerializeOptions, depth int, pretty bool) {
	if !pretty {
		return
	}
	w.WriteByte('\n')
	for i := 0; i < depth*opts.Indent; i++ {
		w.WriteByte(' ')
	}
}

// writeEscapedString writes s as a JSON string literal, delegating to
// scanner.FindNeedsEscape to locate runs of bytes needing no escaping so
// the common case copies whole spans instead of byte-by-byte.
func writeEscapedString(w sink, s string, ensureASCII bool) {
	w.WriteByte('"')
	b := []byte(s)
	pos := 0
	for pos < len(b) {
		rel := scanner.FindNeedsEscape(b[pos:], ensureASCII)
		if rel > 0 {
			w.Write(b[pos : pos+rel])
			pos += rel
		}
		if pos >= len(b) {
			break
		}
		c := b[pos]
		switch {
		case c == '"':
			w.WriteString(`\"`)
			pos++
		case c == '\\':
			w.WriteString(`\\`)
			pos++
		case c == '\b':
			w.WriteString(`\b`)
			pos++
		case c == '\f':
			w.WriteString(`\f`)
			pos++
		case c == '\n':
			w.WriteString(`\n`)
			pos++
		case c == '\r':
			w.WriteString(`\r`)
			pos++
		case c == '\t':
			w.WriteString(`\t`)
			pos++
		case c < 0x20:
			var buf [6]byte
			n := utf8x.EncodeEscaped(rune(c), buf[:])
			w.Write(buf[:n])
			pos++
		default: // c >= 0x80 under ensureASCII
			r, size := utf8x.Decode(b[pos:])
			var buf [12]byte
			n := utf8x.EncodeEscaped(r, buf[:])
			w.Write(buf[:n])
			pos += size
		}
	}
	w.WriteByte('"')
}

// estimateSize produces a rough pre-reservation for the top-level buffer,
// matching the reference implementation's per-kind heuristics
// (~64 bytes/array element, ~80/object entry, string length + 2), only
// applied above a size worth pre-reserving for.
func estimateSize(v Value, floor int) int {
	est := estimate(v)
	if est < floor {
		return floor
	}
	return est
}

func estimate(v Value) int {
	switch v.Type() {
	case Array:
		a, _ := v.AsArray()
		return 2 + 64*len(a)
	case TypeObject:
		obj, _ := v.AsObject()
		return 2 + 80*obj.size()
	case String:
		s, _ := v.AsStringView()
		return len(s) + 2
	default:
		return 16
	}
}
