// Package yajson is a JSON library built around a tagged-union Value
// that can be read and mutated in place, rather than unmarshaled into
// Go structs via reflection.
package yajson

import "io"

// ParseReader reads all of r and parses it under opts.
func ParseReader(r io.Reader, opts ParseOptions) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, err
	}
	return Parse(data, opts)
}

// Valid reports whether data is well-formed JSON under StrictOptions.
func Valid(data []byte) bool {
	_, err := Parse(data, StrictOptions())
	return err == nil
}

// Decoder reads a single JSON value from an underlying io.Reader.
type Decoder struct {
	r     io.Reader
	opts  ParseOptions
	arena *MonotonicArena
}

// NewDecoder returns a Decoder that parses whatever r yields under opts.
func NewDecoder(r io.Reader, opts ParseOptions) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// WithArena routes the decoder's string allocations through arena.
func (d *Decoder) WithArena(arena *MonotonicArena) *Decoder {
	d.arena = arena
	return d
}

// Decode reads and parses the entirety of the decoder's reader. Unlike
// encoding/json's Decoder, this is not a streaming multi-value reader:
// a Value is a whole parsed document, not a token in a larger stream.
func (d *Decoder) Decode() (Value, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return Value{}, err
	}
	return ParseArena(data, d.arena, d.opts)
}

// Encoder writes serialized Values to an underlying io.Writer.
type Encoder struct {
	w    io.Writer
	opts SerializeOptions
}

// NewEncoder returns an Encoder that writes to w under opts.
func NewEncoder(w io.Writer, opts SerializeOptions) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode serializes v to the encoder's writer.
func (e *Encoder) Encode(v Value) error {
	return SerializeTo(e.w, v, e.opts)
}
