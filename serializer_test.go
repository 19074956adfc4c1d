package yajson

import (
	"bytes"
	"strings"
	"testing"
)

func TestSerializeCompactPrimitives(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewNull(), "null"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewInteger(-42), "-42"},
		{NewUInteger(1<<64 - 1), "18446744073709551615"},
		{NewString("hi"), `"hi"`},
	}
	for _, c := range cases {
		got := Serialize(c.v, CompactOptions())
		if got != c.want {
			t.Errorf("Serialize(%v) = %q, want %q", c.v.Type(), got, c.want)
		}
	}
}

func TestSerializeEscapesControlAndQuotes(t *testing.T) {
	v := NewString("a\nb\tc\"d\\e")
	got := Serialize(v, CompactOptions())
	want := `"a\nb\tc\"d\\e"`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSerializeEnsureASCII(t *testing.T) {
	v := NewString("café")
	got := Serialize(v, SerializeOptions{Indent: -1, EnsureASCII: true})
	if strings.Contains(got, "é") {
		t.Errorf("ensure_ascii output should not contain raw high bytes: %s", got)
	}
	if !strings.Contains(got, "\\u00e9") {
		t.Errorf("expected \\u00e9 escape, got %s", got)
	}

	plain := Serialize(v, CompactOptions())
	if !strings.Contains(plain, "é") {
		t.Errorf("without ensure_ascii, UTF-8 should pass through: %s", plain)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	src := `{"name":"Alice","tags":["a","b"],"age":30,"active":true,"score":1.5}`
	v, err := Parse([]byte(src), StrictOptions())
	if err != nil {
		t.Fatal(err)
	}
	out := Serialize(v, CompactOptions())
	v2, err := Parse([]byte(out), StrictOptions())
	if err != nil {
		t.Fatalf("re-parse of serialized output failed: %v (%s)", err, out)
	}
	if !v.Equal(v2) {
		t.Errorf("round trip mismatch: %s vs %s", src, out)
	}
}

func TestSerializeEmptyContainers(t *testing.T) {
	if got := Serialize(NewArray(0), CompactOptions()); got != "[]" {
		t.Errorf("empty array = %s, want []", got)
	}
	if got := Serialize(NewObject(0), CompactOptions()); got != "{}" {
		t.Errorf("empty object = %s, want {}", got)
	}
}

func TestSerializePretty(t *testing.T) {
	v := NewObject(0)
	v.Insert("a", NewInteger(1))
	got := Serialize(v, PrettyOptions(2))
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeSortKeys(t *testing.T) {
	v := NewObject(0)
	v.Insert("b", NewInteger(2))
	v.Insert("a", NewInteger(1))
	got := Serialize(v, SerializeOptions{Indent: -1, SortKeys: true})
	if got != `{"a":1,"b":2}` {
		t.Errorf("got %s, want sorted keys", got)
	}
}

func TestSerializeNaNInfinity(t *testing.T) {
	v := NewFloat(nan())
	if got := Serialize(v, CompactOptions()); got != "null" {
		t.Errorf("NaN without allow_nan_inf = %s, want null", got)
	}
	if got := Serialize(v, SerializeOptions{Indent: -1, AllowNaNInf: true}); got != "NaN" {
		t.Errorf("NaN with allow_nan_inf = %s, want NaN", got)
	}
}

func TestSerializeToWriter(t *testing.T) {
	v := NewArray(0)
	v.PushBack(NewInteger(1))
	var buf bytes.Buffer
	if err := SerializeTo(&buf, v, CompactOptions()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[1]" {
		t.Errorf("got %q, want [1]", buf.String())
	}
}
