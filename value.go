package yajson

import (
	"math"
	"unsafe"
)

// Value is a tagged union over the eight JSON variants. It intentionally
// does not reach the 24-byte footprint of the reference C/C++ layout: Go's
// garbage collector only scans pointer-typed fields it can see at compile
// time, so the external payload pointer must live in its own
// unsafe.Pointer field rather than be reinterpreted out of a raw byte
// array the way a C union would. See DESIGN.md for the full writeup.
// The resulting struct is 32 bytes, which keeps within the documented
// ≤32 byte fallback.
type Value struct {
	ptr  unsafe.Pointer // external string data / *[]Value / *Object; nil for inline payloads
	aux  uint64          // integer/uinteger bits, math.Float64bits(f), or external string length
	sso  [kSsoMax]byte   // inline string bytes, valid when ptr == nil && typ() == String
	meta uint8           // bits0-2: Type; bit3: arenaFlag; bits4-7: sso length (0..15)
}

const kSsoMax = 15

const (
	metaTypeMask  = 0x07
	metaArenaBit  = 0x08
	metaSSOLenShift = 4
)

func (v *Value) typ() Type       { return Type(v.meta & metaTypeMask) }
func (v *Value) arenaFlag() bool { return v.meta&metaArenaBit != 0 }
func (v *Value) ssoLen() int     { return int(v.meta >> metaSSOLenShift) }

func makeMeta(t Type, arena bool, ssoLen int) uint8 {
	m := uint8(t) & metaTypeMask
	if arena {
		m |= metaArenaBit
	}
	m |= uint8(ssoLen) << metaSSOLenShift
	return m
}

// Type reports which variant v currently holds.
func (v Value) Type() Type { return v.typ() }

func (v Value) IsNull() bool     { return v.typ() == Null }
func (v Value) IsBool() bool     { return v.typ() == Bool }
func (v Value) IsInteger() bool  { return v.typ() == Integer }
func (v Value) IsUInteger() bool { return v.typ() == UInteger }
func (v Value) IsFloat() bool    { return v.typ() == Float }
func (v Value) IsString() bool   { return v.typ() == String }
func (v Value) IsArray() bool    { return v.typ() == Array }
func (v Value) IsObject() bool   { return v.typ() == TypeObject }
func (v Value) IsNumber() bool {
	switch v.typ() {
	case Integer, UInteger, Float:
		return true
	default:
		return false
	}
}

// ─── Constructors ─────────────────────────────────────────────────────────

// NewNull returns the null value. The zero Value is already null; this
// exists for symmetry with the other constructors.
func NewNull() Value { return Value{} }

func NewBool(b bool) Value {
	var aux uint64
	if b {
		aux = 1
	}
	return Value{aux: aux, meta: makeMeta(Bool, false, 0)}
}

func NewInteger(i int64) Value {
	return Value{aux: uint64(i), meta: makeMeta(Integer, false, 0)}
}

func NewUInteger(u uint64) Value {
	return Value{aux: u, meta: makeMeta(UInteger, false, 0)}
}

func NewFloat(f float64) Value {
	return Value{aux: math.Float64bits(f), meta: makeMeta(Float, false, 0)}
}

// NewString copies s into the value, inline if it fits SSO, else onto the
// Go heap (ordinary GC-owned allocation, not arena-backed).
func NewString(s string) Value {
	if len(s) <= kSsoMax {
		var v Value
		copy(v.sso[:], s)
		v.meta = makeMeta(String, false, len(s))
		return v
	}
	owned := append([]byte(nil), s...)
	return externalString(owned, false)
}

// newStringArena builds a String value whose bytes, when len(s) > kSsoMax,
// live in arena-owned memory (the arenaFlag is set so Destroy-equivalent
// bookkeeping knows not to treat it as an independently owned heap
// allocation). Short strings are still inlined, matching the reference
// implementation's "SSO wins regardless of arena" rule. With a nil arena
// long strings are copied onto the Go heap instead.
func newStringArena(s []byte, arena *MonotonicArena) Value {
	if len(s) <= kSsoMax {
		var v Value
		copy(v.sso[:], s)
		v.meta = makeMeta(String, false, len(s))
		return v
	}
	if arena == nil {
		owned := append([]byte(nil), s...)
		return externalString(owned, false)
	}
	dst := arena.AllocBytes(len(s))
	copy(dst, s)
	return externalString(dst, true)
}

func externalString(b []byte, arenaOwned bool) Value {
	var v Value
	if len(b) > 0 {
		v.ptr = unsafe.Pointer(&b[0])
	} else {
		// Zero-length external string: keep ptr non-nil so it is not
		// mistaken for the inline representation.
		v.ptr = unsafe.Pointer(&emptyStringSentinel)
	}
	v.aux = uint64(len(b))
	v.meta = makeMeta(String, arenaOwned, 0)
	return v
}

var emptyStringSentinel byte

// NewArray returns an empty array with the given initial capacity hint.
func NewArray(capacity int) Value {
	s := make([]Value, 0, capacity)
	return Value{ptr: unsafe.Pointer(&s), meta: makeMeta(Array, false, 0)}
}

// NewObject returns an empty object with the given initial capacity hint.
func NewObject(capacity int) Value {
	obj := newObject(capacity)
	return Value{ptr: unsafe.Pointer(obj), meta: makeMeta(TypeObject, false, 0)}
}

func valueFromArray(a *[]Value) Value {
	return Value{ptr: unsafe.Pointer(a), meta: makeMeta(Array, false, 0)}
}

func valueFromObject(o *Object) Value {
	return Value{ptr: unsafe.Pointer(o), meta: makeMeta(TypeObject, false, 0)}
}

// ─── Typed access ───────────────────────────────────────────────────────

func (v Value) AsBool() (bool, error) {
	if v.typ() != Bool {
		return false, typeMismatch(Bool, v.typ())
	}
	return v.aux != 0, nil
}

func (v Value) AsInteger() (int64, error) {
	switch v.typ() {
	case Integer:
		return int64(v.aux), nil
	case UInteger:
		if v.aux > math.MaxInt64 {
			return 0, newErr(IntegerOverflow, "uinteger value exceeds signed 64-bit range")
		}
		return int64(v.aux), nil
	}
	return 0, typeMismatch(Integer, v.typ())
}

func (v Value) AsUInteger() (uint64, error) {
	switch v.typ() {
	case UInteger:
		return v.aux, nil
	case Integer:
		i := int64(v.aux)
		if i < 0 {
			return 0, newErr(IntegerOverflow, "integer value is negative")
		}
		return uint64(i), nil
	}
	return 0, typeMismatch(UInteger, v.typ())
}

func (v Value) AsFloat() (float64, error) {
	switch v.typ() {
	case Float:
		return math.Float64frombits(v.aux), nil
	case Integer:
		return float64(int64(v.aux)), nil
	case UInteger:
		return float64(v.aux), nil
	}
	return 0, typeMismatch(Float, v.typ())
}

// AsStringView returns the string payload without copying. The returned
// string aliases arena memory when the value is arena-backed; it must not
// be retained past the arena's lifetime.
func (v Value) AsStringView() (string, error) {
	if v.typ() != String {
		return "", typeMismatch(String, v.typ())
	}
	if v.ptr == nil {
		return unsafeBytesToString(v.sso[:v.ssoLen()]), nil
	}
	n := int(v.aux)
	if n == 0 {
		return "", nil
	}
	b := unsafe.Slice((*byte)(v.ptr), n)
	return unsafeBytesToString(b), nil
}

// AsArray returns the backing slice by reference: mutating the returned
// slice through append may or may not be visible to v depending on
// capacity, mirroring Go slice-aliasing semantics. Use PushBack/EmplaceBack
// to mutate through the Value itself.
func (v Value) AsArray() ([]Value, error) {
	if v.typ() != Array {
		return nil, typeMismatch(Array, v.typ())
	}
	return *(*[]Value)(v.ptr), nil
}

func (v Value) AsObject() (*Object, error) {
	if v.typ() != TypeObject {
		return nil, typeMismatch(TypeObject, v.typ())
	}
	return (*Object)(v.ptr), nil
}

func (v Value) arrayPtr() *[]Value { return (*[]Value)(v.ptr) }
func (v Value) objectPtr() *Object { return (*Object)(v.ptr) }

func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// ─── Indexing ─────────────────────────────────────────────────────────────

// Index returns the i'th array element. Fails TypeMismatch if v is not an
// array, OutOfRange if i is out of bounds.
func (v Value) Index(i int) (Value, error) {
	if v.typ() != Array {
		return Value{}, typeMismatch(Array, v.typ())
	}
	a := *v.arrayPtr()
	if i < 0 || i >= len(a) {
		return Value{}, newErr(OutOfRange, "array index out of range")
	}
	return a[i], nil
}

// At returns the value stored under key without inserting on miss.
// Fails TypeMismatch if v is not an object, KeyNotFound if the key is
// absent.
func (v Value) At(key string) (Value, error) {
	if v.typ() != TypeObject {
		return Value{}, typeMismatch(TypeObject, v.typ())
	}
	if got := v.objectPtr().find(key); got != nil {
		return *got, nil
	}
	return Value{}, newErr(KeyNotFound, "key not found: "+key)
}

// GetOrInsert returns the value stored under key, inserting Null if
// absent. Fails TypeMismatch if v is not an object.
func (v Value) GetOrInsert(key string) (*Value, error) {
	if v.typ() != TypeObject {
		return nil, typeMismatch(TypeObject, v.typ())
	}
	return v.objectPtr().getOrInsert(key), nil
}

// ─── Mutation ─────────────────────────────────────────────────────────────

func (v *Value) PushBack(elem Value) error {
	if v.typ() != Array {
		return typeMismatch(Array, v.typ())
	}
	a := v.arrayPtr()
	*a = append(*a, elem)
	return nil
}

func (v *Value) Insert(key string, val Value) error {
	if v.typ() != TypeObject {
		return typeMismatch(TypeObject, v.typ())
	}
	v.objectPtr().insert(key, val)
	return nil
}

func (v *Value) EraseKey(key string) (bool, error) {
	if v.typ() != TypeObject {
		return false, typeMismatch(TypeObject, v.typ())
	}
	return v.objectPtr().erase(key), nil
}

func (v *Value) EraseIndex(i int) error {
	if v.typ() != Array {
		return typeMismatch(Array, v.typ())
	}
	a := v.arrayPtr()
	if i < 0 || i >= len(*a) {
		return newErr(OutOfRange, "array index out of range")
	}
	*a = append((*a)[:i], (*a)[i+1:]...)
	return nil
}

func (v *Value) Clear() error {
	switch v.typ() {
	case Array:
		a := v.arrayPtr()
		*a = (*a)[:0]
		return nil
	case TypeObject:
		v.objectPtr().clear()
		return nil
	}
	return typeMismatch(Array, v.typ())
}

// ─── Lookup helpers ────────────────────────────────────────────────────────

func (v Value) Find(key string) *Value {
	if v.typ() != TypeObject {
		return nil
	}
	return v.objectPtr().find(key)
}

func (v Value) Contains(key string) bool {
	return v.Find(key) != nil
}

// Size returns the number of elements/entries; 0 for non-container
// variants.
func (v Value) Size() int {
	switch v.typ() {
	case Array:
		return len(*v.arrayPtr())
	case TypeObject:
		return v.objectPtr().size()
	default:
		return 0
	}
}

// Empty reports emptiness for Null, empty array, and empty object; all
// other scalar variants report false.
func (v Value) Empty() bool {
	switch v.typ() {
	case Null:
		return true
	case Array:
		return len(*v.arrayPtr()) == 0
	case TypeObject:
		return v.objectPtr().size() == 0
	default:
		return false
	}
}

// ─── Equality ──────────────────────────────────────────────────────────────

// Equal performs structural, order-insensitive (for objects) comparison.
// Numeric cross-variant comparison mirrors the reference semantics
// documented in DESIGN.md: Integer vs UInteger compares exactly via the
// unsigned bit pattern when both are non-negative; any case touching
// Float goes through float conversion and is therefore not transitive.
func (v Value) Equal(other Value) bool {
	if v.typ() != other.typ() {
		if v.IsNumber() && other.IsNumber() {
			return numericEqual(v, other)
		}
		return false
	}
	switch v.typ() {
	case Null:
		return true
	case Bool:
		return v.aux == other.aux
	case Integer:
		return int64(v.aux) == int64(other.aux)
	case UInteger:
		return v.aux == other.aux
	case Float:
		return math.Float64frombits(v.aux) == math.Float64frombits(other.aux)
	case String:
		sa, _ := v.AsStringView()
		sb, _ := other.AsStringView()
		return sa == sb
	case Array:
		a, b := *v.arrayPtr(), *other.arrayPtr()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		return v.objectPtr().equal(other.objectPtr())
	}
	return false
}

func numericEqual(a, b Value) bool {
	if a.typ() == Integer && b.typ() == UInteger {
		ai := int64(a.aux)
		return ai >= 0 && uint64(ai) == b.aux
	}
	if a.typ() == UInteger && b.typ() == Integer {
		return numericEqual(b, a)
	}
	af, _ := a.AsFloat()
	bf, _ := b.AsFloat()
	return af == bf
}

// ─── Swap / move ────────────────────────────────────────────────────────

// Swap exchanges the contents of v and other with a byte-wise exchange, as
// the reference implementation does.
func (v *Value) Swap(other *Value) {
	*v, *other = *other, *v
}

// Take moves v's payload out, leaving v as Null (the moved-from state).
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}

// ─── Clone ──────────────────────────────────────────────────────────────────

// Clone returns a deep, independent copy of v. A plain Go struct copy
// (b := a, or any return-by-value through this package's own methods)
// only duplicates the 32-byte Value header: for Array and Object it
// copies the ptr field verbatim, so the copy and the original alias the
// very same backing []Value/Object, and a mutation through one (e.g.
// PushBack, Insert) is visible through the other. Clone is the explicit
// opt-in for the cases where that aliasing is wrong — most notably
// arrays/objects own their values, and an arena-flagged String whose
// arena gets Reset must not leave a dangling copy behind.
//
// Containers are always deep-copied, recursively, regardless of arena
// status: this package never arena-routes container backing storage
// (see DESIGN.md), so []Value/Object are ordinary GC-owned allocations
// and a fresh one is made unconditionally. A String is only re-copied
// when arenaFlag() is set, since that is the one case where the
// existing bytes can be invalidated out from under the clone by a
// future Reset; an SSO string is already self-contained, and a
// non-arena external string is an immutable heap allocation safe to
// keep sharing. Pass a non-nil arena to route the clone's string bytes
// through it (mirroring ParseArena); pass nil to always produce a
// heap-owned copy.
func (v Value) Clone(arena *MonotonicArena) Value {
	switch v.typ() {
	case String:
		if v.ptr == nil || !v.arenaFlag() {
			return v
		}
		n := int(v.aux)
		if n == 0 {
			return v
		}
		b := unsafe.Slice((*byte)(v.ptr), n)
		if arena != nil {
			dst := arena.AllocBytes(n)
			copy(dst, b)
			return externalString(dst, true)
		}
		dst := append([]byte(nil), b...)
		return externalString(dst, false)
	case Array:
		a := *v.arrayPtr()
		out := make([]Value, len(a))
		for i, e := range a {
			out[i] = e.Clone(arena)
		}
		return valueFromArray(&out)
	case TypeObject:
		o := v.objectPtr()
		clone := newObject(len(o.entries))
		for _, e := range o.entries {
			clone.appendUnchecked(e.key, e.val.Clone(arena))
		}
		clone.rebuildIndex()
		return valueFromObject(clone)
	default:
		return v
	}
}

// ─── Generic conversion ────────────────────────────────────────────────────

// Get converts v to T, failing with TypeMismatch (or IntegerOverflow, for
// the Integer/UInteger cross-conversions) the same way the corresponding
// As* method does. T must be implemented as a method receiver cannot carry
// its own type parameter in Go, so this is a free function instead of
// Value.Get[T].
func Get[T bool | int64 | uint64 | float64 | string](v Value) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, err := v.AsBool()
		return any(b).(T), err
	case int64:
		i, err := v.AsInteger()
		return any(i).(T), err
	case uint64:
		u, err := v.AsUInteger()
		return any(u).(T), err
	case float64:
		f, err := v.AsFloat()
		return any(f).(T), err
	case string:
		s, err := v.AsStringView()
		return any(s).(T), err
	default:
		return zero, newErr(TypeMismatch, "unsupported Get[T] type")
	}
}

// GetOr is Get with def substituted for any conversion failure.
func GetOr[T bool | int64 | uint64 | float64 | string](v Value, def T) T {
	got, err := Get[T](v)
	if err != nil {
		return def
	}
	return got
}
