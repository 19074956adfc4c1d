package yajson

import "github.com/aloshkarev/yajson/internal/hash"

// entry is one key/value pair in insertion order. Keys stay Go strings
// rather than Values: a plain string is already small-string-optimized by
// the runtime's string header + backing array, and object.go's job is
// ordering + lookup, not payload representation. keyHash is cached at
// insertion time so the below-threshold linear scan can reject a
// mismatched key with one integer compare before touching its bytes.
type entry struct {
	key     string
	keyHash uint64
	val     Value
}

// indexThreshold mirrors the reference implementation's Object: below
// this many entries, a linear scan beats the overhead of a hash map, so
// the map is only built once an object reaches it.
const indexThreshold = 16

// Object is an ordered key/value map with lazy hash-index acceleration.
// Entries preserve insertion order (needed for stable serialization);
// the index field, when present, maps key to its offset in entries and is
// only consulted once len(entries) >= indexThreshold.
type Object struct {
	entries []entry
	index   map[string]int // nil until built lazily once entries reaches indexThreshold
}

func newObject(capacity int) *Object {
	return &Object{entries: make([]entry, 0, capacity)}
}

func (o *Object) size() int   { return len(o.entries) }
func (o *Object) empty() bool { return len(o.entries) == 0 }

func (o *Object) useIndex() bool { return len(o.entries) >= indexThreshold }

func (o *Object) ensureIndex() {
	if o.index != nil {
		return
	}
	o.index = make(map[string]int, len(o.entries))
	for i, e := range o.entries {
		o.index[e.key] = i
	}
}

// find returns a pointer to the value stored under key, or nil if absent.
// The pointer aliases the backing slice; it is invalidated by any
// subsequent insert/erase that reallocates or reorders entries.
func (o *Object) find(key string) *Value {
	if o.useIndex() {
		o.ensureIndex()
		if i, ok := o.index[key]; ok {
			return &o.entries[i].val
		}
		return nil
	}
	h := hash.String(key)
	for i := range o.entries {
		if o.entries[i].keyHash == h && o.entries[i].key == key {
			return &o.entries[i].val
		}
	}
	return nil
}

func (o *Object) contains(key string) bool { return o.find(key) != nil }

// getOrInsert returns a pointer to the value under key, inserting a Null
// entry first if key is absent, mirroring operator[] semantics.
func (o *Object) getOrInsert(key string) *Value {
	if v := o.find(key); v != nil {
		return v
	}
	o.entries = append(o.entries, entry{key: key, keyHash: hash.String(key), val: Value{}})
	i := len(o.entries) - 1
	if o.index != nil {
		o.index[key] = i
	}
	return &o.entries[i].val
}

// insert sets key to value, overwriting an existing entry in place
// (preserving its original position) or appending a new one.
func (o *Object) insert(key string, value Value) {
	if v := o.find(key); v != nil {
		*v = value
		return
	}
	o.entries = append(o.entries, entry{key: key, keyHash: hash.String(key), val: value})
	i := len(o.entries) - 1
	if o.index != nil {
		o.index[key] = i
	}
}

// appendUnchecked appends without consulting or updating the index; the
// parser uses this for bulk construction followed by one rebuildIndex
// call, avoiding per-key map churn while parsing a large object literal.
func (o *Object) appendUnchecked(key string, value Value) {
	o.entries = append(o.entries, entry{key: key, keyHash: hash.String(key), val: value})
}

func (o *Object) rebuildIndex() {
	if !o.useIndex() {
		o.index = nil
		return
	}
	o.index = make(map[string]int, len(o.entries))
	for i, e := range o.entries {
		o.index[e.key] = i
	}
}

// erase removes key, reports whether it was present. Erasure is O(n): it
// shifts subsequent entries to preserve insertion order, then rebuilds
// the index if one exists (cheaper than patching every shifted offset for
// typical object sizes, and matches the reference implementation's
// erase-then-rebuild behavior).
func (o *Object) erase(key string) bool {
	for i := range o.entries {
		if o.entries[i].key == key {
			o.entries = append(o.entries[:i], o.entries[i+1:]...)
			if o.index != nil {
				o.rebuildIndex()
			}
			return true
		}
	}
	return false
}

func (o *Object) clear() {
	o.entries = o.entries[:0]
	o.index = nil
}

// equal compares two objects as unordered sets of key/value pairs: same
// size, and every key in o maps to an equal value in other.
func (o *Object) equal(other *Object) bool {
	if len(o.entries) != len(other.entries) {
		return false
	}
	for _, e := range o.entries {
		ov := other.find(e.key)
		if ov == nil || !e.val.Equal(*ov) {
			return false
		}
	}
	return true
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.key
	}
	return keys
}

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (o *Object) Range(fn func(key string, val Value) bool) {
	for _, e := range o.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}
