// Key/value codecs and per-table semantic hooks.
//
// The table itself moves opaque []byte keys and values; codecs are a
// convenience for callers that work with typed keys. Int64Codec encodes
// big-endian so that byte order matches numeric order on ordered tables.
package table

import "encoding/binary"

type StringCodec struct{}

func (StringCodec) Encode(s string) []byte {
	return []byte(s)
}

func (StringCodec) Decode(b []byte) string {
	return string(b)
}

type Int64Codec struct{}

func (Int64Codec) Encode(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func (Int64Codec) Decode(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

// UpdateFunc produces the new value from the stored one (nil when absent)
// and the caller-supplied delta. It runs at the block's owner.
type UpdateFunc func(old []byte, delta []byte) []byte

// InitFunc produces the initial value for GetOrInit misses.
type InitFunc func(key []byte) []byte

// Definition carries the executor-local, non-serializable parts of a table:
// every executor registers the same definition under the table id before the
// coordinator creates the table.
type Definition struct {
	Update UpdateFunc
	Init   InitFunc
}

// ReplaceUpdate is the default update semantic: the delta becomes the value.
func ReplaceUpdate(_ []byte, delta []byte) []byte {
	return delta
}
