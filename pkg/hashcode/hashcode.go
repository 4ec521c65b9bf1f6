package hashcode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// String returns the hash code of a string.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes returns the hash code of a byte slice.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Int64 returns the hash code of a signed integer.
func Int64(n int64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return xxhash.Sum64(buf[:])
}

// Uint64 returns the hash code of an unsigned integer.
func Uint64(n uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return xxhash.Sum64(buf[:])
}

// Float64 returns the hash code of a float. NaN payloads are normalized so
// every NaN hashes alike; negative zero hashes as zero.
func Float64(f float64) uint64 {
	if math.IsNaN(f) {
		f = math.NaN()
	}
	if f == 0 {
		f = 0
	}
	return Uint64(math.Float64bits(f))
}

// Of returns the combined hash code of an ordered sequence of parts. Each
// part contributes its dynamic type and formatted value, so Of(1) and
// Of("1") differ, as do Of(1, 2) and Of(2, 1).
func Of(parts ...any) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		fmt.Fprintf(d, "%T=%v;", p, p)
	}
	return d.Sum64()
}

// Combine folds already-computed hash codes into one, order-sensitively.
func Combine(hashes ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, h := range hashes {
		binary.LittleEndian.PutUint64(buf[:], h)
		d.Write(buf[:])
	}
	return d.Sum64()
}
