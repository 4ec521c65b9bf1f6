package bounded

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/neono-dev/tstd/pkg/result"
	"github.com/neono-dev/tstd/pkg/taggederr"
)

// TagOutOfRange is the tag stamped on range-check failures.
const TagOutOfRange = "OutOfRangeError"

// Range is an inclusive integer range that brands accepted values with the
// target integer type T.
type Range[T constraints.Integer] struct {
	min int64
	max int64
}

// In creates a Range accepting values between min and max, inclusive.
func In[T constraints.Integer](min, max int64) Range[T] {
	return Range[T]{min: min, max: max}
}

// Check validates v against the range: Ok with v converted to T when it
// fits, otherwise Err with an out-of-range tagged error.
func (r Range[T]) Check(v int64) result.Result[T, *taggederr.Error] {
	if v < r.min || v > r.max {
		return result.Err[T](taggederr.New(TagOutOfRange,
			fmt.Sprintf("value %d is outside [%d, %d]", v, r.min, r.max)))
	}
	return result.Ok[*taggederr.Error](T(v))
}

// Branded constructors for the common fixed-width integer types.

func U8(v int64) result.Result[uint8, *taggederr.Error] {
	return In[uint8](0, math.MaxUint8).Check(v)
}

func U16(v int64) result.Result[uint16, *taggederr.Error] {
	return In[uint16](0, math.MaxUint16).Check(v)
}

func U32(v int64) result.Result[uint32, *taggederr.Error] {
	return In[uint32](0, math.MaxUint32).Check(v)
}

func I8(v int64) result.Result[int8, *taggederr.Error] {
	return In[int8](math.MinInt8, math.MaxInt8).Check(v)
}

func I16(v int64) result.Result[int16, *taggederr.Error] {
	return In[int16](math.MinInt16, math.MaxInt16).Check(v)
}

func I32(v int64) result.Result[int32, *taggederr.Error] {
	return In[int32](math.MinInt32, math.MaxInt32).Check(v)
}
