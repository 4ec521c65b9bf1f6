package result

import "github.com/hashicorp/go-multierror"

// Collect gathers a slice of results into one: Ok with every value, in
// order, when all succeed, otherwise Err aggregating every failure. Unlike
// AndThen chains it does not stop at the first error.
func Collect[T any](rs []Result[T, error]) Result[[]T, error] {
	var merr *multierror.Error
	values := make([]T, 0, len(rs))

	for _, r := range rs {
		if r.ok {
			values = append(values, r.value)
		} else {
			merr = multierror.Append(merr, r.err)
		}
	}

	if merr != nil {
		return Err[[]T, error](merr)
	}
	return Ok[error](values)
}
