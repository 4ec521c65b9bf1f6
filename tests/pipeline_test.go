package tests

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neono-dev/tstd/pkg/option"
	"github.com/neono-dev/tstd/pkg/pipe"
	"github.com/neono-dev/tstd/pkg/result"
	"github.com/neono-dev/tstd/pkg/taggederr"
)

// combine builds the initials of two names, as a result so a later stage can
// surface formatting failures.
func combine(a, b string) result.Result[string, error] {
	if a == "" || b == "" {
		return result.Err[string](errors.New("empty name"))
	}
	return result.Ok[error](a[:1] + b[:1])
}

func initials(first, last option.Option[string]) option.Option[string] {
	return pipe.Pipe4(
		first,
		func(o option.Option[string]) option.Option[result.Result[string, error]] {
			return option.ZipWith(o, last, combine)
		},
		func(o option.Option[result.Result[string, error]]) option.Option[result.Result[string, error]] {
			return option.Map(o, func(r result.Result[string, error]) result.Result[string, error] {
				return result.Map(r, strings.ToUpper)
			})
		},
		func(o option.Option[result.Result[string, error]]) option.Option[option.Option[string]] {
			return option.Map(o, option.FromResult[string, error])
		},
		option.Flatten[string],
	)
}

func TestInitialsPipeline(t *testing.T) {
	got := initials(option.Some("john"), option.Some("doe"))
	assert.Equal(t, option.Some("JD"), got)

	assert.Equal(t, option.None[string](), initials(option.None[string](), option.Some("doe")))
	assert.Equal(t, option.None[string](), initials(option.Some("john"), option.None[string]()))
}

func TestParsePipeline_CrossAlgebra(t *testing.T) {
	// Parse a user-supplied port, defaulting when absent, rejecting when
	// malformed or out of range.
	parsePort := func(raw option.Option[string]) result.Result[int, error] {
		parsed := option.Transpose(option.Map(raw, func(s string) result.Result[int, error] {
			return result.Try(func() (int, error) { return strconv.Atoi(s) })
		}))
		return result.Map(parsed, func(port option.Option[int]) int {
			return port.UnwrapOr(8080)
		})
	}

	r := parsePort(option.Some("9090"))
	require.True(t, r.IsOk())
	assert.Equal(t, 9090, r.Unwrap())

	r = parsePort(option.None[string]())
	require.True(t, r.IsOk(), "absence is not a failure")
	assert.Equal(t, 8080, r.Unwrap())

	r = parsePort(option.Some("not-a-port"))
	require.True(t, r.IsErr())
}

func TestCapturePipeline_TaggedFailures(t *testing.T) {
	parse := func(s string) result.Result[int, error] {
		return result.TryWith(
			func() (int, error) { return strconv.Atoi(s) },
			func(err error) error { return taggederr.Wrap("ParseError", s, err) },
		)
	}

	ok := result.Map(parse("21"), func(n int) int { return n * 2 })
	assert.Equal(t, 42, ok.UnwrapOr(0))

	bad := parse("x")
	err, isErr := bad.GetErr()
	require.True(t, isErr)
	assert.True(t, taggederr.HasTag(err, "ParseError"))

	// The failure stays represented through further combinators.
	doubled := result.Map(bad, func(n int) int { return n * 2 })
	assert.True(t, doubled.IsErr())
	assert.Equal(t, -1, doubled.UnwrapOr(-1))
}

func TestOptionResultRoundTrip(t *testing.T) {
	start := option.Some(5)

	asResult := option.OkOr(start, "missing")
	require.Equal(t, result.Ok[string](5), asResult)

	back := option.FromResult(asResult)
	assert.Equal(t, start, back)

	absent := option.OkOr(option.None[int](), "missing")
	assert.Equal(t, result.Err[int]("missing"), absent)
	assert.Equal(t, option.Some("missing"), option.FromResultErr(absent))
}

func TestHomogeneousPipeWithChain(t *testing.T) {
	sanitize := func(o option.Option[string]) option.Option[string] {
		return option.Map(o, strings.TrimSpace)
	}
	nonEmpty := func(o option.Option[string]) option.Option[string] {
		return o.Filter(func(s string) bool { return s != "" })
	}

	got := pipe.From(option.Some("  hello  ")).
		Then(sanitize).
		Then(nonEmpty).
		Value()
	assert.Equal(t, option.Some("hello"), got)

	got = pipe.From(option.Some("   ")).
		Then(sanitize).
		Then(nonEmpty).
		Value()
	assert.Equal(t, option.None[string](), got)
}
