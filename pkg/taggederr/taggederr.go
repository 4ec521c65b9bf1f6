package taggederr

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Error is an error value carrying a literal string tag that identifies its
// failure kind. Tags are the discriminant used in Result pipelines that need
// to distinguish one failure from another without type switching.
//
// Every Error is stamped with a unique id and a UTC creation time.
type Error struct {
	tag       string
	msg       string
	cause     error
	id        uuid.UUID
	createdAt time.Time
}

// New creates an Error with the given tag and message.
func New(tag, msg string) *Error {
	return &Error{
		tag:       tag,
		msg:       msg,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Wrap creates an Error with the given tag and message that records cause as
// its origin. The cause stays reachable through errors.Is and errors.As.
func Wrap(tag, msg string, cause error) *Error {
	e := New(tag, msg)
	e.cause = cause
	return e
}

func (e *Error) Tag() string {
	return e.tag
}

func (e *Error) Message() string {
	return e.msg
}

func (e *Error) Id() uuid.UUID {
	return e.id
}

// CreatedAt returns the creation time (UTC).
func (e *Error) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.tag
	}
	return e.tag + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error carrying the same tag. Messages,
// ids and causes do not participate in the match, so sentinel comparisons
// like errors.Is(err, taggederr.New("NotFound", "")) work on tag alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.tag == e.tag
}

// HasTag reports whether err, or any error in its chain, is a tagged error
// with the given tag.
func HasTag(err error, tag string) bool {
	var te *Error
	if !errors.As(err, &te) {
		return false
	}
	if te.tag == tag {
		return true
	}
	return HasTag(te.cause, tag)
}
