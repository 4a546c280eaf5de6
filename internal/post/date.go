package post

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ErrBadDatePrefix reports a date-prefix string that could not be parsed as a
// valid calendar date.
var ErrBadDatePrefix = errors.New("invalid date prefix")

// datePrefixLayout is the canonical zero-padded form used in directory names.
const datePrefixLayout = "2006-01-02"

// PrefixSpec describes how the date prefix of a post directory should be
// derived. The zero value means "use today", which is the default for newly
// created posts.
type PrefixSpec struct {
	omit bool
	raw  string
	date time.Time
}

// PrefixToday requests the current local calendar date.
func PrefixToday() PrefixSpec {
	return PrefixSpec{}
}

// PrefixNone requests a path without any date prefix.
func PrefixNone() PrefixSpec {
	return PrefixSpec{omit: true}
}

// PrefixFrom requests a prefix parsed from free-text date input such as
// "9/15/2020" or "2020-09-15".
func PrefixFrom(raw string) PrefixSpec {
	return PrefixSpec{raw: raw}
}

// PrefixAt requests a prefix taken from an already-parsed date.
func PrefixAt(t time.Time) PrefixSpec {
	return PrefixSpec{date: t}
}

// Resolve produces the canonical YYYY-MM-DD token, or the empty string when
// no prefix was requested. A raw string that does not parse as a calendar
// date is a terminal error wrapping ErrBadDatePrefix.
func (s PrefixSpec) Resolve() (string, error) {
	switch {
	case s.omit:
		return "", nil
	case s.raw != "":
		parsed, err := dateparse.ParseLocal(s.raw)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrBadDatePrefix, s.raw)
		}
		return parsed.Format(datePrefixLayout), nil
	case !s.date.IsZero():
		return s.date.Format(datePrefixLayout), nil
	default:
		return time.Now().Format(datePrefixLayout), nil
	}
}
