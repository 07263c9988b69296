package datemath

import "errors"

// ErrInvalidTimestamp is returned when a string matches none of the accepted layouts.
var ErrInvalidTimestamp = errors.New("invalid ISO-8601 timestamp")

// zonedLayouts carry an explicit offset or Z. time.Parse accepts a fractional
// second after the seconds field even when the layout omits it.
var zonedLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"20060102T150405Z0700",
	"20060102T150405Z07:00",
}

// naiveLayouts have no zone and are resolved against the parser's location.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"20060102T150405",
	"2006-01-02",
}
