package perf

import (
	"errors"
	"net/url"
	"strconv"
	"time"
)

// Defaults for snapshot queries.
const (
	DefaultWindow = 15 * time.Minute
	DefaultTopN   = 10
)

var (
	ErrBadWindow = errors.New("window must be a positive duration")
	ErrBadTopN   = errors.New("top must be a positive integer")
)

// ParseQuery reads the optional snapshot parameters: window (a Go duration)
// and top (a positive integer). Missing parameters take the defaults.
// PRE: none
// POST: returns a positive window and topN, or ErrBadWindow / ErrBadTopN
func ParseQuery(q url.Values) (window time.Duration, topN int, err error) {
	window, topN = DefaultWindow, DefaultTopN
	if v := q.Get("window"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return 0, 0, ErrBadWindow
		}
		window = d
	}
	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, 0, ErrBadTopN
		}
		topN = n
	}
	return window, topN, nil
}
