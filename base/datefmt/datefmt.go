// Package datefmt renders unix-second timestamps as en-US calendar dates.
package datefmt

import (
	"time"
)

type MonthStyle string

const (
	MonthLong    MonthStyle = "long"
	MonthShort   MonthStyle = "short"
	MonthNumeric MonthStyle = "numeric"
)

var layouts = map[MonthStyle]string{
	MonthLong:    "January 2, 2006",
	MonthShort:   "Jan 2, 2006",
	MonthNumeric: "1/2/2006",
}

const timeLayout = "15:04:05"

type Options struct {
	Month       MonthStyle
	IncludeTime bool
	Timezone    string
}

type Option func(*Options)

func WithMonth(style MonthStyle) Option {
	return func(o *Options) {
		o.Month = style
	}
}

func WithTime() Option {
	return func(o *Options) {
		o.IncludeTime = true
	}
}

func WithTimezone(name string) Option {
	return func(o *Options) {
		o.Timezone = name
	}
}

// Format renders ts (seconds since epoch). Defaults to a long month name,
// no time of day and UTC. An unknown timezone or month style falls back to
// the default.
func Format(ts int64, opts ...Option) string {
	o := Options{Month: MonthLong, Timezone: "UTC"}
	for _, opt := range opts {
		opt(&o)
	}

	loc, err := time.LoadLocation(o.Timezone)
	if err != nil || len(o.Timezone) == 0 {
		loc = time.UTC
	}

	layout, ok := layouts[o.Month]
	if !ok {
		layout = layouts[MonthLong]
	}

	t := time.Unix(ts, 0).In(loc)
	if !o.IncludeTime {
		return t.Format(layout)
	}
	if o.Month == MonthNumeric {
		return t.Format(layout + ", " + timeLayout)
	}
	return t.Format(layout + " at " + timeLayout)
}
