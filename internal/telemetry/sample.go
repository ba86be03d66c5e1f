package telemetry

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the layout of log-line timestamps and full window bounds.
const TimestampLayout = "2006-01-02 15:04:05"

// clockLayout is the time-only form accepted for window bounds.
const clockLayout = "15:04:05"

// Field positions in a log record.
const (
	fieldTime    = 0
	fieldPrimary = 2
	fieldAuxOne  = 3
	fieldAuxTwo  = 4
)

// ChannelNames labels Sample.Values by index.
var ChannelNames = []string{"Mainboard", "Display L", "Display R"}

// MaxChannels is the widest arity a log line can produce.
const MaxChannels = 3

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ErrInvalidBound is returned by ParseBound for values in neither accepted form.
var ErrInvalidBound = errors.New("invalid time bound")

// Sample is a single parsed telemetry record. Samples are never modified after
// ParseLine returns them.
type Sample struct {
	Time   time.Time
	Values []float64
}

// Primary returns the mainboard reading.
func (s Sample) Primary() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Values[0]
}

// Channel returns the value at index i and whether the line carried it.
func (s Sample) Channel(i int) (float64, bool) {
	if i < 0 || i >= len(s.Values) {
		return 0, false
	}
	return s.Values[i], true
}

// ParseLine converts one raw log line into a Sample. Lines that do not start
// with a YYYY-MM-DD date, or that carry a malformed timestamp or number, are
// rejected as a whole.
func ParseLine(line string) (Sample, bool) {
	line = strings.TrimRight(line, "\r\n")
	if !datePrefix.MatchString(line) {
		return Sample{}, false
	}

	fields := strings.Split(line, ",")
	if len(fields) <= fieldPrimary {
		return Sample{}, false
	}

	ts, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(fields[fieldTime]), time.Local)
	if err != nil {
		return Sample{}, false
	}

	primary, ok := parseValue(fields[fieldPrimary])
	if !ok {
		return Sample{}, false
	}
	values := make([]float64, 1, MaxChannels)
	values[0] = primary

	aux := auxFields(fields)
	for i, raw := range aux {
		if strings.TrimSpace(raw) == "" {
			// a blank channel is only allowed at the tail of the record
			for _, rest := range aux[i+1:] {
				if strings.TrimSpace(rest) != "" {
					return Sample{}, false
				}
			}
			break
		}
		v, ok := parseValue(raw)
		if !ok {
			return Sample{}, false
		}
		values = append(values, math.Max(v, 0))
	}

	return Sample{Time: ts, Values: values}, true
}

func auxFields(fields []string) []string {
	end := len(fields)
	if end > fieldAuxTwo+1 {
		end = fieldAuxTwo + 1
	}
	if end <= fieldAuxOne {
		return nil
	}
	return fields[fieldAuxOne:end]
}

func parseValue(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseBound parses a user-supplied window bound. It accepts the full
// "YYYY-MM-DD HH:MM:SS" form or a bare "HH:MM:SS", which is placed on the
// calendar day of now. Log lines never go through this path.
func ParseBound(value string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	loc := now.Location()
	if t, err := time.ParseInLocation(TimestampLayout, trimmed, loc); err == nil {
		return t, nil
	}
	clock, err := time.ParseInLocation(clockLayout, trimmed, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: want %q or %q", ErrInvalidBound, value, TimestampLayout, clockLayout)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), clock.Second(), 0, loc), nil
}
