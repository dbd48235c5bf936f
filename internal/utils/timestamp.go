package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"railbook/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stored timestamps are a mess: old documents carry ISO strings or numeric
// epochs where newer ones carry BSON datetimes, and some fields are simply
// absent. NormalizeInstant is the single place that mess is coerced.

// epochMillisFloor: numeric values at or above this are epoch milliseconds,
// below it epoch seconds. 1e12 ms is 2001-09-09, 1e12 s is the year 33658.
const epochMillisFloor = 1e12

// NormalizeInstant coerces a stored value into an instant, leniently: any
// value that cannot be understood yields ok=false and never an error. Use it
// on display and aggregation paths where one bad record must not sink the
// batch.
func NormalizeInstant(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case primitive.DateTime:
		return t.Time().UTC(), true
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC(), true
	case primitive.Undefined, primitive.Null:
		return time.Time{}, false
	case string:
		return parseInstantString(t)
	case int:
		return instantFromEpoch(float64(t))
	case int32:
		return instantFromEpoch(float64(t))
	case int64:
		return instantFromEpoch(float64(t))
	case float64:
		return instantFromEpoch(t)
	case map[string]any:
		// extended-JSON leak: {"$date": ...}
		if inner, ok := t["$date"]; ok {
			return NormalizeInstant(inner)
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// RequireInstant is the strict mode: unparsable input is a DataFormatError
// naming the record and field. Use it where an authoritative timestamp is
// mandatory, e.g. createdAt/updatedAt when persisting an Account.
func RequireInstant(v any, record, field string) (time.Time, error) {
	ts, ok := NormalizeInstant(v)
	if !ok {
		return time.Time{}, domain.DataFormatError{
			Record: record,
			Field:  field,
			Value:  v,
			Err:    fmt.Errorf("unparsable timestamp"),
		}
	}
	return ts, nil
}

func parseInstantString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, layoutDateTime, layoutDate} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	// plain numeric epoch stored as a string
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return instantFromEpoch(n)
	}
	return time.Time{}, false
}

func instantFromEpoch(n float64) (time.Time, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return time.Time{}, false
	}
	if n >= epochMillisFloor {
		return time.UnixMilli(int64(n)).UTC(), true
	}
	return time.Unix(int64(n), 0).UTC(), true
}
