package utils

import (
	"errors"
	"math"
	"testing"
	"time"

	"railbook/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeInstantAcceptedForms(t *testing.T) {
	want := time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time.Time", want, want},
		{"bson datetime", primitive.NewDateTimeFromTime(want), want},
		{"rfc3339", "2025-02-01T10:30:00Z", want},
		{"datetime string", "2025-02-01 10:30:00", want},
		{"date string", "2025-02-01", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"epoch seconds", int64(want.Unix()), want},
		{"epoch millis", float64(want.UnixMilli()), want},
		{"numeric string", "1738405800", want},
		{"extended json", map[string]any{"$date": "2025-02-01T10:30:00Z"}, want},
	}
	for _, tc := range cases {
		got, ok := NormalizeInstant(tc.in)
		if !ok {
			t.Fatalf("%s: not normalized", tc.name)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeInstantRejectedForms(t *testing.T) {
	cases := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"garbage string", "not-a-date"},
		{"zero time", time.Time{}},
		{"negative epoch", int64(-5)},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"bson undefined", primitive.Undefined{}},
		{"bson null", primitive.Null{}},
		{"wrong type", []string{"2025-02-01"}},
	}
	for _, tc := range cases {
		if _, ok := NormalizeInstant(tc.in); ok {
			t.Fatalf("%s: should not normalize", tc.name)
		}
	}
}

func TestRequireInstantStrictFailure(t *testing.T) {
	_, err := RequireInstant("not-a-date", "account:agent1", "createdAt")
	if !domain.IsDataFormat(err) {
		t.Fatalf("expected DataFormatError, got %v", err)
	}

	var dfe domain.DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("error does not unwrap to DataFormatError")
	}
	if dfe.Record != "account:agent1" || dfe.Field != "createdAt" {
		t.Fatalf("error misses record/field: %+v", dfe)
	}
}

func TestRequireInstantPassThrough(t *testing.T) {
	want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	got, err := RequireInstant(primitive.NewDateTimeFromTime(want), "account:agent1", "createdAt")
	if err != nil {
		t.Fatalf("RequireInstant error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
