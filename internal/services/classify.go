package services

import (
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// Bucket is the view-time grouping of a booking. It is never stored.
type Bucket string

const (
	BucketPending   Bucket = "pending"
	BucketCompleted Bucket = "completed"
)

// Classification is the verdict for one booking at one instant: which bucket
// it lists under and which status to show. EffectiveStatus may be an inferred
// value (Missed) that differs from the stored status; the stored record is
// never rewritten by classification, so audit history survives journey dates
// passing without any background job.
type Classification struct {
	Bucket          Bucket `json:"bucket"`
	EffectiveStatus string `json:"effectiveStatus"`
}

// Classify derives the display bucket and effective status of a booking.
// Today is caller-supplied so callers control the clock.
//
// A future (or same-day) journey still awaiting an outcome is pending; a past
// journey still marked Requested was missed; every terminal status lands in
// completed untouched. A past Booking Failed stays Booking Failed rather than
// becoming Missed: the failure already is the outcome.
func Classify(b models.Booking, today time.Time) Classification {
	journey, err := utils.ParseDate(b.JourneyDate)
	if err != nil {
		// unreadable journey date: nothing to wait for, show as stored
		return Classification{Bucket: BucketCompleted, EffectiveStatus: b.Status}
	}

	day := utils.DateOnly(today)
	if !journey.Before(day) {
		switch b.Status {
		case domain.StatusRequested, domain.StatusFailedPaid, domain.StatusFailedUnpaid:
			return Classification{Bucket: BucketPending, EffectiveStatus: b.Status}
		}
		return Classification{Bucket: BucketCompleted, EffectiveStatus: b.Status}
	}

	if b.Status == domain.StatusRequested {
		return Classification{Bucket: BucketCompleted, EffectiveStatus: domain.StatusMissed}
	}
	return Classification{Bucket: BucketCompleted, EffectiveStatus: b.Status}
}
