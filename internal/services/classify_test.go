package services

import (
	"testing"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

var classifyToday = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func mkBooking(journeyDate, status string) models.Booking {
	return models.Booking{JourneyDate: journeyDate, Status: status}
}

func TestClassifyFutureRequestedIsPending(t *testing.T) {
	got := Classify(mkBooking("2025-07-01", domain.StatusRequested), classifyToday)
	if got.Bucket != BucketPending || got.EffectiveStatus != domain.StatusRequested {
		t.Fatalf("unexpected classification: %+v", got)
	}
}

func TestClassifySameDayIsStillPending(t *testing.T) {
	got := Classify(mkBooking("2025-06-15", domain.StatusRequested), classifyToday)
	if got.Bucket != BucketPending || got.EffectiveStatus != domain.StatusRequested {
		t.Fatalf("same-day journey should stay pending, got %+v", got)
	}
}

func TestClassifyPastRequestedInferredMissed(t *testing.T) {
	got := Classify(mkBooking("2025-06-14", domain.StatusRequested), classifyToday)
	if got.Bucket != BucketCompleted || got.EffectiveStatus != domain.StatusMissed {
		t.Fatalf("past Requested should show as Missed, got %+v", got)
	}
}

func TestClassifyFutureFailedStaysPending(t *testing.T) {
	for _, status := range []string{domain.StatusFailedPaid, domain.StatusFailedUnpaid} {
		got := Classify(mkBooking("2025-07-01", status), classifyToday)
		if got.Bucket != BucketPending || got.EffectiveStatus != status {
			t.Fatalf("future %s: got %+v", status, got)
		}
	}
}

// A past failed booking stays failed: the failure already is the outcome, it
// never turns into Missed.
func TestClassifyPastFailedKeepsFailure(t *testing.T) {
	got := Classify(mkBooking("2025-06-01", domain.StatusFailedPaid), classifyToday)
	if got.Bucket != BucketCompleted || got.EffectiveStatus != domain.StatusFailedPaid {
		t.Fatalf("past failure rewritten: %+v", got)
	}
}

func TestClassifyFutureTerminalIsCompleted(t *testing.T) {
	for _, status := range []string{domain.StatusBooked, domain.StatusCNFCancelled, domain.StatusUserCancelled} {
		got := Classify(mkBooking("2025-07-01", status), classifyToday)
		if got.Bucket != BucketCompleted || got.EffectiveStatus != status {
			t.Fatalf("future %s: got %+v", status, got)
		}
	}
}

func TestClassifyPastTerminalUnchanged(t *testing.T) {
	for _, status := range []string{domain.StatusBooked, domain.StatusMissed, domain.StatusCNFCancelled, domain.StatusUserCancelled, domain.StatusFailedUnpaid} {
		got := Classify(mkBooking("2025-01-01", status), classifyToday)
		if got.Bucket != BucketCompleted || got.EffectiveStatus != status {
			t.Fatalf("past %s: got %+v", status, got)
		}
	}
}

func TestClassifyUnreadableJourneyDate(t *testing.T) {
	got := Classify(mkBooking("not-a-date", domain.StatusRequested), classifyToday)
	if got.Bucket != BucketCompleted || got.EffectiveStatus != domain.StatusRequested {
		t.Fatalf("bad journey date should complete unchanged, got %+v", got)
	}
}
