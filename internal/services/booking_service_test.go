package services

import (
	"context"
	"testing"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

func stubBookingService(b models.Booking) (BookingService, *string) {
	saved := new(string)
	svc := BookingService{
		FetchByID: func(context.Context, string) (models.Booking, error) {
			return b, nil
		},
		SaveStatus: func(_ context.Context, _, status string) error {
			*saved = status
			return nil
		},
		SaveRefund: func(_ context.Context, _ string, rd models.RefundDetails) error {
			*saved = "refund:" + rd.Date
			return nil
		},
	}
	return svc, saved
}

func TestChangeStatusRejectsUnknown(t *testing.T) {
	svc, _ := stubBookingService(models.Booking{Status: domain.StatusRequested})
	err := svc.ChangeStatus(context.Background(), "1", "Teleported", false)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestChangeStatusForwardTransition(t *testing.T) {
	svc, saved := stubBookingService(models.Booking{Status: domain.StatusRequested})
	if err := svc.ChangeStatus(context.Background(), "1", domain.StatusBooked, false); err != nil {
		t.Fatalf("forward transition failed: %v", err)
	}
	if *saved != domain.StatusBooked {
		t.Fatalf("status not persisted, got %q", *saved)
	}
}

// Once a booking leaves Requested it never returns automatically; only the
// explicit reopen flag allows it.
func TestChangeStatusReopenIsExplicit(t *testing.T) {
	svc, saved := stubBookingService(models.Booking{Status: domain.StatusBooked})

	err := svc.ChangeStatus(context.Background(), "1", domain.StatusRequested, false)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err := svc.ChangeStatus(context.Background(), "1", domain.StatusRequested, true); err != nil {
		t.Fatalf("explicit reopen failed: %v", err)
	}
	if *saved != domain.StatusRequested {
		t.Fatalf("reopen not persisted, got %q", *saved)
	}
}

func TestAttachRefundValidation(t *testing.T) {
	svc, _ := stubBookingService(models.Booking{Status: domain.StatusFailedPaid})
	cases := []models.RefundDetails{
		{Amount: 0, Date: "2025-05-01", Method: domain.MethodUPI},
		{Amount: 900, Date: "bad-date", Method: domain.MethodUPI},
		{Amount: 900, Date: "2025-05-01", Method: " "},
	}
	for i, rd := range cases {
		if err := svc.AttachRefund(context.Background(), "1", rd); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestAttachRefundRequiresEligibleStatus(t *testing.T) {
	svc, _ := stubBookingService(models.Booking{Status: domain.StatusBooked})
	rd := models.RefundDetails{Amount: 900, Date: "2025-05-01", Method: domain.MethodUPI}
	if err := svc.AttachRefund(context.Background(), "1", rd); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError for non-eligible status, got %v", err)
	}
}

func TestAttachRefundRejectsDouble(t *testing.T) {
	svc, _ := stubBookingService(models.Booking{
		Status:        domain.StatusFailedPaid,
		RefundDetails: &models.RefundDetails{Amount: 100, Date: "2025-04-01", Method: domain.MethodWallet},
	})
	rd := models.RefundDetails{Amount: 900, Date: "2025-05-01", Method: domain.MethodUPI}
	if err := svc.AttachRefund(context.Background(), "1", rd); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError for double refund, got %v", err)
	}
}

func TestAttachRefundPersists(t *testing.T) {
	svc, saved := stubBookingService(models.Booking{Status: domain.StatusCNFCancelled})
	rd := models.RefundDetails{Amount: 900, Date: "2025-05-01", Method: domain.MethodUPI, AccountID: "agent1"}
	if err := svc.AttachRefund(context.Background(), "1", rd); err != nil {
		t.Fatalf("AttachRefund error: %v", err)
	}
	if *saved != "refund:2025-05-01" {
		t.Fatalf("refund not persisted, got %q", *saved)
	}
}

func TestRemoveBlockedByPaymentRecord(t *testing.T) {
	deleted := false
	svc := BookingService{
		FetchRecords: func(context.Context, string) ([]models.BookingRecord, error) {
			return []models.BookingRecord{{BookingIDs: []string{"1"}}}, nil
		},
		DeleteByID: func(context.Context, string) error {
			deleted = true
			return nil
		},
	}
	if err := svc.Remove(context.Background(), "1"); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if deleted {
		t.Fatalf("referenced booking must not be deleted")
	}
}

func TestBucketsUsesInjectedClock(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	svc := BookingService{
		Now: func() time.Time { return today },
		FetchAll: func(context.Context) ([]models.Booking, error) {
			return []models.Booking{
				{ID: oid(1), JourneyDate: "2025-06-20", Status: domain.StatusRequested},
				{ID: oid(2), JourneyDate: "2025-06-10", Status: domain.StatusRequested},
			}, nil
		},
	}
	out, err := svc.Buckets(context.Background())
	if err != nil {
		t.Fatalf("Buckets error: %v", err)
	}
	if len(out.Pending) != 1 || out.Pending[0].ID != oid(1) {
		t.Fatalf("pending bucket wrong: %+v", out.Pending)
	}
	if len(out.Completed) != 1 || Classify(out.Completed[0], today).EffectiveStatus != domain.StatusMissed {
		t.Fatalf("completed bucket wrong: %+v", out.Completed)
	}
}
