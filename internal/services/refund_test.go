package services

import (
	"testing"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

func TestPendingRefundsPredicate(t *testing.T) {
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	refund := &models.RefundDetails{Amount: 900, Date: "2025-05-02", Method: domain.MethodUPI}

	bookings := []models.Booking{
		{ID: oid(1), Status: domain.StatusFailedPaid, CreatedAt: at},
		{ID: oid(2), Status: domain.StatusFailedPaid, RefundDetails: refund, CreatedAt: at},
		{ID: oid(3), Status: domain.StatusCNFCancelled, CreatedAt: at},
		{ID: oid(4), Status: domain.StatusFailedUnpaid, CreatedAt: at},
		{ID: oid(5), Status: domain.StatusBooked, CreatedAt: at},
		{ID: oid(6), Status: domain.StatusUserCancelled, CreatedAt: at},
	}

	got := PendingRefunds(bookings)
	if len(got) != 2 {
		t.Fatalf("expected 2 pending refunds, got %d", len(got))
	}
	for _, b := range got {
		if b.ID != oid(1) && b.ID != oid(3) {
			t.Fatalf("unexpected booking in queue: %s", b.ID.Hex())
		}
	}
}

func TestPendingRefundsNewestFirst(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC) }
	bookings := []models.Booking{
		{ID: oid(1), Status: domain.StatusFailedPaid, CreatedAt: day(1)},
		{ID: oid(2), Status: domain.StatusCNFCancelled, CreatedAt: day(9)},
		{ID: oid(3), Status: domain.StatusFailedPaid, CreatedAt: day(5)},
	}

	got := PendingRefunds(bookings)
	want := []int{2, 3, 1}
	for i, n := range want {
		if got[i].ID != oid(n) {
			t.Fatalf("order wrong at %d: got %s", i, got[i].ID.Hex())
		}
	}
}

func TestRefundAttachmentRemovesFromQueue(t *testing.T) {
	b := models.Booking{ID: oid(1), Status: domain.StatusFailedPaid, CreatedAt: time.Now().UTC()}
	if got := PendingRefunds([]models.Booking{b}); len(got) != 1 {
		t.Fatalf("unrefunded failure should queue, got %d", len(got))
	}
	b.RefundDetails = &models.RefundDetails{Amount: 500, Date: "2025-05-01", Method: domain.MethodWallet}
	if got := PendingRefunds([]models.Booking{b}); len(got) != 0 {
		t.Fatalf("refunded booking must leave the queue, got %d", len(got))
	}
}
