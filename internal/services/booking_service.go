package services

import (
	"context"
	"fmt"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"
)

// BookingService applies the classification, listing and refund engine to the
// stored booking set and guards lifecycle mutations. All reads happen up
// front; the engine then works on the in-memory snapshot.
type BookingService struct {
	Repo      repositories.BookingRepository
	Records   repositories.BookingRecordRepository
	RequestID string

	// Test seams: when set, they replace the repo calls.
	Now          func() time.Time
	FetchAll     func(context.Context) ([]models.Booking, error)
	FetchByID    func(context.Context, string) (models.Booking, error)
	FetchRecords func(context.Context, string) ([]models.BookingRecord, error)
	SaveStatus   func(context.Context, string, string) error
	SaveRefund   func(context.Context, string, models.RefundDetails) error
	DeleteByID   func(context.Context, string) error
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) fetchAll(ctx context.Context) ([]models.Booking, error) {
	if s.FetchAll != nil {
		return s.FetchAll(ctx)
	}
	return s.Repo.List(ctx)
}

func (s BookingService) fetchByID(ctx context.Context, id string) (models.Booking, error) {
	if s.FetchByID != nil {
		return s.FetchByID(ctx, id)
	}
	return s.Repo.GetByID(ctx, id)
}

func (s BookingService) fetchRecords(ctx context.Context, bookingID string) ([]models.BookingRecord, error) {
	if s.FetchRecords != nil {
		return s.FetchRecords(ctx, bookingID)
	}
	return s.Records.ListByBookingID(ctx, bookingID)
}

// Buckets returns the pending/completed display groups for "now".
func (s BookingService) Buckets(ctx context.Context) (BucketedBookings, error) {
	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return BucketedBookings{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "buckets", fmt.Sprintf("total=%d", len(bookings)))
	return BucketAndSort(bookings, s.now()), nil
}

// Feed serves one page of the createdAt-descending scroll feed.
func (s BookingService) Feed(ctx context.Context, lastCreatedAt *time.Time, limit int) (Page, error) {
	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return Page{}, err
	}
	return Paginate(bookings, lastCreatedAt, limit)
}

// Find runs the free-text scan over the full working set.
func (s BookingService) Find(ctx context.Context, query string) ([]models.Booking, error) {
	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	matches := Search(bookings, query)
	utils.LogEvent(s.RequestID, "booking", "search", fmt.Sprintf("matches=%d", len(matches)))
	return matches, nil
}

// RefundQueue returns bookings still owed a refund, newest first.
func (s BookingService) RefundQueue(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return PendingRefunds(bookings), nil
}

// ChangeStatus moves a booking through its lifecycle. Leaving Requested is
// one-way: going back to Requested needs the caller's explicit reopen flag,
// it never happens as a side effect.
func (s BookingService) ChangeStatus(ctx context.Context, id, newStatus string, reopen bool) error {
	if !domain.KnownStatus(newStatus) {
		return domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", newStatus)}
	}

	b, err := s.fetchByID(ctx, id)
	if err != nil {
		return err
	}
	if newStatus == domain.StatusRequested && b.Status != domain.StatusRequested && !reopen {
		return domain.ConflictError{
			Resource: "booking",
			Msg:      "cannot return to Requested without an explicit reopen",
		}
	}

	utils.LogEvent(s.RequestID, "booking", "change_status", fmt.Sprintf("id=%s %s->%s", id, b.Status, newStatus))
	if s.SaveStatus != nil {
		return s.SaveStatus(ctx, id, newStatus)
	}
	return s.Repo.UpdateStatus(ctx, id, newStatus)
}

// AttachRefund records a completed refund cycle on an eligible booking.
func (s BookingService) AttachRefund(ctx context.Context, id string, rd models.RefundDetails) error {
	if rd.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	if _, err := utils.ParseDate(rd.Date); err != nil {
		return domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if utils.TrimOrEmpty(rd.Method) == "" {
		return domain.ValidationError{Field: "method", Msg: "required"}
	}

	b, err := s.fetchByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.RefundEligible(b.Status) {
		return domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("status %q is not refund-eligible", b.Status),
		}
	}
	if b.RefundDetails != nil {
		return domain.ConflictError{Resource: "booking", Msg: "refund already recorded"}
	}

	utils.LogEvent(s.RequestID, "booking", "attach_refund", fmt.Sprintf("id=%s amount=%s", id, utils.FormatMoney(rd.Amount)))
	if s.SaveRefund != nil {
		return s.SaveRefund(ctx, id, rd)
	}
	return s.Repo.SetRefundDetails(ctx, id, rd)
}

// Remove deletes a booking unless a payment receipt still references it.
// Deleting a referenced booking would orphan aggregation data.
func (s BookingService) Remove(ctx context.Context, id string) error {
	recs, err := s.fetchRecords(ctx, id)
	if err != nil {
		return err
	}
	if len(recs) > 0 {
		return domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("referenced by %d payment record(s)", len(recs)),
		}
	}
	utils.LogEvent(s.RequestID, "booking", "delete", "id="+id)
	if s.DeleteByID != nil {
		return s.DeleteByID(ctx, id)
	}
	return s.Repo.Delete(ctx, id)
}
