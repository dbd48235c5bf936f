package services

import (
	"fmt"
	"testing"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func oid(n int) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(fmt.Sprintf("%024x", n))
	if err != nil {
		panic(err)
	}
	return id
}

func feedBooking(n int, createdAt any) models.Booking {
	return models.Booking{
		ID:          oid(n),
		JourneyDate: "2025-07-01",
		Status:      domain.StatusRequested,
		CreatedAt:   createdAt,
	}
}

func TestBucketAndSortOrdering(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{ID: oid(1), JourneyDate: "2025-07-10", Status: domain.StatusRequested, CreatedAt: base},
		{ID: oid(2), JourneyDate: "2025-06-20", Status: domain.StatusRequested, CreatedAt: base},
		{ID: oid(3), JourneyDate: "2025-05-01", Status: domain.StatusBooked, CreatedAt: base},
		{ID: oid(4), JourneyDate: "2025-06-10", Status: domain.StatusBooked, CreatedAt: base},
	}
	out := BucketAndSort(bookings, today)

	if len(out.Pending) != 2 || len(out.Completed) != 2 {
		t.Fatalf("bucket sizes wrong: pending=%d completed=%d", len(out.Pending), len(out.Completed))
	}
	if out.Pending[0].JourneyDate != "2025-06-20" || out.Pending[1].JourneyDate != "2025-07-10" {
		t.Fatalf("pending should be soonest first: %s, %s", out.Pending[0].JourneyDate, out.Pending[1].JourneyDate)
	}
	if out.Completed[0].JourneyDate != "2025-06-10" || out.Completed[1].JourneyDate != "2025-05-01" {
		t.Fatalf("completed should be most recent first: %s, %s", out.Completed[0].JourneyDate, out.Completed[1].JourneyDate)
	}
}

func TestBucketAndSortTieBreaksByCreatedAt(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return time.Date(2025, 6, 1, h, 0, 0, 0, time.UTC) }

	// three bookings sharing one journey date
	bookings := []models.Booking{
		{ID: oid(1), JourneyDate: "2025-07-01", Status: domain.StatusRequested, CreatedAt: at(15)},
		{ID: oid(2), JourneyDate: "2025-07-01", Status: domain.StatusRequested, CreatedAt: at(9)},
		{ID: oid(3), JourneyDate: "2025-07-01", Status: domain.StatusRequested, CreatedAt: at(12)},
	}
	out := BucketAndSort(bookings, today)
	if len(out.Pending) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(out.Pending))
	}
	want := []primitive.ObjectID{oid(2), oid(3), oid(1)}
	for i, w := range want {
		if out.Pending[i].ID != w {
			t.Fatalf("tie order wrong at %d: got %s want %s", i, out.Pending[i].ID.Hex(), w.Hex())
		}
	}
}

func TestPaginateRejectsBadLimit(t *testing.T) {
	_, err := Paginate(nil, nil, 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPaginateRoundTrip(t *testing.T) {
	var all []models.Booking
	for i := 1; i <= 7; i++ {
		all = append(all, feedBooking(i, time.Date(2025, 6, i, 0, 0, 0, 0, time.UTC)))
	}

	for limit := 1; limit <= 8; limit++ {
		var got []models.Booking
		var cursor *time.Time
		for {
			page, err := Paginate(all, cursor, limit)
			if err != nil {
				t.Fatalf("limit %d: %v", limit, err)
			}
			got = append(got, page.Items...)
			if !page.HasMore {
				if page.NextCursor != nil && len(page.Items) < limit {
					t.Fatalf("limit %d: short page must not carry a cursor", limit)
				}
				break
			}
			if page.NextCursor == nil {
				t.Fatalf("limit %d: hasMore without cursor", limit)
			}
			cursor = page.NextCursor
		}

		if len(got) != len(all) {
			t.Fatalf("limit %d: round trip returned %d of %d", limit, len(got), len(all))
		}
		seen := map[string]bool{}
		for i, b := range got {
			if seen[b.ID.Hex()] {
				t.Fatalf("limit %d: duplicate %s", limit, b.ID.Hex())
			}
			seen[b.ID.Hex()] = true
			// createdAt runs June 7 down to June 1
			if b.ID != oid(7-i) {
				t.Fatalf("limit %d: order broken at %d: %s", limit, i, b.ID.Hex())
			}
		}
	}
}

func TestPaginateDropsUnreadableCreatedAt(t *testing.T) {
	all := []models.Booking{
		feedBooking(1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		feedBooking(2, "not-a-date"),
		feedBooking(3, nil),
		feedBooking(4, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)),
	}
	page, err := Paginate(all, nil, 10)
	if err != nil {
		t.Fatalf("paginate error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 feed items, got %d", len(page.Items))
	}
	if page.Items[0].ID != oid(4) || page.Items[1].ID != oid(1) {
		t.Fatalf("unexpected feed order: %s, %s", page.Items[0].ID.Hex(), page.Items[1].ID.Hex())
	}
	if page.HasMore {
		t.Fatalf("exhausted feed reported hasMore")
	}
}

func TestSearchMatchesCaseInsensitive(t *testing.T) {
	bookings := []models.Booking{
		{ID: oid(1), ClientName: "Ravi Kumar", Source: "Chennai", Destination: "Delhi"},
		{ID: oid(2), Source: "Mumbai", Destination: "Pune", Passengers: []models.Passenger{{Name: "Anita Sharma"}}},
		{ID: oid(3), Source: "Kolkata", Destination: "Patna", ClassType: "3A", TimePreference: "Night"},
	}

	if got := Search(bookings, "ravi"); len(got) != 1 || got[0].ID != oid(1) {
		t.Fatalf("client-name search failed: %v", got)
	}
	if got := Search(bookings, "ANITA"); len(got) != 1 || got[0].ID != oid(2) {
		t.Fatalf("passenger-name search failed: %v", got)
	}
	if got := Search(bookings, "night"); len(got) != 1 || got[0].ID != oid(3) {
		t.Fatalf("time-preference search failed: %v", got)
	}
	if got := Search(bookings, "  "); len(got) != 3 {
		t.Fatalf("blank query should return the full set, got %d", len(got))
	}
	if got := Search(bookings, "jaipur"); got != nil {
		t.Fatalf("miss should return nil, got %v", got)
	}
}
