package services

import (
	"sort"
	"strings"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// BucketedBookings holds the two display groups. Pending is ordered by
// soonest journey first, completed by most recent journey first. The two
// orderings are independent of the cursor feed in Paginate and must stay so.
type BucketedBookings struct {
	Pending   []models.Booking `json:"pending"`
	Completed []models.Booking `json:"completed"`
}

// BucketAndSort partitions bookings via Classify and orders each bucket.
// Ties on journey date break by createdAt ascending so pagination applied on
// top of a bucket stays deterministic.
func BucketAndSort(bookings []models.Booking, today time.Time) BucketedBookings {
	var out BucketedBookings
	for _, b := range bookings {
		if Classify(b, today).Bucket == BucketPending {
			out.Pending = append(out.Pending, b)
		} else {
			out.Completed = append(out.Completed, b)
		}
	}

	sort.SliceStable(out.Pending, func(i, j int) bool {
		return bucketLess(out.Pending[i], out.Pending[j], true)
	})
	sort.SliceStable(out.Completed, func(i, j int) bool {
		return bucketLess(out.Completed[i], out.Completed[j], false)
	})
	return out
}

func bucketLess(a, b models.Booking, ascending bool) bool {
	da, errA := utils.ParseDate(a.JourneyDate)
	db, errB := utils.ParseDate(b.JourneyDate)
	switch {
	case errA != nil && errB != nil:
		// fall through to the createdAt tiebreak
	case errA != nil:
		return false
	case errB != nil:
		return true
	case !da.Equal(db):
		if ascending {
			return da.Before(db)
		}
		return da.After(db)
	}

	ca, _ := utils.NormalizeInstant(a.CreatedAt)
	cb, _ := utils.NormalizeInstant(b.CreatedAt)
	if !ca.Equal(cb) {
		return ca.Before(cb)
	}
	return a.ID.Hex() < b.ID.Hex()
}

// Page is one slice of the createdAt-descending feed. NextCursor is the
// createdAt of the last item when the page came back full, nil otherwise.
type Page struct {
	Items      []models.Booking `json:"items"`
	NextCursor *time.Time       `json:"nextCursor"`
	HasMore    bool             `json:"hasMore"`
}

// Paginate serves the infinite-scroll feed: newest bookings first, resuming
// strictly after lastCreatedAt when supplied. Bookings whose createdAt cannot
// be normalized are dropped from the feed rather than aborting it. This path
// is deliberately separate from the bucketed views above.
func Paginate(bookings []models.Booking, lastCreatedAt *time.Time, limit int) (Page, error) {
	if limit <= 0 {
		return Page{}, domain.ValidationError{Field: "limit", Msg: "must be greater than zero"}
	}

	type feedItem struct {
		booking models.Booking
		at      time.Time
	}
	items := make([]feedItem, 0, len(bookings))
	for _, b := range bookings {
		at, ok := utils.NormalizeInstant(b.CreatedAt)
		if !ok {
			continue
		}
		if lastCreatedAt != nil && !at.Before(*lastCreatedAt) {
			continue
		}
		items = append(items, feedItem{booking: b, at: at})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].at.Equal(items[j].at) {
			return items[i].at.After(items[j].at)
		}
		return items[i].booking.ID.Hex() > items[j].booking.ID.Hex()
	})

	page := Page{HasMore: len(items) > limit}
	n := limit
	if n > len(items) {
		n = len(items)
	}
	for _, it := range items[:n] {
		page.Items = append(page.Items, it.booking)
	}
	if n == limit && n > 0 {
		cursor := items[n-1].at
		page.NextCursor = &cursor
	}
	return page, nil
}

// Search scans the whole working set for a case-insensitive match against
// passenger names, client name, source, destination, class and the train and
// time preferences. It bypasses pagination entirely and imposes no order;
// callers wanting bucket order run BucketAndSort on the result.
func Search(bookings []models.Booking, query string) []models.Booking {
	q := utils.FoldForSearch(query)
	if q == "" {
		return bookings
	}

	var out []models.Booking
	for _, b := range bookings {
		if bookingMatches(b, q) {
			out = append(out, b)
		}
	}
	return out
}

func bookingMatches(b models.Booking, q string) bool {
	fields := []string{
		b.ClientName,
		b.Source,
		b.Destination,
		b.ClassType,
		b.TrainPreference,
		b.TimePreference,
	}
	for _, p := range b.Passengers {
		fields = append(fields, p.Name)
	}
	for _, f := range fields {
		if strings.Contains(utils.FoldForSearch(f), q) {
			return true
		}
	}
	return false
}
