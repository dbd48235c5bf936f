package services

import (
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// UsageWindow is the time range usage is counted over. A zero Until means
// open-ended (the fixed-epoch handler window); the trailing account window
// closes at "now".
type UsageWindow struct {
	Since time.Time
	Until time.Time
}

// TrailingWindow covers the last N days ending at now.
func TrailingWindow(now time.Time, days int) UsageWindow {
	return UsageWindow{Since: now.AddDate(0, 0, -days), Until: now}
}

// SinceWindow covers everything on or after the given instant.
func SinceWindow(epoch time.Time) UsageWindow {
	return UsageWindow{Since: epoch}
}

func (w UsageWindow) Contains(t time.Time) bool {
	if t.Before(w.Since) {
		return false
	}
	if !w.Until.IsZero() && t.After(w.Until) {
		return false
	}
	return true
}

// UsageStat is the per-entity aggregation result. LastUsedDate is the
// calendar date of the newest in-window record, empty when count is zero.
type UsageStat struct {
	Count        int    `json:"count"`
	LastUsedDate string `json:"lastUsedDate,omitempty"`
}

// AggregateUsage counts BookingRecords per entity key inside the window.
// The join is by denormalized string key, not storage id: records written
// under a since-renamed account or handler silently stop matching, which is
// accepted skew. A record whose createdAt cannot be normalized is excluded
// outright, never assumed in-window. The result is independent of record
// order.
func AggregateUsage(keys []string, joinKey func(models.BookingRecord) string, records []models.BookingRecord, w UsageWindow) map[string]UsageStat {
	stats := make(map[string]UsageStat, len(keys))
	for _, k := range keys {
		stats[k] = UsageStat{}
	}

	latest := make(map[string]time.Time)
	for _, rec := range records {
		key := joinKey(rec)
		if _, tracked := stats[key]; !tracked {
			continue
		}
		at, ok := utils.NormalizeInstant(rec.CreatedAt)
		if !ok || !w.Contains(at) {
			continue
		}
		s := stats[key]
		s.Count++
		stats[key] = s
		if at.After(latest[key]) {
			latest[key] = at
		}
	}

	for key, at := range latest {
		s := stats[key]
		s.LastUsedDate = utils.FormatDate(at)
		stats[key] = s
	}
	return stats
}

// AccountUsage aggregates per reservation-account username.
func AccountUsage(accounts []models.Account, records []models.BookingRecord, w UsageWindow) map[string]UsageStat {
	keys := make([]string, 0, len(accounts))
	for _, a := range accounts {
		keys = append(keys, a.Username)
	}
	return AggregateUsage(keys, func(r models.BookingRecord) string {
		return r.BookedAccountUsername
	}, records, w)
}

// HandlerUsage aggregates per operator name.
func HandlerUsage(handlers []models.Handler, records []models.BookingRecord, w UsageWindow) map[string]UsageStat {
	keys := make([]string, 0, len(handlers))
	for _, h := range handlers {
		keys = append(keys, h.Name)
	}
	return AggregateUsage(keys, func(r models.BookingRecord) string {
		return r.BookedBy
	}, records, w)
}
