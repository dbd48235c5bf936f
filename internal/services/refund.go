package services

import (
	"sort"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// PendingRefunds filters bookings that owe the client money back: a paid
// failure or a confirmed-then-cancelled ticket with no refund recorded yet.
// Newest failures come first since they are the most time-sensitive. Once
// refundDetails is attached the booking leaves this set for good; a recorded
// refund is never re-derived or disputed here.
func PendingRefunds(bookings []models.Booking) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if domain.RefundEligible(b.Status) && b.RefundDetails == nil {
			out = append(out, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, _ := utils.NormalizeInstant(out[i].CreatedAt)
		cj, _ := utils.NormalizeInstant(out[j].CreatedAt)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out
}
