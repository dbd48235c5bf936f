package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BookingRecord is a payment receipt. One record may cover several bookings
// when a group shares a single payment.
type BookingRecord struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingIDs            []string           `bson:"bookingIds" json:"bookingIds"`
	BookedBy              string             `bson:"bookedBy" json:"bookedBy"`                           // handler name
	BookedAccountUsername string             `bson:"bookedAccountUsername" json:"bookedAccountUsername"` // account username
	AmountCharged         float64            `bson:"amountCharged" json:"amountCharged"`
	MethodUsed            string             `bson:"methodUsed" json:"methodUsed"` // Wallet / UPI / Others
	CreatedAt             any                `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt             any                `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
