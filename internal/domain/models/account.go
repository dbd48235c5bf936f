package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account is one entry in the reservation-credential pool. Username is the
// join key BookingRecords reference, not the storage id: renaming an account
// desynchronizes future aggregation for old records, which is accepted skew.
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	Password       string             `bson:"password" json:"password"`
	WalletAmount   float64            `bson:"walletAmount" json:"walletAmount"`
	LastBookedDate any                `bson:"lastBookedDate,omitempty" json:"lastBookedDate,omitempty"`
	CreatedAt      any                `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      any                `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
