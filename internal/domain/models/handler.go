package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Handler is an operator who executes bookings. Name is the denormalized key
// BookingRecords join against.
type Handler struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt any                `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt any                `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
