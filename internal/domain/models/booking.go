package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Passenger is one traveller on a booking request.
type Passenger struct {
	Name   string `bson:"name" json:"name"`
	Age    int    `bson:"age" json:"age"`
	Gender string `bson:"gender" json:"gender"` // M / F / O
	Berth  bool   `bson:"berth,omitempty" json:"berth,omitempty"`
}

// RefundDetails is attached once a refund cycle has completed. Its presence
// permanently removes the booking from the pending-refund queue.
type RefundDetails struct {
	Amount    float64 `bson:"amount" json:"amount"`
	Date      string  `bson:"date" json:"date"` // YYYY-MM-DD
	Method    string  `bson:"method" json:"method"`
	AccountID string  `bson:"accountId" json:"accountId"`
}

// Booking is a client's train-reservation request. JourneyDate and
// BookingDate are calendar dates stored as YYYY-MM-DD strings.
//
// CreatedAt/UpdatedAt are decoded as `any` on purpose: legacy documents carry
// BSON datetimes, ISO strings or numeric epochs interchangeably, and the
// timestamp normalizer owns the coercion.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClientName      string             `bson:"clientName" json:"clientName"`
	Source          string             `bson:"source" json:"source"`
	Destination     string             `bson:"destination" json:"destination"`
	JourneyDate     string             `bson:"journeyDate" json:"journeyDate"`
	BookingDate     string             `bson:"bookingDate" json:"bookingDate"`
	Passengers      []Passenger        `bson:"passengers" json:"passengers"`
	ClassType       string             `bson:"classType" json:"classType"`
	BookingType     string             `bson:"bookingType" json:"bookingType"` // Tatkal / General
	TrainPreference string             `bson:"trainPreference,omitempty" json:"trainPreference,omitempty"`
	TimePreference  string             `bson:"timePreference,omitempty" json:"timePreference,omitempty"`
	Status          string             `bson:"status" json:"status"`
	RefundDetails   *RefundDetails     `bson:"refundDetails,omitempty" json:"refundDetails,omitempty"`
	CreatedAt       any                `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       any                `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	ClientName      *string     `json:"clientName"`
	Source          *string     `json:"source"`
	Destination     *string     `json:"destination"`
	JourneyDate     *string     `json:"journeyDate"`
	BookingDate     *string     `json:"bookingDate"`
	Passengers      []Passenger `json:"passengers"`
	ClassType       *string     `json:"classType"`
	BookingType     *string     `json:"bookingType"`
	TrainPreference *string     `json:"trainPreference"`
	TimePreference  *string     `json:"timePreference"`
}
