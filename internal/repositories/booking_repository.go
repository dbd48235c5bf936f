package repositories

import (
	"context"
	"errors"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	Col *mongo.Collection
}

func (r BookingRepository) col() (*mongo.Collection, error) {
	if r.Col != nil {
		return r.Col, nil
	}
	if col := intconfig.Collection(intconfig.ColBookings); col != nil {
		return col, nil
	}
	return nil, domain.InternalError{Msg: "document store not connected"}
}

func (r BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.InternalError{Msg: "booking list failed", Err: err}
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.InternalError{Msg: "booking decode failed", Err: err}
	}
	return out, nil
}

func (r BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "not a valid booking id", Err: err}
	}
	col, err := r.col()
	if err != nil {
		return models.Booking{}, err
	}

	var b models.Booking
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, domain.InternalError{Msg: "booking fetch failed", Err: err}
	}
	return b, nil
}

// Create stamps createdAt/updatedAt; the engine itself never sets them.
func (r BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	if b.Status == "" {
		b.Status = domain.StatusRequested
	}
	now := primitive.NewDateTimeFromTime(utils.NowUTC())
	b.CreatedAt = now
	b.UpdatedAt = now

	res, err := col.InsertOne(ctx, b)
	if err != nil {
		return domain.InternalError{Msg: "booking insert failed", Err: err}
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

// Update applies PATCH-style field updates by key presence.
func (r BookingRepository) Update(ctx context.Context, id string, upd models.BookingUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ValidationError{Field: "id", Msg: "not a valid booking id", Err: err}
	}
	col, err := r.col()
	if err != nil {
		return err
	}

	set := bson.M{}
	setStr := func(field string, v *string) {
		if v != nil {
			set[field] = utils.TrimOrEmpty(*v)
		}
	}
	setStr("clientName", upd.ClientName)
	setStr("source", upd.Source)
	setStr("destination", upd.Destination)
	setStr("journeyDate", upd.JourneyDate)
	setStr("bookingDate", upd.BookingDate)
	setStr("classType", upd.ClassType)
	setStr("bookingType", upd.BookingType)
	setStr("trainPreference", upd.TrainPreference)
	setStr("timePreference", upd.TimePreference)
	if upd.Passengers != nil {
		set["passengers"] = upd.Passengers
	}
	if len(set) == 0 {
		return nil
	}
	set["updatedAt"] = primitive.NewDateTimeFromTime(utils.NowUTC())

	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return domain.InternalError{Msg: "booking update failed", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ValidationError{Field: "id", Msg: "not a valid booking id", Err: err}
	}
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": primitive.NewDateTimeFromTime(utils.NowUTC()),
	}})
	if err != nil {
		return domain.InternalError{Msg: "status update failed", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) SetRefundDetails(ctx context.Context, id string, rd models.RefundDetails) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ValidationError{Field: "id", Msg: "not a valid booking id", Err: err}
	}
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"refundDetails": rd,
		"updatedAt":     primitive.NewDateTimeFromTime(utils.NowUTC()),
	}})
	if err != nil {
		return domain.InternalError{Msg: "refund update failed", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ValidationError{Field: "id", Msg: "not a valid booking id", Err: err}
	}
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.InternalError{Msg: "booking delete failed", Err: err}
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
