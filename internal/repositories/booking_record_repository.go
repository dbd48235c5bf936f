package repositories

import (
	"context"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRecordRepository struct {
	Col *mongo.Collection
}

func (r BookingRecordRepository) col() (*mongo.Collection, error) {
	if r.Col != nil {
		return r.Col, nil
	}
	if col := intconfig.Collection(intconfig.ColRecords); col != nil {
		return col, nil
	}
	return nil, domain.InternalError{Msg: "document store not connected"}
}

func (r BookingRecordRepository) List(ctx context.Context) ([]models.BookingRecord, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.InternalError{Msg: "record list failed", Err: err}
	}
	defer cur.Close(ctx)

	var out []models.BookingRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.InternalError{Msg: "record decode failed", Err: err}
	}
	return out, nil
}

// ListByBookingID returns receipts covering the given booking. Group payments
// store several booking ids on one record, so this is an array-membership
// query.
func (r BookingRecordRepository) ListByBookingID(ctx context.Context, bookingID string) ([]models.BookingRecord, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{"bookingIds": bookingID})
	if err != nil {
		return nil, domain.InternalError{Msg: "record lookup failed", Err: err}
	}
	defer cur.Close(ctx)

	var out []models.BookingRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.InternalError{Msg: "record decode failed", Err: err}
	}
	return out, nil
}

func (r BookingRecordRepository) Create(ctx context.Context, rec *models.BookingRecord) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	if len(rec.BookingIDs) == 0 {
		return domain.ValidationError{Field: "bookingIds", Msg: "at least one booking required"}
	}
	if !domain.KnownMethod(rec.MethodUsed) {
		return domain.ValidationError{Field: "methodUsed", Msg: "unknown payment method"}
	}

	now := primitive.NewDateTimeFromTime(utils.NowUTC())
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := col.InsertOne(ctx, rec)
	if err != nil {
		return domain.InternalError{Msg: "record insert failed", Err: err}
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	return nil
}
