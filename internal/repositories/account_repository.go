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

type AccountRepository struct {
	Col *mongo.Collection
}

func (r AccountRepository) col() (*mongo.Collection, error) {
	if r.Col != nil {
		return r.Col, nil
	}
	if col := intconfig.Collection(intconfig.ColAccounts); col != nil {
		return col, nil
	}
	return nil, domain.InternalError{Msg: "document store not connected"}
}

func (r AccountRepository) List(ctx context.Context) ([]models.Account, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.InternalError{Msg: "account list failed", Err: err}
	}
	defer cur.Close(ctx)

	var out []models.Account
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.InternalError{Msg: "account decode failed", Err: err}
	}
	return out, nil
}

func (r AccountRepository) GetByUsername(ctx context.Context, username string) (models.Account, error) {
	col, err := r.col()
	if err != nil {
		return models.Account{}, err
	}
	var a models.Account
	if err := col.FindOne(ctx, bson.M{"username": username}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Account{}, domain.NotFoundError{Resource: "account", Err: err}
		}
		return models.Account{}, domain.InternalError{Msg: "account fetch failed", Err: err}
	}
	return a, nil
}

// Create persists a new credential-pool entry. Accounts require authoritative
// creation timestamps: a caller-supplied createdAt (imports from the old
// system carry one) goes through the strict normalizer and an unparsable
// value is a DataFormatError, not a silent default.
func (r AccountRepository) Create(ctx context.Context, a *models.Account) error {
	col, err := r.col()
	if err != nil {
		return err
	}

	a.Username = utils.TrimOrEmpty(a.Username)
	if a.Username == "" {
		return domain.ValidationError{Field: "username", Msg: "required"}
	}
	if a.WalletAmount < 0 {
		return domain.ValidationError{Field: "walletAmount", Msg: "must not be negative"}
	}

	now := utils.NowUTC()
	if a.CreatedAt != nil {
		ts, err := utils.RequireInstant(a.CreatedAt, "account:"+a.Username, "createdAt")
		if err != nil {
			return err
		}
		a.CreatedAt = primitive.NewDateTimeFromTime(ts)
	} else {
		a.CreatedAt = primitive.NewDateTimeFromTime(now)
	}
	a.UpdatedAt = primitive.NewDateTimeFromTime(now)

	res, err := col.InsertOne(ctx, a)
	if err != nil {
		return domain.InternalError{Msg: "account insert failed", Err: err}
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (r AccountRepository) UpdateWallet(ctx context.Context, username string, amount float64) error {
	if amount < 0 {
		return domain.ValidationError{Field: "walletAmount", Msg: "must not be negative"}
	}
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": bson.M{
		"walletAmount": amount,
		"updatedAt":    primitive.NewDateTimeFromTime(utils.NowUTC()),
	}})
	if err != nil {
		return domain.InternalError{Msg: "wallet update failed", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "account"}
	}
	return nil
}

// TouchLastBooked records the most recent use of a credential.
func (r AccountRepository) TouchLastBooked(ctx context.Context, username string, at any) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	_, err = col.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": bson.M{
		"lastBookedDate": at,
		"updatedAt":      primitive.NewDateTimeFromTime(utils.NowUTC()),
	}})
	if err != nil {
		return domain.InternalError{Msg: "last-booked update failed", Err: err}
	}
	return nil
}

func (r AccountRepository) Delete(ctx context.Context, username string) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return domain.InternalError{Msg: "account delete failed", Err: err}
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundError{Resource: "account"}
	}
	return nil
}
