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

type HandlerRepository struct {
	Col *mongo.Collection
}

func (r HandlerRepository) col() (*mongo.Collection, error) {
	if r.Col != nil {
		return r.Col, nil
	}
	if col := intconfig.Collection(intconfig.ColHandlers); col != nil {
		return col, nil
	}
	return nil, domain.InternalError{Msg: "document store not connected"}
}

func (r HandlerRepository) List(ctx context.Context) ([]models.Handler, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.InternalError{Msg: "handler list failed", Err: err}
	}
	defer cur.Close(ctx)

	var out []models.Handler
	if err := cur.All(ctx, &out); err != nil {
		return nil, domain.InternalError{Msg: "handler decode failed", Err: err}
	}
	return out, nil
}

func (r HandlerRepository) GetByName(ctx context.Context, name string) (models.Handler, error) {
	col, err := r.col()
	if err != nil {
		return models.Handler{}, err
	}
	var h models.Handler
	if err := col.FindOne(ctx, bson.M{"name": name}).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Handler{}, domain.NotFoundError{Resource: "handler", Err: err}
		}
		return models.Handler{}, domain.InternalError{Msg: "handler fetch failed", Err: err}
	}
	return h, nil
}

func (r HandlerRepository) Create(ctx context.Context, h *models.Handler) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	h.Name = utils.TrimOrEmpty(h.Name)
	if h.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}

	now := primitive.NewDateTimeFromTime(utils.NowUTC())
	h.CreatedAt = now
	h.UpdatedAt = now

	res, err := col.InsertOne(ctx, h)
	if err != nil {
		return domain.InternalError{Msg: "handler insert failed", Err: err}
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.ID = oid
	}
	return nil
}

func (r HandlerRepository) Delete(ctx context.Context, name string) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return domain.InternalError{Msg: "handler delete failed", Err: err}
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundError{Resource: "handler"}
	}
	return nil
}
