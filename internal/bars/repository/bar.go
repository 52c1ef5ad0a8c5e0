package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	barserrors "barkeep/internal/bars/errors"
	"barkeep/pkg/config"
	"barkeep/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BarsCollection = "Bars"
)

type BarRepository interface {
	Create(ctx context.Context, bar *model.Bar) error
	FindByID(ctx context.Context, id string) (*model.Bar, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Bar, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, bar *model.Bar) error
	Delete(ctx context.Context, id string) error
}

type mongoBarRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBarRepository(cfg *config.Config) BarRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBarRepository{
		cfg:        cfg,
		collection: db.Collection(BarsCollection),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBarRepository) Create(ctx context.Context, bar *model.Bar) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	bar.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, bar)
	if err != nil {
		return fmt.Errorf("failed to create bar: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		bar.ID = oid.Hex()
	}
	return nil
}

func (r *mongoBarRepository) FindByID(ctx context.Context, id string) (*model.Bar, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	var bar model.Bar
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bar)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, barserrors.ErrBarNotFound
		}
		return nil, fmt.Errorf("failed to find bar: %w", err)
	}

	return &bar, nil
}

func (r *mongoBarRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Bar, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bars: %w", err)
	}
	defer cursor.Close(ctx)

	var bars []*model.Bar
	if err = cursor.All(ctx, &bars); err != nil {
		return nil, fmt.Errorf("failed to decode bars: %w", err)
	}

	return bars, nil
}

func (r *mongoBarRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bars: %w", err)
	}
	return count, nil
}

func (r *mongoBarRepository) Update(ctx context.Context, id string, bar *model.Bar) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":             bar.Name,
			"address":          bar.Address,
			"city":             bar.City,
			"contact_phone":    bar.ContactPhone,
			"discount_percent": bar.DiscountPercent,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update bar: %w", err)
	}

	if result.MatchedCount == 0 {
		return barserrors.ErrBarNotFound
	}

	return nil
}

func (r *mongoBarRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete bar: %w", err)
	}

	if result.DeletedCount == 0 {
		return barserrors.ErrBarNotFound
	}

	return nil
}
