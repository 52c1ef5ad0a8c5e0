package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	availerrors "barkeep/internal/availability/errors"
	"barkeep/pkg/config"
	"barkeep/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "OperatingWindows"
)

type WindowRepository interface {
	Create(ctx context.Context, window *model.OperatingWindow) error
	FindByID(ctx context.Context, id string) (*model.OperatingWindow, error)
	FindByBar(ctx context.Context, barID string) ([]*model.OperatingWindow, error)
	Delete(ctx context.Context, id string) error
}

type mongoWindowRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoWindowRepository(cfg *config.Config) WindowRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoWindowRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoWindowRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoWindowRepository) Create(ctx context.Context, window *model.OperatingWindow) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	window.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to create operating window: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		window.ID = oid.Hex()
	}
	return nil
}

func (r *mongoWindowRepository) FindByID(ctx context.Context, id string) (*model.OperatingWindow, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", availerrors.ErrInvalidID, id)
	}

	var window model.OperatingWindow
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&window)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, availerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operating window: %w", err)
	}

	return &window, nil
}

func (r *mongoWindowRepository) FindByBar(ctx context.Context, barID string) ([]*model.OperatingWindow, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_clock", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"bar_id": barID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find operating windows: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []*model.OperatingWindow
	if err = cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode operating windows: %w", err)
	}

	return windows, nil
}

func (r *mongoWindowRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", availerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete operating window: %w", err)
	}

	if result.DeletedCount == 0 {
		return availerrors.ErrNotFound
	}

	return nil
}
