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
	DrinksCollection = "Drinks"
)

type DrinkRepository interface {
	Create(ctx context.Context, drink *model.Drink) error
	FindByID(ctx context.Context, id string) (*model.Drink, error)
	FindByBar(ctx context.Context, barID string) ([]*model.Drink, error)
	FindByIDs(ctx context.Context, barID string, ids []string) ([]*model.Drink, error)
	Delete(ctx context.Context, id string) error
}

type mongoDrinkRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoDrinkRepository(cfg *config.Config) DrinkRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoDrinkRepository{
		cfg:        cfg,
		collection: db.Collection(DrinksCollection),
	}
}

func (r *mongoDrinkRepository) Create(ctx context.Context, drink *model.Drink) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	drink.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, drink)
	if err != nil {
		return fmt.Errorf("failed to create drink: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		drink.ID = oid.Hex()
	}
	return nil
}

func (r *mongoDrinkRepository) FindByID(ctx context.Context, id string) (*model.Drink, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	var drink model.Drink
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&drink)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, barserrors.ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to find drink: %w", err)
	}

	return &drink, nil
}

func (r *mongoDrinkRepository) FindByBar(ctx context.Context, barID string) ([]*model.Drink, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"bar_id": barID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find drinks: %w", err)
	}
	defer cursor.Close(ctx)

	var drinks []*model.Drink
	if err = cursor.All(ctx, &drinks); err != nil {
		return nil, fmt.Errorf("failed to decode drinks: %w", err)
	}

	return drinks, nil
}

// FindByIDs returns only drinks that exist and belong to barID.
func (r *mongoDrinkRepository) FindByIDs(ctx context.Context, barID string, ids []string) ([]*model.Drink, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, oid)
	}

	filter := bson.M{
		"_id":    bson.M{"$in": objectIDs},
		"bar_id": barID,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find drinks by IDs: %w", err)
	}
	defer cursor.Close(ctx)

	var drinks []*model.Drink
	if err = cursor.All(ctx, &drinks); err != nil {
		return nil, fmt.Errorf("failed to decode drinks: %w", err)
	}

	return drinks, nil
}

func (r *mongoDrinkRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete drink: %w", err)
	}

	if result.DeletedCount == 0 {
		return barserrors.ErrDrinkNotFound
	}

	return nil
}
