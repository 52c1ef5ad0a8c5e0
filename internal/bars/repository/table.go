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
	TablesCollection = "Tables"
)

type TableRepository interface {
	Create(ctx context.Context, table *model.Table) error
	FindByID(ctx context.Context, id string) (*model.Table, error)
	FindByBar(ctx context.Context, barID string) ([]*model.Table, error)
	FindByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error)
	UpdateStatus(ctx context.Context, id string, status model.TableStatus) error
	Delete(ctx context.Context, id string) error
}

type mongoTableRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoTableRepository(cfg *config.Config) TableRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTableRepository{
		cfg:        cfg,
		collection: db.Collection(TablesCollection),
	}
}

func (r *mongoTableRepository) Create(ctx context.Context, table *model.Table) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if table.Status == "" {
		table.Status = model.TableAvailable
	}
	table.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	result, err := r.collection.InsertOne(ctx, table)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return barserrors.ErrDuplicateLabel
		}
		return fmt.Errorf("failed to create table: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		table.ID = oid.Hex()
	}
	return nil
}

func (r *mongoTableRepository) FindByID(ctx context.Context, id string) (*model.Table, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	var table model.Table
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&table)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, barserrors.ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to find table: %w", err)
	}

	return &table, nil
}

func (r *mongoTableRepository) FindByBar(ctx context.Context, barID string) ([]*model.Table, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "label", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"bar_id": barID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find tables: %w", err)
	}
	defer cursor.Close(ctx)

	var tables []*model.Table
	if err = cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}

	return tables, nil
}

// FindByIDs returns only tables that exist AND belong to barID, so a
// caller can detect foreign or unknown table references by comparing
// lengths.
func (r *mongoTableRepository) FindByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error) {
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
		return nil, fmt.Errorf("failed to find tables by IDs: %w", err)
	}
	defer cursor.Close(ctx)

	var tables []*model.Table
	if err = cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}

	return tables, nil
}

func (r *mongoTableRepository) UpdateStatus(ctx context.Context, id string, status model.TableStatus) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update table status: %w", err)
	}

	if result.MatchedCount == 0 {
		return barserrors.ErrTableNotFound
	}

	return nil
}

func (r *mongoTableRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", barserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	if result.DeletedCount == 0 {
		return barserrors.ErrTableNotFound
	}

	return nil
}
