package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barkeep/internal/migrations/mongo/validators"
)

var (
	BarsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	TablesIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "bar_id", Value: 1}, {Key: "label", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	DrinksIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "bar_id", Value: 1}, {Key: "name", Value: 1}}},
	}

	AccountsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}

	BookingsIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "account_id", Value: 1},
			{Key: "booking_date", Value: -1},
			{Key: "booking_clock", Value: -1},
		}},
		{Keys: bson.D{
			{Key: "bar_id", Value: 1},
			{Key: "booking_date", Value: 1},
			{Key: "booking_clock", Value: 1},
		}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	OperatingWindowsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "bar_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "bar_id", Value: 1}, {Key: "day_of_week", Value: 1}}},
	}
)

func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	fmt.Printf("🚀 Running Barkeep Mongo migrations on database: %s\n", dbName)

	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		"Bars": {
			Indexes:   BarsIndexes,
			Validator: validators.BarValidator,
		},
		"Tables": {
			Indexes:   TablesIndexes,
			Validator: validators.TableValidator,
		},
		"Drinks": {
			Indexes:   DrinksIndexes,
			Validator: validators.DrinkValidator,
		},
		"Accounts": {
			Indexes:   AccountsIndexes,
			Validator: validators.AccountValidator,
		},
		"Bookings": {
			Indexes:   BookingsIndexes,
			Validator: validators.BookingValidator,
		},
		"OperatingWindows": {
			Indexes:   OperatingWindowsIndexes,
			Validator: validators.OperatingWindowValidator,
		},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, db, name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	fmt.Println("✅ All migrations applied successfully.")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		fmt.Printf("🆕 Creating collection: %s\n", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
	} else {
		fmt.Printf("ℹ️ Collection %s already exists — updating validator if needed\n", name)
		command := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		if err := db.RunCommand(ctx, command).Err(); err != nil {
			fmt.Printf("⚠️ Warning: failed updating validator for %s: %v\n", name, err)
		}
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel) error {
	coll := db.Collection(name)
	_, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	fmt.Printf("📚 Ensured indexes for %s\n", name)
	return nil
}
