package mongo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

const inventoryCollection = "inventory"

// InventoryRepository stores stock items keyed by the normalized item name,
// so an upsert with the same name always replaces in place.
type InventoryRepository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{coll: db.Collection(inventoryCollection)}
}

type mongoInventoryItem struct {
	Key      string `bson:"_id"`
	Name     string `bson:"name"`
	Quantity int64  `bson:"quantity"`
	UnitCost string `bson:"unit_cost"`
}

func (r *InventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.InventoryItem
	for cur.Next(ctx) {
		var m mongoInventoryItem
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode inventory item: %w", err)
		}
		cost := decimal.Zero
		if m.UnitCost != "" {
			cost, err = decimal.NewFromString(m.UnitCost)
			if err != nil {
				return nil, fmt.Errorf("item %s: bad unit cost %q: %w", m.Key, m.UnitCost, err)
			}
		}
		out = append(out, &domain.InventoryItem{
			Key:      m.Key,
			Name:     m.Name,
			Quantity: m.Quantity,
			UnitCost: cost,
		})
	}
	return out, cur.Err()
}

func (r *InventoryRepository) Upsert(ctx context.Context, item *domain.InventoryItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoInventoryItem{
		Key:      item.Key,
		Name:     item.Name,
		Quantity: item.Quantity,
		UnitCost: item.UnitCost.String(),
	}
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": item.Key},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) DeleteByKey(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
