package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

const menuCollection = "menu"

// MenuRepository is the price source for order totals. An unknown item id is
// reported as a miss, not an error; the order coordinator prices it at zero.
type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menuCollection)}
}

type mongoMenuItem struct {
	ID    string `bson:"_id"`
	Name  string `bson:"name"`
	Price string `bson:"price"`
}

func (r *MenuRepository) UnitPrice(ctx context.Context, itemID string) (decimal.Decimal, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoMenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": itemID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("find menu item: %w", err)
	}

	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("menu item %s: bad price %q: %w", m.ID, m.Price, err)
	}
	return price, true, nil
}

func (r *MenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.MenuItem
	for cur.Next(ctx) {
		var m mongoMenuItem
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		price, err := decimal.NewFromString(m.Price)
		if err != nil {
			return nil, fmt.Errorf("menu item %s: bad price %q: %w", m.ID, m.Price, err)
		}
		out = append(out, &domain.MenuItem{ID: m.ID, Name: m.Name, Price: price})
	}
	return out, cur.Err()
}
