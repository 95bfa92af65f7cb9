package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

const orderCollection = "orders"

// OrderRepository stores orders with store-assigned ObjectID ids. The
// finalized_at field is decoded through domain.FlexTime because historical
// documents carry it as an ISO-8601 string rather than a native datetime.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(orderCollection)}
}

type mongoLineItem struct {
	ItemID   string `bson:"item_id"`
	Quantity int    `bson:"quantity"`
}

type mongoOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Items       []mongoLineItem    `bson:"items"`
	Total       string             `bson:"total"`
	State       string             `bson:"state"`
	CreatedBy   string             `bson:"created_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	FinalizedAt domain.FlexTime    `bson:"finalized_at,omitempty"`
}

func toOrderDomain(m *mongoOrder) (*domain.Order, error) {
	state, err := domain.ParseOrderState(m.State)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", m.ID.Hex(), err)
	}
	total := decimal.Zero
	if m.Total != "" {
		total, err = decimal.NewFromString(m.Total)
		if err != nil {
			return nil, fmt.Errorf("order %s: bad total %q: %w", m.ID.Hex(), m.Total, err)
		}
	}
	items := make([]domain.LineItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, domain.LineItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return &domain.Order{
		ID:          m.ID.Hex(),
		Items:       items,
		Total:       total,
		State:       state,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		FinalizedAt: m.FinalizedAt,
	}, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := make([]mongoLineItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, mongoLineItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	doc := mongoOrder{
		Items:     items,
		Total:     order.Total.String(),
		State:     string(order.State),
		CreatedBy: order.CreatedBy,
		CreatedAt: order.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *OrderRepository) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return toOrderDomain(&m)
}

func (r *OrderRepository) ListByState(ctx context.Context, state domain.OrderState) ([]*domain.Order, error) {
	return r.list(ctx, bson.M{"state": string(state)})
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *OrderRepository) list(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Order
	for cur.Next(ctx) {
		var m mongoOrder
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		o, err := toOrderDomain(&m)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, cur.Err()
}

// UpdateState performs the conditional transition write. The filter includes
// the expected state, so a concurrent transition makes this match nothing
// instead of overwriting it. The finalization stamp is written in the same
// update as the state flip.
func (r *OrderRepository) UpdateState(ctx context.Context, orderID string, expected, next domain.OrderState, finalizedAt time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return false, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"state": string(next)}
	if !finalizedAt.IsZero() {
		set["finalized_at"] = primitive.NewDateTimeFromTime(finalizedAt)
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "state": string(expected)},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, fmt.Errorf("update order state: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// EnsureIndexes creates the state index backing the active-orders listing.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "state", Value: 1}},
	})
	return err
}
