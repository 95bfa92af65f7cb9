package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

const movementCollection = "movements"

// FinanceRepository stores the manual movement ledger. The MOV-<nanos> id
// doubles as the natural sort key.
type FinanceRepository struct {
	coll *mongo.Collection
}

func NewFinanceRepository(db *mongo.Database) *FinanceRepository {
	return &FinanceRepository{coll: db.Collection(movementCollection)}
}

type mongoMovement struct {
	ID          string    `bson:"_id"`
	Kind        string    `bson:"kind"`
	Description string    `bson:"description"`
	Amount      string    `bson:"amount"`
	Timestamp   time.Time `bson:"timestamp"`
}

func (r *FinanceRepository) SaveMovement(ctx context.Context, movement *domain.FinancialMovement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMovement{
		ID:          movement.ID,
		Kind:        string(movement.Kind),
		Description: movement.Description,
		Amount:      movement.SignedAmount.String(),
		Timestamp:   movement.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (r *FinanceRepository) ListMovements(ctx context.Context) ([]*domain.FinancialMovement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.FinancialMovement
	for cur.Next(ctx) {
		var m mongoMovement
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode movement: %w", err)
		}
		kind, err := domain.ParseMovementKind(m.Kind)
		if err != nil {
			return nil, fmt.Errorf("movement %s: %w", m.ID, err)
		}
		amount, err := decimal.NewFromString(m.Amount)
		if err != nil {
			return nil, fmt.Errorf("movement %s: bad amount %q: %w", m.ID, m.Amount, err)
		}
		out = append(out, &domain.FinancialMovement{
			ID:           m.ID,
			Kind:         kind,
			Description:  m.Description,
			SignedAmount: amount,
			Timestamp:    m.Timestamp,
		})
	}
	return out, cur.Err()
}
