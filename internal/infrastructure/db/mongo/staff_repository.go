package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

const staffCollection = "staff_profiles"

// StaffRepository stores staff profiles in the operational database, keyed by
// the credential-store identity id. Money fields are stored as strings since
// the driver has no decimal codec.
type StaffRepository struct {
	coll *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{coll: db.Collection(staffCollection)}
}

type mongoStaffProfile struct {
	IdentityID string `bson:"_id"`
	Name       string `bson:"name"`
	Role       string `bson:"role"`
	Position   string `bson:"position"`
	Salary     string `bson:"salary"`
	Email      string `bson:"email"`
}

func toStaffDomain(m *mongoStaffProfile) (*domain.StaffProfile, error) {
	role, err := domain.ParseRole(m.Role)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", m.IdentityID, err)
	}
	salary := decimal.Zero
	if m.Salary != "" {
		salary, err = decimal.NewFromString(m.Salary)
		if err != nil {
			return nil, fmt.Errorf("profile %s: bad salary %q: %w", m.IdentityID, m.Salary, err)
		}
	}
	return &domain.StaffProfile{
		IdentityID: m.IdentityID,
		Name:       m.Name,
		Role:       role,
		Position:   m.Position,
		Salary:     salary,
		Email:      m.Email,
	}, nil
}

func (r *StaffRepository) Create(ctx context.Context, profile *domain.StaffProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoStaffProfile{
		IdentityID: profile.IdentityID,
		Name:       profile.Name,
		Role:       string(profile.Role),
		Position:   profile.Position,
		Salary:     profile.Salary.String(),
		Email:      profile.Email,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *StaffRepository) Get(ctx context.Context, identityID string) (*domain.StaffProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoStaffProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": identityID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return toStaffDomain(&m)
}

// Update merges only the fields present in the update into the document.
func (r *StaffRepository) Update(ctx context.Context, identityID string, fields ports.StaffUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if fields.Position != nil {
		set["position"] = *fields.Position
	}
	if fields.Salary != nil {
		set["salary"] = fields.Salary.String()
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": identityID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, identityID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": identityID})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

func (r *StaffRepository) List(ctx context.Context) ([]*domain.StaffProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.StaffProfile
	for cur.Next(ctx) {
		var m mongoStaffProfile
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		p, err := toStaffDomain(&m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
