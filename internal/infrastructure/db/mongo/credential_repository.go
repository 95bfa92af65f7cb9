package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

const identityCollection = "identities"

// CredentialRepository stores login identities in a dedicated database,
// separate from the operational one. The two databases do not share a
// transaction; the provisioning saga owns cross-store consistency.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(identityCollection)}
}

type mongoIdentity struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	DisplayName  string `bson:"display_name"`
	CreatedAt    int64  `bson:"created_at"`
}

func (r *CredentialRepository) CreateIdentity(ctx context.Context, identity *domain.Identity) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoIdentity{
		ID:           uuid.NewString(),
		Email:        identity.Email,
		PasswordHash: identity.PasswordHash,
		Role:         string(identity.Role),
		DisplayName:  identity.DisplayName,
		CreatedAt:    time.Now().Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("insert identity: %w", err)
	}
	return doc.ID, nil
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoIdentity
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}

	role, err := domain.ParseRole(mi.Role)
	if err != nil {
		return nil, fmt.Errorf("identity %s: %w", mi.ID, err)
	}
	return &domain.Identity{
		ID:           mi.ID,
		Email:        mi.Email,
		PasswordHash: mi.PasswordHash,
		Role:         role,
		DisplayName:  mi.DisplayName,
	}, nil
}

// DeleteIdentity removes an identity. Deleting an id that is already gone is
// not an error, so the provisioning compensation can retry safely.
func (r *CredentialRepository) DeleteIdentity(ctx context.Context, identityID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": identityID}); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index the duplicate check relies on.
func (r *CredentialRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
