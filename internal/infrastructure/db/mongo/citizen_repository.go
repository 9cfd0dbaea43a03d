package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
)

const collectionCitizens = "citizens"

// CitizenRepository implements ports.CitizenRepository on MongoDB. Citizens
// are deduplicated by email: repeated appointment creation for the same
// email reuses the existing record.
type CitizenRepository struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewCitizenRepository(db *mongo.Database) *CitizenRepository {
	return &CitizenRepository{col: db.Collection(collectionCitizens), timeout: defaultTimeout}
}

// FindOrCreate returns the citizen with the same email, refreshing name and
// phone when they changed, or inserts c as a new record. Reports whether an
// existing record was reused. Citizens without an email are always inserted
// fresh; there is nothing to match them on reliably.
func (r *CitizenRepository) FindOrCreate(ctx context.Context, c *domain.Citizen) (*domain.Citizen, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(c.Email))
	c.Email = email

	if email == "" {
		if _, err := r.col.InsertOne(ctx, c); err != nil {
			return nil, false, err
		}
		return c, false, nil
	}

	var existing domain.Citizen
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		if existing.Phone != c.Phone || existing.FirstName != c.FirstName || existing.LastName != c.LastName {
			update := bson.M{
				"first_name": c.FirstName,
				"last_name":  c.LastName,
				"phone":      c.Phone,
				"updated_at": time.Now().UTC(),
			}
			if _, err := r.col.UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{"$set": update}); err != nil {
				return nil, false, err
			}
			existing.FirstName = c.FirstName
			existing.LastName = c.LastName
			existing.Phone = c.Phone
		}
		return &existing, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		// Two concurrent creations for the same email: the unique index
		// rejects the second insert, which then reads the winner back.
		if mongo.IsDuplicateKeyError(err) {
			if findErr := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&existing); findErr == nil {
				return &existing, true, nil
			}
		}
		return nil, false, err
	}
	return c, false, nil
}

// FindByID retrieves a citizen by id.
func (r *CitizenRepository) FindByID(ctx context.Context, id string) (*domain.Citizen, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var c domain.Citizen
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCitizenNotFound
		}
		return nil, err
	}
	return &c, nil
}

// EnsureIndexes creates the unique email index backing find-or-create.
// Partial on non-empty email so citizens registered by phone only do not
// collide.
func (r *CitizenRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"email": bson.M{"$gt": ""}}),
	})
	return err
}
