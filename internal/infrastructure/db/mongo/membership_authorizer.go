package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

const collectionMemberships = "office_memberships"

// MembershipAuthorizer answers role questions from the office_memberships
// collection. The lifecycle engine only reads through this type; membership
// administration is a separate concern with its own write path.
type MembershipAuthorizer struct {
	memberships *mongo.Collection
	users       *mongo.Collection
	timeout     time.Duration
}

func NewMembershipAuthorizer(db *mongo.Database) *MembershipAuthorizer {
	return &MembershipAuthorizer{
		memberships: db.Collection(collectionMemberships),
		users:       db.Collection(collectionUsers),
		timeout:     defaultTimeout,
	}
}

// HasRole reports whether the user holds any of the given roles at the
// office. Admins pass every role check.
func (a *MembershipAuthorizer) HasRole(ctx context.Context, userID, officeID string, roles ...string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	admin, err := a.isAdmin(ctx, userID)
	if err != nil {
		return false, err
	}
	if admin {
		return true, nil
	}

	if len(roles) == 0 {
		return false, nil
	}

	n, err := a.memberships.CountDocuments(ctx, bson.M{
		"user_id":   userID,
		"office_id": officeID,
		"role":      bson.M{"$in": roles},
	})
	if err != nil {
		return false, fmt.Errorf("membership lookup: %w", err)
	}
	return n > 0, nil
}

// HasPermission reports whether the user holds a global permission. Only
// admins carry global permissions in this deployment; unknown permission
// names are denied for everyone.
func (a *MembershipAuthorizer) HasPermission(ctx context.Context, userID, permission string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	switch permission {
	case ports.PermissionReadAllOffices:
		return a.isAdmin(ctx, userID)
	default:
		return false, nil
	}
}

func (a *MembershipAuthorizer) isAdmin(ctx context.Context, userID string) (bool, error) {
	var doc struct {
		Role string `bson:"role"`
	}
	err := a.users.FindOne(ctx, bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{"role": 1})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("user lookup: %w", err)
	}
	return doc.Role == domain.RoleAdmin, nil
}

// Grant inserts a membership row; exposed through the admin membership
// endpoint, never called by the lifecycle engine.
func (a *MembershipAuthorizer) Grant(ctx context.Context, m domain.OfficeMembership) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if !domain.ValidRole(m.Role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, m.Role)
	}

	_, err := a.memberships.UpdateOne(ctx,
		bson.M{"user_id": m.UserID, "office_id": m.OfficeID, "role": m.Role},
		bson.M{"$setOnInsert": m},
		options.Update().SetUpsert(true),
	)
	return err
}

// EnsureIndexes creates the membership lookup index.
func (a *MembershipAuthorizer) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := a.memberships.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "office_id", Value: 1},
			{Key: "role", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
