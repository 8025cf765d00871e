package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// codeNamespaceExists is returned by create when the collection is present.
const codeNamespaceExists = 48

// AdminAccount describes the optional administrative user written by Provision.
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// ProvisionResult reports what Provision changed.
type ProvisionResult struct {
	CreatedCollections []string
	AdminCreated       bool
}

// Provision prepares a fresh database out of band from the API: it creates the
// users and posts collections, every index the service relies on, a sparse
// unique username index, and, when admin is non-nil, an administrative account
// with a bcrypt-hashed password. Running it again is harmless.
func Provision(ctx context.Context, db *mongo.Database, admin *AdminAccount) (*ProvisionResult, error) {
	res := &ProvisionResult{}

	for _, name := range []string{collectionUsers, collectionPosts} {
		created, err := createCollection(ctx, db, name)
		if err != nil {
			return nil, err
		}
		if created {
			res.CreatedCollections = append(res.CreatedCollections, name)
		}
	}

	if err := EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	idxCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	_, err := db.Collection(collectionUsers).Indexes().CreateOne(idxCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		return nil, fmt.Errorf("username index: %w", err)
	}

	if admin != nil {
		created, err := upsertAdmin(ctx, db, *admin)
		if err != nil {
			return nil, err
		}
		res.AdminCreated = created
	}

	return res, nil
}

func createCollection(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := db.CreateCollection(ctx, name)
	if err == nil {
		return true, nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return false, nil
	}
	return false, fmt.Errorf("create collection %s: %w", name, err)
}

// upsertAdmin inserts the admin account unless one with the same username
// already exists. An existing account is never overwritten. The username comes
// from the upsert filter.
func upsertAdmin(ctx context.Context, db *mongo.Database, admin AdminAccount) (bool, error) {
	if admin.Username == "" || admin.Password == "" {
		return false, errors.New("admin account requires username and password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{"$setOnInsert": bson.M{
		"email":     admin.Email,
		"password":  string(hash),
		"role":      "admin",
		"createdAt": now,
		"updatedAt": now,
	}}

	res, err := db.Collection(collectionUsers).UpdateOne(ctx,
		bson.M{"username": admin.Username},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("upsert admin: %w", err)
	}
	return res.UpsertedCount > 0, nil
}
