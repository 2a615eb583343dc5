package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"socialpod/internal/models"
	"socialpod/internal/observability"
	"socialpod/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userRepository struct {
	coll    *mongo.Collection
	metrics *observability.StoreMetrics
}

func (r *userRepository) observe(ctx context.Context, op string) (context.Context, func()) {
	return repository.Observe(ctx, r.metrics, system, op, r.coll.Name())
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (models.InsertResult, error) {
	ctx, done := r.observe(ctx, "insert")
	defer done()

	oid, err := objectID(user.ID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("user id: %w", err)
	}
	doc := userDoc{
		ID:        oid,
		Email:     user.Email,
		Name:      user.Name,
		Photo:     user.Photo,
		Role:      user.Role,
		Badge:     user.Badge,
		CreatedAt: user.CreatedAt,
	}
	if doc.Role == "" {
		doc.Role = models.RoleUser
	}
	if doc.Badge == "" {
		doc.Badge = models.BadgeNone
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = nowMillis()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, repository.ErrDuplicateKey
		}
		return models.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	*user = doc.model()
	return insertResult(res), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, done := r.observe(ctx, "find_one")
	defer done()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	user := doc.model()
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, search string) ([]models.User, error) {
	filter := bson.D{}
	if search != "" {
		filter = bson.D{{Key: "name", Value: bson.D{
			{Key: "$regex", Value: regexp.QuoteMeta(search)},
			{Key: "$options", Value: "i"},
		}}}
	}
	return r.find(ctx, filter)
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return r.find(ctx, bson.D{{Key: "role", Value: role}})
}

func (r *userRepository) find(ctx context.Context, filter bson.D) ([]models.User, error) {
	ctx, done := r.observe(ctx, "find")
	defer done()

	docs, err := findAll[userDoc](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.model())
	}
	return users, nil
}

func (r *userRepository) SetRole(ctx context.Context, id, role string) (models.UpdateResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	return r.set(ctx, bson.D{{Key: "_id", Value: oid}}, "role", role)
}

func (r *userRepository) SetRoleByEmail(ctx context.Context, email, role string) (models.UpdateResult, error) {
	return r.set(ctx, bson.D{{Key: "email", Value: email}}, "role", role)
}

func (r *userRepository) SetBadge(ctx context.Context, email, badge string) (models.UpdateResult, error) {
	return r.set(ctx, bson.D{{Key: "email", Value: email}}, "badge", badge)
}

func (r *userRepository) set(ctx context.Context, filter bson.D, field string, value any) (models.UpdateResult, error) {
	ctx, done := r.observe(ctx, "update_one")
	defer done()

	res, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update user %s: %w", field, err)
	}
	return updateResult(res), nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	ctx, done := r.observe(ctx, "count")
	defer done()

	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
