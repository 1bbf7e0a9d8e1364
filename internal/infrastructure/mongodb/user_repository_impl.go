package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vidserve/backend/internal/domain/entity"
	"github.com/vidserve/backend/internal/domain/repository"
)

// UserRepository implements repository.UserRepository on top of the Store.
type UserRepository struct {
	store      *Store
	collection string
}

func NewUserRepository(store *Store, collection string) *UserRepository {
	return &UserRepository{store: store, collection: collection}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.store.InsertOne(ctx, r.collection, u, Require("registration failed"))
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByMobile(ctx context.Context, mobile string) (*entity.User, error) {
	return r.findUser(ctx, bson.M{"mobile": mobile})
}

func (r *UserRepository) findUser(ctx context.Context, filter bson.M) (*entity.User, error) {
	doc, err := r.store.FindOne(ctx, r.collection, filter, nil, Policy{})
	if err != nil || doc == nil {
		return nil, err
	}
	return &entity.User{
		UserID:    asString(doc["user_id"]),
		FirstName: asString(doc["first_name"]),
		LastName:  asString(doc["last_name"]),
		Email:     asString(doc["email"]),
		Mobile:    asString(doc["mobile"]),
		Password:  asString(doc["password"]),
	}, nil
}

func (r *UserRepository) FindIdentity(ctx context.Context, userID string) (*entity.Identity, error) {
	projection := bson.M{"_id": 0, "user_id": 1, "email": 1}
	doc, err := r.store.FindOne(ctx, r.collection, bson.M{"user_id": userID}, projection, Policy{})
	if err != nil || doc == nil {
		return nil, err
	}
	return &entity.Identity{UserID: asString(doc["user_id"]), Email: asString(doc["email"])}, nil
}

func (r *UserRepository) Profile(ctx context.Context, userID string) (map[string]any, error) {
	projection := bson.M{"_id": 0, "user_id": 0, "password": 0}
	doc, err := r.store.FindOne(ctx, r.collection, bson.M{"user_id": userID}, projection, Require("no user found"))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, userID string, fields map[string]any) (int64, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	matched, _, err := r.store.UpdateOne(ctx, r.collection,
		bson.M{"user_id": userID}, bson.M{"$set": set}, Require("profile update failed"))
	return matched, err
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
