package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf-graphql/internal/domains/user/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID             string    `bson:"_id"`
	FirstName      string    `bson:"firstName"`
	LastName       string    `bson:"lastName"`
	Email          string    `bson:"email"`
	Password       string    `bson:"password"`
	ProfilePicture string    `bson:"profilePicture"`
	Phone          string    `bson:"phone"`
	IsDeleted      bool      `bson:"isDeleted"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

func (d userDocument) toModel() (*model.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", d.ID, err)
	}
	return &model.User{
		ID:             id,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Password:       d.Password,
		ProfilePicture: d.ProfilePicture,
		Phone:          d.Phone,
		IsDeleted:      d.IsDeleted,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) RepositoryInterface {
	return &mongoRepository{coll: db.Collection("users")}
}

func (r *mongoRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	created := *u
	created.ID = uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := userDocument{
		ID:             created.ID.String(),
		FirstName:      created.FirstName,
		LastName:       created.LastName,
		Email:          created.Email,
		Password:       created.Password,
		ProfilePicture: created.ProfilePicture,
		Phone:          created.Phone,
		IsDeleted:      created.IsDeleted,
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return doc.toModel()
}

func (r *mongoRepository) Find(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	query := bson.M{}
	if filter.IsDeleted != nil {
		query["isDeleted"] = *filter.IsDeleted
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]*model.User, 0, len(docs))
	for _, doc := range docs {
		u, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
