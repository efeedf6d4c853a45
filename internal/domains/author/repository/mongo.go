package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf-graphql/internal/domains/author/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const authorsCollection = "authors"

// authorDocument is the BSON shape of an author. Identifiers are stored as strings.
type authorDocument struct {
	ID        string    `bson:"_id"`
	FirstName string    `bson:"firstName"`
	LastName  string    `bson:"lastName"`
	Email     string    `bson:"email"`
	Age       int       `bson:"age"`
	Books     []string  `bson:"books"`
	IsDeleted bool      `bson:"isDeleted"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toAuthorDocument(a *model.Author) authorDocument {
	books := make([]string, len(a.Books))
	for i, id := range a.Books {
		books[i] = id.String()
	}
	return authorDocument{
		ID:        a.ID.String(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Age:       a.Age,
		Books:     books,
		IsDeleted: a.IsDeleted,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (d authorDocument) toModel() (*model.Author, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id %q: %w", d.ID, err)
	}
	books := make([]uuid.UUID, 0, len(d.Books))
	for _, raw := range d.Books {
		bookID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid book reference %q on author %s: %w", raw, d.ID, err)
		}
		books = append(books, bookID)
	}
	return &model.Author{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Age:       d.Age,
		Books:     books,
		IsDeleted: d.IsDeleted,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

type mongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoRepository(db *mongo.Database) RepositoryInterface {
	return &mongoRepository{
		coll: db.Collection(authorsCollection),
		now:  time.Now,
	}
}

func (r *mongoRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := a.Clone()
	created.ID = uuid.New()
	if created.Books == nil {
		created.Books = []uuid.UUID{}
	}
	// Mongo stores milliseconds; truncate so the returned record matches what is read back.
	now := r.now().UTC().Truncate(time.Millisecond)
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toAuthorDocument(&created)); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var doc authorDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return doc.toModel()
}

func (r *mongoRepository) Find(ctx context.Context, filter model.AuthorFilter) ([]*model.Author, error) {
	query := bson.M{}
	if filter.IsDeleted != nil {
		query["isDeleted"] = *filter.IsDeleted
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	var docs []authorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode authors: %w", err)
	}

	authors := make([]*model.Author, 0, len(docs))
	for _, doc := range docs {
		a, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, nil
}

func (r *mongoRepository) Update(ctx context.Context, id uuid.UUID, patch model.AuthorPatch) (*model.Author, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if patch.FirstName != nil {
		set["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["lastName"] = *patch.LastName
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}
	if patch.Books != nil {
		books := make([]string, len(*patch.Books))
		for i, bookID := range *patch.Books {
			books[i] = bookID.String()
		}
		set["books"] = books
	}
	if patch.IsDeleted != nil {
		set["isDeleted"] = *patch.IsDeleted
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc authorDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return doc.toModel()
}
