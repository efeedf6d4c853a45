package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf-graphql/internal/domains/book/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const booksCollection = "books"

type bookDocument struct {
	ID                string     `bson:"_id"`
	Title             string     `bson:"title"`
	Pages             int        `bson:"pages"`
	Author            string     `bson:"author"`
	YearOfPublication *time.Time `bson:"yearOfPublication,omitempty"`
	IsDeleted         bool       `bson:"isDeleted"`
	CreatedAt         time.Time  `bson:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt"`
}

func toBookDocument(b *model.Book) bookDocument {
	return bookDocument{
		ID:                b.ID.String(),
		Title:             b.Title,
		Pages:             b.Pages,
		Author:            b.AuthorID.String(),
		YearOfPublication: b.YearOfPublication,
		IsDeleted:         b.IsDeleted,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (d bookDocument) toModel() (*model.Book, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid book id %q: %w", d.ID, err)
	}
	authorID, err := uuid.Parse(d.Author)
	if err != nil {
		return nil, fmt.Errorf("invalid author reference %q on book %s: %w", d.Author, d.ID, err)
	}
	return &model.Book{
		ID:                id,
		Title:             d.Title,
		Pages:             d.Pages,
		AuthorID:          authorID,
		YearOfPublication: d.YearOfPublication,
		IsDeleted:         d.IsDeleted,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}, nil
}

type mongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoRepository(db *mongo.Database) RepositoryInterface {
	return &mongoRepository{
		coll: db.Collection(booksCollection),
		now:  time.Now,
	}
}

func (r *mongoRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := b.Clone()
	created.ID = uuid.New()
	now := r.now().UTC().Truncate(time.Millisecond)
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toBookDocument(&created)); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var doc bookDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return doc.toModel()
}

func (r *mongoRepository) Find(ctx context.Context, filter model.BookFilter) ([]*model.Book, error) {
	query := bson.M{}
	if filter.AuthorID != nil {
		query["author"] = filter.AuthorID.String()
	}
	if filter.IsDeleted != nil {
		query["isDeleted"] = *filter.IsDeleted
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}

	var docs []bookDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}

	books := make([]*model.Book, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

func (r *mongoRepository) Update(ctx context.Context, id uuid.UUID, patch model.BookPatch) (*model.Book, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Pages != nil {
		set["pages"] = *patch.Pages
	}
	if patch.AuthorID != nil {
		set["author"] = patch.AuthorID.String()
	}
	if patch.IsDeleted != nil {
		set["isDeleted"] = *patch.IsDeleted
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bookDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return doc.toModel()
}
