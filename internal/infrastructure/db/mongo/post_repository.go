package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mernapp/mern-api/internal/core/domain"
)

type postDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    primitive.ObjectID `bson:"author"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type authorDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

// postViewDocument is the shape produced by the List aggregation: the author
// id replaced by the looked-up user, or absent when it no longer exists.
type postViewDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    *authorDocument    `bson:"author"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *postViewDocument) toDomain() *domain.PostView {
	v := &domain.PostView{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
	if d.Author != nil {
		v.Author = &domain.AuthorSummary{
			ID:    d.Author.ID.Hex(),
			Name:  d.Author.Name,
			Email: d.Author.Email,
		}
	}
	return v
}

func newPostDocument(p *domain.Post) (postDocument, error) {
	author, err := parseID(p.AuthorID)
	if err != nil {
		return postDocument{}, err
	}
	return postDocument{
		Title:     p.Title,
		Content:   p.Content,
		Author:    author,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

// PostRepository implements ports.PostRepository using MongoDB.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

// listPipeline sorts posts newest first and replaces the author id with the
// referenced user document. authorDocument decodes only {_id, name, email}.
var listPipeline = mongo.Pipeline{
	{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: collectionUsers},
		{Key: "localField", Value: "author"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "author"},
	}}},
	{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$author"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}},
}

// List returns all posts ordered by createdAt descending with authors expanded.
func (r *PostRepository) List(ctx context.Context) ([]*domain.PostView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, listPipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate posts: %w", err)
	}

	var docs []postViewDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]*domain.PostView, len(docs))
	for i := range docs {
		posts[i] = docs[i].toDomain()
	}
	return posts, nil
}

// Create inserts a new post document and writes the generated ID back.
func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	doc, err := newPostDocument(p)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

// DeleteAll empties the posts collection.
func (r *PostRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete posts: %w", err)
	}
	return res.DeletedCount, nil
}

// InsertMany inserts posts in order and writes the generated IDs back.
func (r *PostRepository) InsertMany(ctx context.Context, posts []*domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	docs := make([]interface{}, len(posts))
	for i, p := range posts {
		doc, err := newPostDocument(p)
		if err != nil {
			return err
		}
		docs[i] = doc
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert posts: %w", err)
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			posts[i].ID = oid.Hex()
		}
	}
	return nil
}

// EnsureIndexes creates the sort and lookup indexes on the posts collection.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
