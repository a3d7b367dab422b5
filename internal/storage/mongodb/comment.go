package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/comment"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *commentDoc) toModel() *model.Comment {
	return &model.Comment{
		ID:        d.ID.Hex(),
		PostID:    d.PostID,
		AuthorID:  d.UserID,
		Body:      d.Body,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type CommentMongoStorage struct {
	db *Database
}

func NewCommentMongoStorage(db *Database) *CommentMongoStorage {
	return &CommentMongoStorage{db: db}
}

func (s *CommentMongoStorage) CreateComment(ctx context.Context, postID, body string) (*model.Comment, error) {
	err := comment.Validate(body)
	if err != nil {
		return nil, err
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	_, err = s.db.exists(ctx, postsCollection, "post", postID)
	if err != nil {
		return nil, err
	}

	doc := &commentDoc{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.C(commentsCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return doc.toModel(), nil
}

func (s *CommentMongoStorage) GetComments(postID string, limit, offset int) (*model.CommentConnection, error) {
	limit, offset = comment.NormalizePage(limit, offset)
	ctx := context.Background()

	_, err := s.db.exists(ctx, postsCollection, "post", postID)
	if err != nil {
		return nil, err
	}

	// берем на один больше, чтобы понять есть ли следующая страница
	opts := options.Find().
		SetSort(bson.M{"_id": 1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit + 1))

	csr, err := s.db.C(commentsCollection).Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	var docs []commentDoc
	err = csr.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("could not decode comments: %w", err)
	}

	hasMore := len(docs) > limit
	if hasMore {
		docs = docs[:limit]
	}

	items := make([]*model.Comment, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toModel())
	}

	return &model.CommentConnection{
		Items:      items,
		HasMore:    hasMore,
		NextOffset: offset + len(items),
	}, nil
}

func (s *CommentMongoStorage) DeleteCommentsByPost(postID string) error {
	_, err := s.db.C(commentsCollection).DeleteMany(context.Background(), bson.M{"post_id": postID})
	if err != nil {
		return fmt.Errorf("could not delete comments: %w", err)
	}

	return nil
}
