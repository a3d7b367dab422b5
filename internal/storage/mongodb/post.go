package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/post"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	TopicID   string             `bson:"topic_id"`
	UserID    string             `bson:"user_id"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *postDoc) toModel() *model.Post {
	return &model.Post{
		ID:        d.ID.Hex(),
		TopicID:   d.TopicID,
		AuthorID:  d.UserID,
		Title:     d.Title,
		Body:      d.Body,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type PostMongoStorage struct {
	db *Database
}

func NewPostMongoStorage(db *Database) *PostMongoStorage {
	return &PostMongoStorage{db: db}
}

func (s *PostMongoStorage) CreatePost(ctx context.Context, topicID, title, body string) (*model.Post, error) {
	// без пользователя пост не пройдет валидацию по полю user
	userID, _ := auth.GetUserIDFromContext(ctx)

	err := post.Validate(title, body, userID, topicID)
	if err != nil {
		return nil, err
	}

	_, err = s.db.exists(ctx, topicsCollection, "topic", topicID)
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	doc := &postDoc{
		ID:        primitive.NewObjectID(),
		TopicID:   topicID,
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.C(postsCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return doc.toModel(), nil
}

func (s *PostMongoStorage) findPost(ctx context.Context, id string) (*postDoc, error) {
	oid, err := parseID("post", id)
	if err != nil {
		return nil, err
	}

	var doc postDoc
	err = s.db.C(postsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return nil, notFound("post", id, err)
	}

	return &doc, nil
}

func (s *PostMongoStorage) GetPostById(id string) (*model.Post, error) {
	doc, err := s.findPost(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *PostMongoStorage) GetPostsByTopic(topicID string) ([]*model.Post, error) {
	ctx := context.Background()

	csr, err := s.db.C(postsCollection).Find(ctx, bson.M{"topic_id": topicID}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	var docs []postDoc
	err = csr.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("could not decode posts: %w", err)
	}

	results := make([]*model.Post, 0, len(docs))
	for i := range docs {
		results = append(results, docs[i].toModel())
	}

	return results, nil
}

// loadOwnPost находит пост и проверяет, что текущий пользователь его автор
func (s *PostMongoStorage) loadOwnPost(ctx context.Context, id string) (*postDoc, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.UserID != userID {
		return nil, fmt.Errorf("not the author of post %s: %w", id, auth.ErrForbidden)
	}

	return doc, nil
}

func (s *PostMongoStorage) UpdatePost(ctx context.Context, id, title, body string) (*model.Post, error) {
	doc, err := s.loadOwnPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	// пустые поля не меняются
	if title != "" {
		doc.Title = title
	}
	if body != "" {
		doc.Body = body
	}

	err = post.Validate(doc.Title, doc.Body, doc.UserID, doc.TopicID)
	if err != nil {
		return nil, err
	}

	_, err = s.db.C(postsCollection).UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": bson.M{
		"title": doc.Title,
		"body":  doc.Body,
	}})
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return doc.toModel(), nil
}

func (s *PostMongoStorage) DeletePostById(ctx context.Context, id string) error {
	doc, err := s.loadOwnPost(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return deletePosts(ctx, s.db, []primitive.ObjectID{doc.ID})
}

func (s *PostMongoStorage) DeletePostsByTopic(topicID string) error {
	return deleteTopicPosts(context.Background(), s.db, topicID)
}

func deleteTopicPosts(ctx context.Context, db *Database, topicID string) error {
	csr, err := db.C(postsCollection).Find(ctx, bson.M{"topic_id": topicID})
	if err != nil {
		return fmt.Errorf("could not get posts of topic %s: %w", topicID, err)
	}

	var docs []postDoc
	err = csr.All(ctx, &docs)
	if err != nil {
		return fmt.Errorf("could not decode posts: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	return deletePosts(ctx, db, ids)
}

// deletePosts удаляет голоса, комментарии и избранное постов, затем сами посты
func deletePosts(ctx context.Context, db *Database, ids []primitive.ObjectID) error {
	hexIDs := make(bson.A, 0, len(ids))
	for _, id := range ids {
		hexIDs = append(hexIDs, id.Hex())
	}

	for _, name := range []string{votesCollection, commentsCollection, favoritesCollection} {
		_, err := db.C(name).DeleteMany(ctx, bson.M{"post_id": bson.M{"$in": hexIDs}})
		if err != nil {
			return fmt.Errorf("could not delete %s of posts: %w", name, err)
		}
	}

	_, err := db.C(postsCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("could not delete posts: %w", err)
	}

	return nil
}
