package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/topic"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type topicDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	UserID      string             `bson:"user_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *topicDoc) toModel() *model.Topic {
	return &model.Topic{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		AuthorID:    d.UserID,
	}
}

type TopicMongoStorage struct {
	db *Database
}

func NewTopicMongoStorage(db *Database) *TopicMongoStorage {
	return &TopicMongoStorage{db: db}
}

func (s *TopicMongoStorage) CreateTopic(ctx context.Context, name, description string) (*model.Topic, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create topic: %w", err)
	}

	err = topic.Validate(name, userID)
	if err != nil {
		return nil, err
	}

	doc := &topicDoc{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}

	_, err = s.db.C(topicsCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("could not create topic: %w", err)
	}

	return doc.toModel(), nil
}

func (s *TopicMongoStorage) findTopic(ctx context.Context, id string) (*topicDoc, error) {
	oid, err := parseID("topic", id)
	if err != nil {
		return nil, err
	}

	var doc topicDoc
	err = s.db.C(topicsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return nil, notFound("topic", id, err)
	}

	return &doc, nil
}

func (s *TopicMongoStorage) GetTopicById(id string) (*model.Topic, error) {
	doc, err := s.findTopic(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *TopicMongoStorage) GetAllTopics() ([]*model.Topic, error) {
	ctx := context.Background()

	csr, err := s.db.C(topicsCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("could not get topics: %w", err)
	}

	var docs []topicDoc
	err = csr.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("could not decode topics: %w", err)
	}

	results := make([]*model.Topic, 0, len(docs))
	for i := range docs {
		results = append(results, docs[i].toModel())
	}

	return results, nil
}

// loadOwnTopic находит тему и проверяет, что текущий пользователь ее автор
func (s *TopicMongoStorage) loadOwnTopic(ctx context.Context, id string) (*topicDoc, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.findTopic(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.UserID != userID {
		return nil, fmt.Errorf("not the author of topic %s: %w", id, auth.ErrForbidden)
	}

	return doc, nil
}

func (s *TopicMongoStorage) UpdateTopic(ctx context.Context, id, name, description string) (*model.Topic, error) {
	doc, err := s.loadOwnTopic(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not update topic: %w", err)
	}

	// пустые поля не меняются
	if name != "" {
		doc.Name = name
	}
	if description != "" {
		doc.Description = description
	}

	err = topic.Validate(doc.Name, doc.UserID)
	if err != nil {
		return nil, err
	}

	_, err = s.db.C(topicsCollection).UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": bson.M{
		"name":        doc.Name,
		"description": doc.Description,
	}})
	if err != nil {
		return nil, fmt.Errorf("could not update topic: %w", err)
	}

	return doc.toModel(), nil
}

func (s *TopicMongoStorage) DeleteTopicById(ctx context.Context, id string) error {
	doc, err := s.loadOwnTopic(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete topic: %w", err)
	}

	// без транзакции: сначала посты с зависимыми записями, потом сама тема
	err = deleteTopicPosts(ctx, s.db, doc.ID.Hex())
	if err != nil {
		return fmt.Errorf("could not delete topic: %w", err)
	}

	_, err = s.db.C(topicsCollection).DeleteOne(ctx, bson.M{"_id": doc.ID})
	if err != nil {
		return fmt.Errorf("could not delete topic: %w", err)
	}

	return nil
}
