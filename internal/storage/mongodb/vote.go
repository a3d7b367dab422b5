package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type voteDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id,omitempty"`
	Value     int                `bson:"value"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *voteDoc) toModel() *model.Vote {
	return &model.Vote{
		ID:        d.ID.Hex(),
		PostID:    d.PostID,
		UserID:    d.UserID,
		Value:     d.Value,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type VoteMongoStorage struct {
	db *Database
}

func NewVoteMongoStorage(db *Database) *VoteMongoStorage {
	return &VoteMongoStorage{db: db}
}

func (s *VoteMongoStorage) CreateVote(ctx context.Context, postID string, value int) (*model.Vote, error) {
	_, err := s.db.exists(ctx, postsCollection, "post", postID)
	if err != nil {
		return nil, err
	}

	// голос без пользователя допустим
	userID, _ := auth.GetUserIDFromContext(ctx)

	doc := &voteDoc{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.C(votesCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("could not create vote: %w", err)
	}

	return doc.toModel(), nil
}

func (s *VoteMongoStorage) CountVotes(postID string, value int) (int, error) {
	n, err := s.db.C(votesCollection).CountDocuments(context.Background(), bson.M{
		"post_id": postID,
		"value":   value,
	})
	if err != nil {
		return 0, fmt.Errorf("could not count votes: %w", err)
	}

	return int(n), nil
}

func (s *VoteMongoStorage) GetVotesByPost(postID string) ([]*model.Vote, error) {
	ctx := context.Background()

	csr, err := s.db.C(votesCollection).Find(ctx, bson.M{"post_id": postID}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("could not get votes: %w", err)
	}

	var docs []voteDoc
	err = csr.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("could not decode votes: %w", err)
	}

	results := make([]*model.Vote, 0, len(docs))
	for i := range docs {
		results = append(results, docs[i].toModel())
	}

	return results, nil
}

func (s *VoteMongoStorage) DeleteVotesByPost(postID string) error {
	_, err := s.db.C(votesCollection).DeleteMany(context.Background(), bson.M{"post_id": postID})
	if err != nil {
		return fmt.Errorf("could not delete votes: %w", err)
	}

	return nil
}
