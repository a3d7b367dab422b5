package mongodb

import (
	"context"
	"fmt"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type favoriteDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	PostID string             `bson:"post_id"`
	UserID string             `bson:"user_id"`
}

func (d *favoriteDoc) toModel() *model.Favorite {
	return &model.Favorite{
		ID:     d.ID.Hex(),
		PostID: d.PostID,
		UserID: d.UserID,
	}
}

type FavoriteMongoStorage struct {
	db *Database
}

func NewFavoriteMongoStorage(db *Database) *FavoriteMongoStorage {
	return &FavoriteMongoStorage{db: db}
}

func (s *FavoriteMongoStorage) CreateFavorite(ctx context.Context, postID string) (*model.Favorite, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}

	_, err = s.db.exists(ctx, postsCollection, "post", postID)
	if err != nil {
		return nil, err
	}

	favorites := s.db.C(favoritesCollection)

	n, err := favorites.CountDocuments(ctx, bson.M{"post_id": postID, "user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("favorite of post %s: %w", postID, storage.ErrAlreadyExists)
	}

	doc := &favoriteDoc{
		ID:     primitive.NewObjectID(),
		PostID: postID,
		UserID: userID,
	}

	_, err = favorites.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}

	return doc.toModel(), nil
}

func (s *FavoriteMongoStorage) DeleteFavorite(ctx context.Context, postID string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("could not unfavorite post: %w", err)
	}

	res, err := s.db.C(favoritesCollection).DeleteOne(ctx, bson.M{"post_id": postID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("could not unfavorite post: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("favorite of post %s: %w", postID, storage.ErrNotFound)
	}

	return nil
}

func (s *FavoriteMongoStorage) GetFavoritesByPost(postID string) ([]*model.Favorite, error) {
	ctx := context.Background()

	csr, err := s.db.C(favoritesCollection).Find(ctx, bson.M{"post_id": postID}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("could not get favorites: %w", err)
	}

	var docs []favoriteDoc
	err = csr.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("could not decode favorites: %w", err)
	}

	results := make([]*model.Favorite, 0, len(docs))
	for i := range docs {
		results = append(results, docs[i].toModel())
	}

	return results, nil
}

func (s *FavoriteMongoStorage) DeleteFavoritesByPost(postID string) error {
	_, err := s.db.C(favoritesCollection).DeleteMany(context.Background(), bson.M{"post_id": postID})
	if err != nil {
		return fmt.Errorf("could not delete favorites: %w", err)
	}

	return nil
}
