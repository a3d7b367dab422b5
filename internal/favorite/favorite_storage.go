package favorite

import (
	"context"

	"github.com/VitaminP8/bloccit/api/model"
)

type FavoriteStorage interface {
	CreateFavorite(ctx context.Context, postID string) (*model.Favorite, error)
	DeleteFavorite(ctx context.Context, postID string) error
	GetFavoritesByPost(postID string) ([]*model.Favorite, error)
	DeleteFavoritesByPost(postID string) error
}
