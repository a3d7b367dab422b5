package postgres

import (
	"context"
	"fmt"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/models"
)

type FavoritePostgresStorage struct{}

func NewFavoritePostgresStorage() *FavoritePostgresStorage {
	return &FavoritePostgresStorage{}
}

func toFavorite(f *models.Favorite) *model.Favorite {
	return &model.Favorite{
		ID:     fmt.Sprint(f.ID),
		PostID: fmt.Sprint(f.PostID),
		UserID: fmt.Sprint(f.UserID),
	}
}

func (s *FavoritePostgresStorage) CreateFavorite(ctx context.Context, postID string) (*model.Favorite, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}

	uid, err := parseID("user", userID)
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}
	pid, err := parseID("post", postID)
	if err != nil {
		return nil, err
	}

	var p models.Post
	err = DB.First(&p, pid).Error
	if err != nil {
		return nil, notFound("post", postID, err)
	}

	var count int
	err = DB.Model(&models.Favorite{}).Where("post_id = ? AND user_id = ?", pid, uid).Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("favorite of post %s: %w", postID, storage.ErrAlreadyExists)
	}

	f := &models.Favorite{
		PostID: pid,
		UserID: uid,
	}

	err = DB.Create(f).Error
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}

	return toFavorite(f), nil
}

func (s *FavoritePostgresStorage) DeleteFavorite(ctx context.Context, postID string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("could not unfavorite post: %w", err)
	}

	uid, err := parseID("user", userID)
	if err != nil {
		return fmt.Errorf("could not unfavorite post: %w", err)
	}
	pid, err := parseID("post", postID)
	if err != nil {
		return err
	}

	res := DB.Unscoped().Where("post_id = ? AND user_id = ?", pid, uid).Delete(&models.Favorite{})
	if res.Error != nil {
		return fmt.Errorf("could not unfavorite post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite of post %s: %w", postID, storage.ErrNotFound)
	}

	return nil
}

func (s *FavoritePostgresStorage) GetFavoritesByPost(postID string) ([]*model.Favorite, error) {
	pid, err := parseID("post", postID)
	if err != nil {
		return []*model.Favorite{}, nil
	}

	var favs []models.Favorite
	err = DB.Where("post_id = ?", pid).Order("id asc").Find(&favs).Error
	if err != nil {
		return nil, fmt.Errorf("could not get favorites: %w", err)
	}

	results := make([]*model.Favorite, 0, len(favs))
	for i := range favs {
		results = append(results, toFavorite(&favs[i]))
	}

	return results, nil
}

func (s *FavoritePostgresStorage) DeleteFavoritesByPost(postID string) error {
	pid, err := parseID("post", postID)
	if err != nil {
		return nil
	}

	err = DB.Unscoped().Where("post_id = ?", pid).Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("could not delete favorites: %w", err)
	}

	return nil
}
