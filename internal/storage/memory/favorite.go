package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
)

type FavoriteMemoryStorage struct {
	mu        sync.Mutex
	favorites map[string][]*model.Favorite // postID -> избранное
	nextID    int
	posts     *PostMemoryStorage
}

func NewFavoriteMemoryStorage(postStore *PostMemoryStorage) *FavoriteMemoryStorage {
	return &FavoriteMemoryStorage{
		favorites: make(map[string][]*model.Favorite),
		nextID:    1,
		posts:     postStore,
	}
}

func (s *FavoriteMemoryStorage) CreateFavorite(ctx context.Context, postID string) (*model.Favorite, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not favorite post: %w", err)
	}

	var created *model.Favorite
	err = s.posts.withPost(postID, func(_ *model.Post) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		for _, f := range s.favorites[postID] {
			if f.UserID == userID {
				return fmt.Errorf("favorite of post %s: %w", postID, storage.ErrAlreadyExists)
			}
		}

		f := &model.Favorite{
			ID:     strconv.Itoa(s.nextID),
			PostID: postID,
			UserID: userID,
		}
		s.nextID++

		s.favorites[postID] = append(s.favorites[postID], f)
		created = f
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := *created
	return &c, nil
}

func (s *FavoriteMemoryStorage) DeleteFavorite(ctx context.Context, postID string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("could not unfavorite post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.favorites[postID]
	for i, f := range favs {
		if f.UserID == userID {
			s.favorites[postID] = append(favs[:i], favs[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("favorite of post %s: %w", postID, storage.ErrNotFound)
}

func (s *FavoriteMemoryStorage) GetFavoritesByPost(postID string) ([]*model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := make([]*model.Favorite, 0, len(s.favorites[postID]))
	for _, f := range s.favorites[postID] {
		c := *f
		favs = append(favs, &c)
	}
	return favs, nil
}

func (s *FavoriteMemoryStorage) DeleteFavoritesByPost(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favorites, postID)
	return nil
}
