package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/comment"
)

type CommentMemoryStorage struct {
	mu       sync.Mutex
	comments map[string][]*model.Comment // postID -> комментарии в порядке создания
	nextID   int
	posts    *PostMemoryStorage // Хранилище постов (внедрение зависимости (DI))
}

func NewCommentMemoryStorage(postStore *PostMemoryStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments: make(map[string][]*model.Comment),
		nextID:   1,
		posts:    postStore,
	}
}

func (s *CommentMemoryStorage) CreateComment(ctx context.Context, postID, body string) (*model.Comment, error) {
	if err := comment.Validate(body); err != nil {
		return nil, err
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	var created *model.Comment
	err = s.posts.withPost(postID, func(_ *model.Post) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		c := &model.Comment{
			ID:        strconv.Itoa(s.nextID),
			PostID:    postID,
			AuthorID:  userID,
			Body:      body,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		s.nextID++

		s.comments[postID] = append(s.comments[postID], c)
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := *created
	return &c, nil
}

func (s *CommentMemoryStorage) GetComments(postID string, limit, offset int) (*model.CommentConnection, error) {
	limit, offset = comment.NormalizePage(limit, offset)

	_, err := s.posts.GetPostById(postID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// комментарии уже лежат в порядке создания
	all := s.comments[postID]

	// Пагинация
	if offset >= len(all) {
		return &model.CommentConnection{
			Items:      []*model.Comment{},
			HasMore:    false,
			NextOffset: offset,
		}, nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	items := make([]*model.Comment, 0, end-offset)
	for _, c := range all[offset:end] {
		cc := *c
		items = append(items, &cc)
	}

	return &model.CommentConnection{
		Items:      items,
		HasMore:    end < len(all),
		NextOffset: end,
	}, nil
}

func (s *CommentMemoryStorage) DeleteCommentsByPost(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.comments, postID)
	return nil
}
