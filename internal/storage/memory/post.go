package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/post"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/topic"
)

type PostMemoryStorage struct {
	mu         sync.RWMutex
	posts      map[string]*model.Post
	nextId     int
	topics     topic.TopicStorage // для проверки существования темы
	dependents []post.Dependent   // голоса, комментарии, избранное
}

func NewPostMemoryStorage(topicStore topic.TopicStorage) *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[string]*model.Post),
		nextId: 1,
		topics: topicStore,
	}
}

// RegisterDependents подключает хранилища, записи которых удаляются вместе с постом
func (s *PostMemoryStorage) RegisterDependents(deps ...post.Dependent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dependents = append(s.dependents, deps...)
}

// withPost выполняет fn, пока пост гарантированно существует.
// Порядок блокировок всегда: пост -> зависимое хранилище.
func (s *PostMemoryStorage) withPost(id string, fn func(p *model.Post) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.posts[id]
	if !exists {
		return fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
	}

	return fn(p)
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, topicID, title, body string) (*model.Post, error) {
	// без пользователя пост не пройдет валидацию по полю user
	userID, _ := auth.GetUserIDFromContext(ctx)

	err := post.Validate(title, body, userID, topicID)
	if err != nil {
		return nil, err
	}

	_, err = s.topics.GetTopicById(topicID)
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextId)
	s.nextId++

	p := &model.Post{
		ID:        id,
		TopicID:   topicID,
		AuthorID:  userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.posts[id] = p

	return copyPost(p), nil
}

func (s *PostMemoryStorage) GetPostById(id string) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
	}

	return copyPost(p), nil
}

func (s *PostMemoryStorage) GetPostsByTopic(topicID string) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, 0)
	for _, p := range s.posts {
		if p.TopicID == topicID {
			posts = append(posts, copyPost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return lessID(posts[i].ID, posts[j].ID)
	})

	return posts, nil
}

func (s *PostMemoryStorage) UpdatePost(ctx context.Context, id, title, body string) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
	}
	if p.AuthorID != userID {
		return nil, fmt.Errorf("not the author of post %s: %w", id, auth.ErrForbidden)
	}

	// пустые поля не меняются
	if title == "" {
		title = p.Title
	}
	if body == "" {
		body = p.Body
	}

	err = post.Validate(title, body, p.AuthorID, p.TopicID)
	if err != nil {
		return nil, err
	}

	p.Title = title
	p.Body = body

	return copyPost(p), nil
}

func (s *PostMemoryStorage) DeletePostById(ctx context.Context, id string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
	}
	if p.AuthorID != userID {
		return fmt.Errorf("not the author of post %s: %w", id, auth.ErrForbidden)
	}

	return s.deleteLocked(id)
}

func (s *PostMemoryStorage) DeletePostsByTopic(topicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.posts {
		if p.TopicID != topicID {
			continue
		}
		err := s.deleteLocked(id)
		if err != nil {
			return err
		}
	}

	return nil
}

// deleteLocked удаляет зависимые записи, затем сам пост. Вызывается под s.mu.
func (s *PostMemoryStorage) deleteLocked(id string) error {
	for _, dep := range s.dependents {
		err := dep.DeleteByPost(id)
		if err != nil {
			return fmt.Errorf("could not delete dependents of post %s: %w", id, err)
		}
	}

	delete(s.posts, id)
	return nil
}

func copyPost(p *model.Post) *model.Post {
	c := *p
	return &c
}
