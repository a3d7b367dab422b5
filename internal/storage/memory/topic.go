package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/topic"
)

type TopicMemoryStorage struct {
	mu     sync.Mutex
	topics map[string]*model.Topic
	nextId int
	posts  topic.PostCascade // может быть nil, тогда посты не трогаем
}

func NewTopicMemoryStorage() *TopicMemoryStorage {
	return &TopicMemoryStorage{
		topics: make(map[string]*model.Topic),
		nextId: 1,
	}
}

// RegisterPosts подключает хранилище постов для каскадного удаления темы
func (s *TopicMemoryStorage) RegisterPosts(posts topic.PostCascade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = posts
}

func (s *TopicMemoryStorage) CreateTopic(ctx context.Context, name, description string) (*model.Topic, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create topic: %w", err)
	}

	err = topic.Validate(name, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextId)
	s.nextId++

	t := &model.Topic{
		ID:          id,
		Name:        name,
		Description: description,
		AuthorID:    userID,
	}
	s.topics[id] = t

	return copyTopic(t), nil
}

func (s *TopicMemoryStorage) GetTopicById(id string) (*model.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.topics[id]
	if !exists {
		return nil, fmt.Errorf("topic %s: %w", id, storage.ErrNotFound)
	}

	return copyTopic(t), nil
}

func (s *TopicMemoryStorage) GetAllTopics() ([]*model.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topics := make([]*model.Topic, 0, len(s.topics))
	for _, t := range s.topics {
		topics = append(topics, copyTopic(t))
	}
	sort.Slice(topics, func(i, j int) bool {
		return lessID(topics[i].ID, topics[j].ID)
	})

	return topics, nil
}

func (s *TopicMemoryStorage) UpdateTopic(ctx context.Context, id, name, description string) (*model.Topic, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update topic: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.topics[id]
	if !exists {
		return nil, fmt.Errorf("topic %s: %w", id, storage.ErrNotFound)
	}
	if t.AuthorID != userID {
		return nil, fmt.Errorf("not the author of topic %s: %w", id, auth.ErrForbidden)
	}

	// пустые поля не меняются
	if name == "" {
		name = t.Name
	}
	if description == "" {
		description = t.Description
	}
	err = topic.Validate(name, userID)
	if err != nil {
		return nil, err
	}

	t.Name = name
	t.Description = description

	return copyTopic(t), nil
}

func (s *TopicMemoryStorage) DeleteTopicById(ctx context.Context, id string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete topic: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.topics[id]
	if !exists {
		return fmt.Errorf("topic %s: %w", id, storage.ErrNotFound)
	}
	if t.AuthorID != userID {
		return fmt.Errorf("not the author of topic %s: %w", id, auth.ErrForbidden)
	}

	// хранилище постов не берет блокировку тем, пока держит свою
	if s.posts != nil {
		err = s.posts.DeletePostsByTopic(id)
		if err != nil {
			return fmt.Errorf("could not delete posts of topic %s: %w", id, err)
		}
	}

	delete(s.topics, id)
	return nil
}

func copyTopic(t *model.Topic) *model.Topic {
	c := *t
	c.Posts = nil
	return &c
}
