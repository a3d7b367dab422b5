package mocks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
)

// MockVoteStorage реализует интерфейс vote.VoteStorage для тестирования
type MockVoteStorage struct {
	mu     sync.Mutex
	posts  map[string]bool
	votes  []*model.Vote
	nextID int

	// Err, если задана, возвращается из всех методов
	Err error
}

// NewMockVoteStorage создает мок, в котором существуют посты с переданными ID
func NewMockVoteStorage(postIDs ...string) *MockVoteStorage {
	posts := make(map[string]bool)
	for _, id := range postIDs {
		posts[id] = true
	}
	return &MockVoteStorage{
		posts:  posts,
		nextID: 1,
	}
}

func (m *MockVoteStorage) CreateVote(ctx context.Context, postID string, value int) (*model.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if !m.posts[postID] {
		return nil, fmt.Errorf("post %s: %w", postID, storage.ErrNotFound)
	}

	userID, _ := auth.GetUserIDFromContext(ctx)
	v := &model.Vote{
		ID:     strconv.Itoa(m.nextID),
		PostID: postID,
		UserID: userID,
		Value:  value,
	}
	m.nextID++
	m.votes = append(m.votes, v)
	return v, nil
}

func (m *MockVoteStorage) CountVotes(postID string, value int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return 0, m.Err
	}

	n := 0
	for _, v := range m.votes {
		if v.PostID == postID && v.Value == value {
			n++
		}
	}
	return n, nil
}

func (m *MockVoteStorage) GetVotesByPost(postID string) ([]*model.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]*model.Vote, 0)
	for _, v := range m.votes {
		if v.PostID == postID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (m *MockVoteStorage) DeleteVotesByPost(postID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	kept := m.votes[:0]
	for _, v := range m.votes {
		if v.PostID != postID {
			kept = append(kept, v)
		}
	}
	m.votes = kept
	return nil
}
