package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
)

type VoteMemoryStorage struct {
	mu     sync.Mutex
	votes  map[string][]*model.Vote // postID -> голоса в порядке добавления
	nextID int
	posts  *PostMemoryStorage
}

func NewVoteMemoryStorage(postStore *PostMemoryStorage) *VoteMemoryStorage {
	return &VoteMemoryStorage{
		votes:  make(map[string][]*model.Vote),
		nextID: 1,
		posts:  postStore,
	}
}

func (s *VoteMemoryStorage) CreateVote(ctx context.Context, postID string, value int) (*model.Vote, error) {
	// голос без пользователя допустим, автор записывается если известен
	userID, _ := auth.GetUserIDFromContext(ctx)

	var created *model.Vote
	err := s.posts.withPost(postID, func(_ *model.Post) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		v := &model.Vote{
			ID:        strconv.Itoa(s.nextID),
			PostID:    postID,
			UserID:    userID,
			Value:     value,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		s.nextID++

		s.votes[postID] = append(s.votes[postID], v)
		created = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := *created
	return &c, nil
}

func (s *VoteMemoryStorage) CountVotes(postID string, value int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, v := range s.votes[postID] {
		if v.Value == value {
			n++
		}
	}
	return n, nil
}

func (s *VoteMemoryStorage) GetVotesByPost(postID string) ([]*model.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	votes := make([]*model.Vote, 0, len(s.votes[postID]))
	for _, v := range s.votes[postID] {
		c := *v
		votes = append(votes, &c)
	}
	return votes, nil
}

func (s *VoteMemoryStorage) DeleteVotesByPost(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.votes, postID)
	return nil
}
