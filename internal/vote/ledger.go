package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/subscription"
)

const (
	Up   = 1
	Down = -1
)

var ErrInvalidVoteValue = errors.New("vote value must be 1 or -1")

// Ledger принимает голоса за пост и считает по ним up_votes, down_votes и points.
// Агрегаты не кэшируются: каждый запрос пересчитывается по текущему набору голосов в хранилище.
type Ledger struct {
	store   VoteStorage
	manager subscription.Manager // может быть nil
}

func NewLedger(store VoteStorage, manager subscription.Manager) *Ledger {
	return &Ledger{
		store:   store,
		manager: manager,
	}
}

func ValidValue(value int) bool {
	return value == Up || value == Down
}

// CastVote добавляет голос value (1 или -1) к посту.
// Ограничения на количество голосов от одного пользователя нет.
func (l *Ledger) CastVote(ctx context.Context, postID string, value int) (*model.Vote, error) {
	if !ValidValue(value) {
		return nil, fmt.Errorf("could not cast vote %d: %w", value, ErrInvalidVoteValue)
	}

	v, err := l.store.CreateVote(ctx, postID, value)
	if err != nil {
		return nil, fmt.Errorf("could not cast vote: %w", err)
	}

	if l.manager != nil {
		score, err := l.Score(postID)
		if err == nil {
			l.manager.Publish(postID, score)
		}
	}

	return v, nil
}

// CreateVote ставит голос "за"
func (l *Ledger) CreateVote(ctx context.Context, postID string) (*model.Vote, error) {
	return l.CastVote(ctx, postID, Up)
}

func (l *Ledger) UpVotes(postID string) (int, error) {
	n, err := l.store.CountVotes(postID, Up)
	if err != nil {
		return 0, fmt.Errorf("could not count up votes: %w", err)
	}
	return n, nil
}

func (l *Ledger) DownVotes(postID string) (int, error) {
	n, err := l.store.CountVotes(postID, Down)
	if err != nil {
		return 0, fmt.Errorf("could not count down votes: %w", err)
	}
	return n, nil
}

func (l *Ledger) Points(postID string) (int, error) {
	score, err := l.Score(postID)
	if err != nil {
		return 0, err
	}
	return score.Points, nil
}

func (l *Ledger) Score(postID string) (*model.Score, error) {
	up, err := l.UpVotes(postID)
	if err != nil {
		return nil, err
	}

	down, err := l.DownVotes(postID)
	if err != nil {
		return nil, err
	}

	return &model.Score{
		PostID:    postID,
		UpVotes:   up,
		DownVotes: down,
		Points:    up - down,
	}, nil
}
