package vote

import (
	"context"

	"github.com/VitaminP8/bloccit/api/model"
)

type VoteStorage interface {
	// CreateVote добавляет голос к существующему посту; значение не проверяется
	CreateVote(ctx context.Context, postID string, value int) (*model.Vote, error)
	CountVotes(postID string, value int) (int, error)
	GetVotesByPost(postID string) ([]*model.Vote, error)
	DeleteVotesByPost(postID string) error
}
