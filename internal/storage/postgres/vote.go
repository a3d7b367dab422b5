package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/models"
)

type VotePostgresStorage struct{}

func NewVotePostgresStorage() *VotePostgresStorage {
	return &VotePostgresStorage{}
}

func toVote(v *models.Vote) *model.Vote {
	res := &model.Vote{
		ID:        fmt.Sprint(v.ID),
		PostID:    fmt.Sprint(v.PostID),
		Value:     v.Value,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
	if v.UserID != nil {
		res.UserID = fmt.Sprint(*v.UserID)
	}
	return res
}

func (s *VotePostgresStorage) CreateVote(ctx context.Context, postID string, value int) (*model.Vote, error) {
	pid, err := parseID("post", postID)
	if err != nil {
		return nil, err
	}

	var p models.Post
	err = DB.First(&p, pid).Error
	if err != nil {
		return nil, notFound("post", postID, err)
	}

	v := &models.Vote{
		Value:  value,
		PostID: pid,
	}

	// голос без пользователя допустим
	userID, err := auth.GetUserIDFromContext(ctx)
	if err == nil {
		uid, err := parseID("user", userID)
		if err == nil {
			v.UserID = &uid
		}
	}

	err = DB.Create(v).Error
	if err != nil {
		return nil, fmt.Errorf("could not create vote: %w", err)
	}

	return toVote(v), nil
}

func (s *VotePostgresStorage) CountVotes(postID string, value int) (int, error) {
	pid, err := parseID("post", postID)
	if err != nil {
		return 0, nil
	}

	var n int
	err = DB.Model(&models.Vote{}).Where("post_id = ? AND value = ?", pid, value).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("could not count votes: %w", err)
	}

	return n, nil
}

func (s *VotePostgresStorage) GetVotesByPost(postID string) ([]*model.Vote, error) {
	pid, err := parseID("post", postID)
	if err != nil {
		return []*model.Vote{}, nil
	}

	var votes []models.Vote
	err = DB.Where("post_id = ?", pid).Order("id asc").Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("could not get votes: %w", err)
	}

	results := make([]*model.Vote, 0, len(votes))
	for i := range votes {
		results = append(results, toVote(&votes[i]))
	}

	return results, nil
}

func (s *VotePostgresStorage) DeleteVotesByPost(postID string) error {
	pid, err := parseID("post", postID)
	if err != nil {
		return nil
	}

	err = DB.Unscoped().Where("post_id = ?", pid).Delete(&models.Vote{}).Error
	if err != nil {
		return fmt.Errorf("could not delete votes: %w", err)
	}

	return nil
}
