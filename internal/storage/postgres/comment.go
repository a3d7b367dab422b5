package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/comment"
	"github.com/VitaminP8/bloccit/models"
)

type CommentPostgresStorage struct{}

func NewCommentPostgresStorage() *CommentPostgresStorage {
	return &CommentPostgresStorage{}
}

func toComment(c *models.Comment) *model.Comment {
	return &model.Comment{
		ID:        fmt.Sprint(c.ID),
		PostID:    fmt.Sprint(c.PostID),
		AuthorID:  fmt.Sprint(c.UserID),
		Body:      c.Body,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *CommentPostgresStorage) CreateComment(ctx context.Context, postID, body string) (*model.Comment, error) {
	err := comment.Validate(body)
	if err != nil {
		return nil, err
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	uid, err := parseID("user", userID)
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
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

	c := &models.Comment{
		Body:   body,
		PostID: pid,
		UserID: uid,
	}

	err = DB.Create(c).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return toComment(c), nil
}

func (s *CommentPostgresStorage) GetComments(postID string, limit, offset int) (*model.CommentConnection, error) {
	limit, offset = comment.NormalizePage(limit, offset)

	pid, err := parseID("post", postID)
	if err != nil {
		return nil, err
	}

	var p models.Post
	err = DB.First(&p, pid).Error
	if err != nil {
		return nil, notFound("post", postID, err)
	}

	// берем на один больше, чтобы понять есть ли следующая страница
	var comments []models.Comment
	err = DB.Where("post_id = ?", pid).
		Order("id asc").
		Limit(limit + 1).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	hasMore := len(comments) > limit
	if hasMore {
		comments = comments[:limit]
	}

	items := make([]*model.Comment, 0, len(comments))
	for i := range comments {
		items = append(items, toComment(&comments[i]))
	}

	return &model.CommentConnection{
		Items:      items,
		HasMore:    hasMore,
		NextOffset: offset + len(items),
	}, nil
}

func (s *CommentPostgresStorage) DeleteCommentsByPost(postID string) error {
	pid, err := parseID("post", postID)
	if err != nil {
		return nil
	}

	err = DB.Unscoped().Where("post_id = ?", pid).Delete(&models.Comment{}).Error
	if err != nil {
		return fmt.Errorf("could not delete comments: %w", err)
	}

	return nil
}
