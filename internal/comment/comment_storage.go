package comment

import (
	"context"

	"github.com/VitaminP8/bloccit/api/model"
)

type CommentStorage interface {
	CreateComment(ctx context.Context, postID, body string) (*model.Comment, error)
	GetComments(postID string, limit, offset int) (*model.CommentConnection, error)
	DeleteCommentsByPost(postID string) error
}
