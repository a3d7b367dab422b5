package post

import (
	"context"

	"github.com/VitaminP8/bloccit/api/model"
)

type PostStorage interface {
	CreatePost(ctx context.Context, topicID, title, body string) (*model.Post, error)
	GetPostById(id string) (*model.Post, error)
	GetPostsByTopic(topicID string) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id, title, body string) (*model.Post, error)
	// DeletePostById удаляет пост вместе с голосами, комментариями и избранным
	DeletePostById(ctx context.Context, id string) error
	// DeletePostsByTopic каскадно удаляет все посты темы без проверки авторства
	DeletePostsByTopic(topicID string) error
}

// Dependent: хранилище записей, принадлежащих посту (каскадное удаление)
type Dependent interface {
	DeleteByPost(postID string) error
}

// DependentFunc адаптирует функцию к Dependent
type DependentFunc func(postID string) error

func (f DependentFunc) DeleteByPost(postID string) error {
	return f(postID)
}
