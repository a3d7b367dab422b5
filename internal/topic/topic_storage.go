package topic

import (
	"context"

	"github.com/VitaminP8/bloccit/api/model"
)

type TopicStorage interface {
	CreateTopic(ctx context.Context, name, description string) (*model.Topic, error)
	GetTopicById(id string) (*model.Topic, error)
	GetAllTopics() ([]*model.Topic, error)
	UpdateTopic(ctx context.Context, id, name, description string) (*model.Topic, error)
	// DeleteTopicById удаляет тему вместе с ее постами (и их голосами, комментариями, избранным)
	DeleteTopicById(ctx context.Context, id string) error
}

// PostCascade удаляет все посты темы; реализуется хранилищем постов
type PostCascade interface {
	DeletePostsByTopic(topicID string) error
}
