package postgres

import (
	"context"
	"fmt"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/topic"
	"github.com/VitaminP8/bloccit/models"
	"github.com/jinzhu/gorm"
)

type TopicPostgresStorage struct{}

func NewTopicPostgresStorage() *TopicPostgresStorage {
	return &TopicPostgresStorage{}
}

func toTopic(t *models.Topic) *model.Topic {
	return &model.Topic{
		ID:          fmt.Sprint(t.ID),
		Name:        t.Name,
		Description: t.Description,
		AuthorID:    fmt.Sprint(t.UserID),
	}
}

func (s *TopicPostgresStorage) CreateTopic(ctx context.Context, name, description string) (*model.Topic, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create topic: %w", err)
	}

	err = topic.Validate(name, userID)
	if err != nil {
		return nil, err
	}

	uid, err := parseID("user", userID)
	if err != nil {
		return nil, fmt.Errorf("could not create topic: %w", err)
	}

	t := &models.Topic{
		Name:        name,
		Description: description,
		UserID:      uid,
	}

	err = DB.Create(t).Error
	if err != nil {
		return nil, fmt.Errorf("could not create topic: %w", err)
	}

	return toTopic(t), nil
}

func (s *TopicPostgresStorage) GetTopicById(id string) (*model.Topic, error) {
	tid, err := parseID("topic", id)
	if err != nil {
		return nil, err
	}

	var t models.Topic
	err = DB.First(&t, tid).Error
	if err != nil {
		return nil, notFound("topic", id, err)
	}

	return toTopic(&t), nil
}

func (s *TopicPostgresStorage) GetAllTopics() ([]*model.Topic, error) {
	var topics []models.Topic
	err := DB.Order("id asc").Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("could not get topics: %w", err)
	}

	results := make([]*model.Topic, 0, len(topics))
	for i := range topics {
		results = append(results, toTopic(&topics[i]))
	}

	return results, nil
}

// loadOwnTopic находит тему и проверяет, что текущий пользователь ее автор
func loadOwnTopic(ctx context.Context, id string) (*models.Topic, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tid, err := parseID("topic", id)
	if err != nil {
		return nil, err
	}

	var t models.Topic
	err = DB.First(&t, tid).Error
	if err != nil {
		return nil, notFound("topic", id, err)
	}

	if fmt.Sprint(t.UserID) != userID {
		return nil, fmt.Errorf("not the author of topic %s: %w", id, auth.ErrForbidden)
	}

	return &t, nil
}

func (s *TopicPostgresStorage) UpdateTopic(ctx context.Context, id, name, description string) (*model.Topic, error) {
	t, err := loadOwnTopic(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not update topic: %w", err)
	}

	// пустые поля не меняются
	if name == "" {
		name = t.Name
	}
	if description == "" {
		description = t.Description
	}

	err = topic.Validate(name, fmt.Sprint(t.UserID))
	if err != nil {
		return nil, err
	}

	err = DB.Model(t).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("could not update topic: %w", err)
	}

	return toTopic(t), nil
}

func (s *TopicPostgresStorage) DeleteTopicById(ctx context.Context, id string) error {
	t, err := loadOwnTopic(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete topic: %w", err)
	}

	// посты и тема удаляются одной транзакцией
	return inTransaction(func(tx *gorm.DB) error {
		err := deleteTopicPosts(tx, t.ID)
		if err != nil {
			return err
		}

		err = tx.Unscoped().Delete(t).Error
		if err != nil {
			return fmt.Errorf("could not delete topic: %w", err)
		}
		return nil
	})
}
