package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/post"
	"github.com/VitaminP8/bloccit/models"
	"github.com/jinzhu/gorm"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

func toPost(p *models.Post) *model.Post {
	return &model.Post{
		ID:        fmt.Sprint(p.ID),
		TopicID:   fmt.Sprint(p.TopicID),
		AuthorID:  fmt.Sprint(p.UserID),
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *PostPostgresStorage) CreatePost(ctx context.Context, topicID, title, body string) (*model.Post, error) {
	// без пользователя пост не пройдет валидацию по полю user
	userID, _ := auth.GetUserIDFromContext(ctx)

	err := post.Validate(title, body, userID, topicID)
	if err != nil {
		return nil, err
	}

	uid, err := parseID("user", userID)
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}
	tid, err := parseID("topic", topicID)
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	var t models.Topic
	err = DB.First(&t, tid).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", notFound("topic", topicID, err))
	}

	p := &models.Post{
		Title:   title,
		Body:    body,
		UserID:  uid,
		TopicID: tid,
	}

	err = DB.Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return toPost(p), nil
}

func (s *PostPostgresStorage) GetPostById(id string) (*model.Post, error) {
	pid, err := parseID("post", id)
	if err != nil {
		return nil, err
	}

	var p models.Post
	err = DB.First(&p, pid).Error
	if err != nil {
		return nil, notFound("post", id, err)
	}

	return toPost(&p), nil
}

func (s *PostPostgresStorage) GetPostsByTopic(topicID string) ([]*model.Post, error) {
	tid, err := parseID("topic", topicID)
	if err != nil {
		return []*model.Post{}, nil
	}

	var posts []models.Post
	err = DB.Where("topic_id = ?", tid).Order("id asc").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	results := make([]*model.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toPost(&posts[i]))
	}

	return results, nil
}

// loadOwnPost находит пост и проверяет, что текущий пользователь его автор
func loadOwnPost(ctx context.Context, id string) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	pid, err := parseID("post", id)
	if err != nil {
		return nil, err
	}

	var p models.Post
	err = DB.First(&p, pid).Error
	if err != nil {
		return nil, notFound("post", id, err)
	}

	if fmt.Sprint(p.UserID) != userID {
		return nil, fmt.Errorf("not the author of post %s: %w", id, auth.ErrForbidden)
	}

	return &p, nil
}

func (s *PostPostgresStorage) UpdatePost(ctx context.Context, id, title, body string) (*model.Post, error) {
	p, err := loadOwnPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	// пустые поля не меняются
	if title == "" {
		title = p.Title
	}
	if body == "" {
		body = p.Body
	}

	err = post.Validate(title, body, fmt.Sprint(p.UserID), fmt.Sprint(p.TopicID))
	if err != nil {
		return nil, err
	}

	err = DB.Model(p).Updates(map[string]interface{}{
		"title": title,
		"body":  body,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return toPost(p), nil
}

func (s *PostPostgresStorage) DeletePostById(ctx context.Context, id string) error {
	p, err := loadOwnPost(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return inTransaction(func(tx *gorm.DB) error {
		return deletePost(tx, p.ID)
	})
}

func (s *PostPostgresStorage) DeletePostsByTopic(topicID string) error {
	tid, err := parseID("topic", topicID)
	if err != nil {
		return err
	}

	return inTransaction(func(tx *gorm.DB) error {
		return deleteTopicPosts(tx, tid)
	})
}

// deleteTopicPosts каскадно удаляет посты темы в рамках tx
func deleteTopicPosts(tx *gorm.DB, topicID uint) error {
	var ids []uint
	err := tx.Model(&models.Post{}).Where("topic_id = ?", topicID).Pluck("id", &ids).Error
	if err != nil {
		return fmt.Errorf("could not get posts of topic %d: %w", topicID, err)
	}

	for _, id := range ids {
		err = deletePost(tx, id)
		if err != nil {
			return err
		}
	}
	return nil
}

// deletePost удаляет голоса, комментарии и избранное поста, затем сам пост
func deletePost(tx *gorm.DB, id uint) error {
	dependents := []interface{}{&models.Vote{}, &models.Comment{}, &models.Favorite{}}
	for _, dep := range dependents {
		err := tx.Unscoped().Where("post_id = ?", id).Delete(dep).Error
		if err != nil {
			return fmt.Errorf("could not delete dependents of post %d: %w", id, err)
		}
	}

	err := tx.Unscoped().Where("id = ?", id).Delete(&models.Post{}).Error
	if err != nil {
		return fmt.Errorf("could not delete post %d: %w", id, err)
	}

	return nil
}

func inTransaction(fn func(tx *gorm.DB) error) error {
	tx := DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	err := fn(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
