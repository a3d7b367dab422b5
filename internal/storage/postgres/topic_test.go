package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/validation"
	"github.com/VitaminP8/bloccit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicPostgresStorage(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	topics := NewTopicPostgresStorage()
	owner := fmt.Sprint(createTestUser(t, "owner"))
	ctx := createUserContext(owner)

	created, err := topics.CreateTopic(ctx, "Golang", "all about go")
	require.NoError(t, err)
	assert.Equal(t, owner, created.AuthorID)

	t.Run("Create without user", func(t *testing.T) {
		_, err := topics.CreateTopic(context.Background(), "Nobody", "")
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("Create with short name", func(t *testing.T) {
		_, err := topics.CreateTopic(ctx, "go", "")

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
	})

	t.Run("Get topic", func(t *testing.T) {
		got, err := topics.GetTopicById(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Golang", got.Name)

		all, err := topics.GetAllTopics()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Update keeps empty fields", func(t *testing.T) {
		updated, err := topics.UpdateTopic(ctx, created.ID, "Go language", "")
		require.NoError(t, err)
		assert.Equal(t, "Go language", updated.Name)
		assert.Equal(t, "all about go", updated.Description)
	})

	t.Run("Update by other user", func(t *testing.T) {
		_, err := topics.UpdateTopic(createUserContext("999"), created.ID, "Hijacked", "")
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("Delete topic", func(t *testing.T) {
		require.NoError(t, topics.DeleteTopicById(ctx, created.ID))

		_, err := topics.GetTopicById(created.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestTopicPostgresStorage_DeleteCascade(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	store := NewStore()
	userID := createTestUser(t, "author")
	topicID := createTestTopic(t, userID)
	postID := fmt.Sprint(createTestPost(t, userID, topicID))
	ctx := createUserContext(fmt.Sprint(userID))

	_, err := store.Votes.CreateVote(ctx, postID, 1)
	require.NoError(t, err)
	_, err = store.Comments.CreateComment(ctx, postID, "Nice post")
	require.NoError(t, err)

	t.Run("Other user cannot delete topic or its posts", func(t *testing.T) {
		err := store.Topics.DeleteTopicById(createUserContext("999"), fmt.Sprint(topicID))
		assert.ErrorIs(t, err, auth.ErrForbidden)

		_, err = store.Posts.GetPostById(postID)
		assert.NoError(t, err)
	})

	t.Run("Owner deletes topic with posts in one transaction", func(t *testing.T) {
		require.NoError(t, store.Topics.DeleteTopicById(ctx, fmt.Sprint(topicID)))

		_, err := store.Topics.GetTopicById(fmt.Sprint(topicID))
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.Posts.GetPostById(postID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		var votes, posts int
		require.NoError(t, DB.Unscoped().Model(&models.Vote{}).Count(&votes).Error)
		require.NoError(t, DB.Unscoped().Model(&models.Post{}).Count(&posts).Error)
		assert.Zero(t, votes)
		assert.Zero(t, posts)
	})
}
