package memory

import (
	"context"
	"testing"

	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicMemoryStorage(t *testing.T) {
	topics := NewTopicMemoryStorage()
	ctx := createUserContext("1")

	topic, err := topics.CreateTopic(ctx, "Golang", "All about Go")
	require.NoError(t, err)
	assert.Equal(t, "1", topic.AuthorID)

	t.Run("Create without user", func(t *testing.T) {
		_, err := topics.CreateTopic(context.Background(), "Rust", "")
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("Create with short name", func(t *testing.T) {
		_, err := topics.CreateTopic(ctx, "Go", "")

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
	})

	t.Run("Get and list", func(t *testing.T) {
		got, err := topics.GetTopicById(topic.ID)
		require.NoError(t, err)
		assert.Equal(t, "Golang", got.Name)

		all, err := topics.GetAllTopics()
		require.NoError(t, err)
		assert.Len(t, all, 1)

		_, err = topics.GetTopicById("999")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		updated, err := topics.UpdateTopic(ctx, topic.ID, "", "Everything about Go")
		require.NoError(t, err)
		assert.Equal(t, "Golang", updated.Name)
		assert.Equal(t, "Everything about Go", updated.Description)

		_, err = topics.UpdateTopic(createUserContext("2"), topic.ID, "Hijacked", "")
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("Delete", func(t *testing.T) {
		err := topics.DeleteTopicById(createUserContext("2"), topic.ID)
		assert.ErrorIs(t, err, auth.ErrForbidden)

		require.NoError(t, topics.DeleteTopicById(ctx, topic.ID))

		_, err = topics.GetTopicById(topic.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestTopicMemoryStorage_DeleteCascade(t *testing.T) {
	store, topicID := newTestStore(t)
	ctx := createUserContext("1")

	p, err := store.Posts.CreatePost(ctx, topicID, testTitle, testBody)
	require.NoError(t, err)
	_, err = store.Votes.CreateVote(ctx, p.ID, 1)
	require.NoError(t, err)
	_, err = store.Comments.CreateComment(ctx, p.ID, "Nice post")
	require.NoError(t, err)

	t.Run("Other user cannot delete topic or its posts", func(t *testing.T) {
		err := store.Topics.DeleteTopicById(createUserContext("2"), topicID)
		assert.ErrorIs(t, err, auth.ErrForbidden)

		_, err = store.Posts.GetPostById(p.ID)
		assert.NoError(t, err)
	})

	t.Run("Owner deletes topic with posts and votes", func(t *testing.T) {
		require.NoError(t, store.Topics.DeleteTopicById(ctx, topicID))

		_, err := store.Topics.GetTopicById(topicID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.Posts.GetPostById(p.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		n, err := store.Votes.CountVotes(p.ID, 1)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
