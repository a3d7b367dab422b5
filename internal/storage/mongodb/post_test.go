package mongodb

import (
	"context"
	"testing"

	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPostMongoStorage_CreateAndUpdate(t *testing.T) {
	store := setupTestStore(t)
	topicID, postID := createTestPost(t, store, "author")
	ctx := createUserContext("author")

	t.Run("Get post", func(t *testing.T) {
		post, err := store.Posts.GetPostById(postID)
		require.NoError(t, err)
		assert.Equal(t, topicID, post.TopicID)
		assert.Equal(t, "author", post.AuthorID)
		assert.Equal(t, testTitle, post.Title)
	})

	t.Run("Create invalid post", func(t *testing.T) {
		_, err := store.Posts.CreatePost(context.Background(), "", "Hey", "   ")

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 4)
	})

	t.Run("Create post in not exists topic", func(t *testing.T) {
		_, err := store.Posts.CreatePost(ctx, primitive.NewObjectID().Hex(), testTitle, testBody)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Update body only", func(t *testing.T) {
		post, err := store.Posts.UpdatePost(ctx, postID, "", "A brand new body that is long enough")
		require.NoError(t, err)
		assert.Equal(t, testTitle, post.Title)
		assert.Equal(t, "A brand new body that is long enough", post.Body)
	})

	t.Run("Update by other user", func(t *testing.T) {
		_, err := store.Posts.UpdatePost(createUserContext("intruder"), postID, "Hijacked post", "")
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("Posts by topic", func(t *testing.T) {
		posts, err := store.Posts.GetPostsByTopic(topicID)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, postID, posts[0].ID)
	})
}

func TestPostMongoStorage_DeleteCascade(t *testing.T) {
	store := setupTestStore(t)
	topicID, postID := createTestPost(t, store, "author")
	ctx := createUserContext("author")

	_, otherPostID := createTestPost(t, store, "author")

	for i := 0; i < 3; i++ {
		_, err := store.Votes.CreateVote(ctx, postID, 1)
		require.NoError(t, err)
	}
	_, err := store.Votes.CreateVote(ctx, otherPostID, -1)
	require.NoError(t, err)
	_, err = store.Comments.CreateComment(ctx, postID, "nice post")
	require.NoError(t, err)
	_, err = store.Favorites.CreateFavorite(ctx, postID)
	require.NoError(t, err)

	require.NoError(t, store.Posts.DeletePostById(ctx, postID))

	_, err = store.Posts.GetPostById(postID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	votes, err := store.Votes.GetVotesByPost(postID)
	require.NoError(t, err)
	assert.Empty(t, votes)

	favs, err := store.Favorites.GetFavoritesByPost(postID)
	require.NoError(t, err)
	assert.Empty(t, favs)

	n, err := store.DB.C(commentsCollection).CountDocuments(context.Background(), bson.M{"post_id": postID})
	require.NoError(t, err)
	assert.Zero(t, n)

	// голоса другого поста не тронуты
	votes, err = store.Votes.GetVotesByPost(otherPostID)
	require.NoError(t, err)
	assert.Len(t, votes, 1)

	t.Run("Delete posts by topic", func(t *testing.T) {
		require.NoError(t, store.Posts.DeletePostsByTopic(topicID))

		posts, err := store.Posts.GetPostsByTopic(topicID)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}
