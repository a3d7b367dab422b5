package vote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/mocks"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireScore(t *testing.T, ledger *Ledger, postID string, up, down, points int) {
	t.Helper()

	gotUp, err := ledger.UpVotes(postID)
	require.NoError(t, err)
	gotDown, err := ledger.DownVotes(postID)
	require.NoError(t, err)
	gotPoints, err := ledger.Points(postID)
	require.NoError(t, err)

	assert.Equal(t, up, gotUp, "up votes")
	assert.Equal(t, down, gotDown, "down votes")
	assert.Equal(t, points, gotPoints, "points")
}

func TestLedger_EmptyPost(t *testing.T) {
	ledger := NewLedger(mocks.NewMockVoteStorage("1"), nil)

	requireScore(t, ledger, "1", 0, 0, 0)
}

func TestLedger_VoteMethods(t *testing.T) {
	ledger := NewLedger(mocks.NewMockVoteStorage("1", "2"), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := ledger.CastVote(ctx, "1", Up)
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := ledger.CastVote(ctx, "1", Down)
		require.NoError(t, err)
	}

	t.Run("Counts up votes, down votes and points", func(t *testing.T) {
		requireScore(t, ledger, "1", 3, 2, 1)
	})

	t.Run("Votes of other posts are not counted", func(t *testing.T) {
		requireScore(t, ledger, "2", 0, 0, 0)
	})

	t.Run("Score returns all figures", func(t *testing.T) {
		score, err := ledger.Score("1")
		require.NoError(t, err)
		assert.Equal(t, "1", score.PostID)
		assert.Equal(t, 3, score.UpVotes)
		assert.Equal(t, 2, score.DownVotes)
		assert.Equal(t, 1, score.Points)
	})

	t.Run("Negative points", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := ledger.CastVote(ctx, "2", Down)
			require.NoError(t, err)
		}
		requireScore(t, ledger, "2", 0, 3, -3)
	})
}

func TestLedger_CreateVote(t *testing.T) {
	ledger := NewLedger(mocks.NewMockVoteStorage("1"), nil)
	ctx := context.Background()

	_, err := ledger.CastVote(ctx, "1", Down)
	require.NoError(t, err)
	requireScore(t, ledger, "1", 0, 1, -1)

	v, err := ledger.CreateVote(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, Up, v.Value)

	requireScore(t, ledger, "1", 1, 1, 0)
}

func TestLedger_CastVote(t *testing.T) {
	t.Run("Invalid values are rejected", func(t *testing.T) {
		store := mocks.NewMockVoteStorage("1")
		ledger := NewLedger(store, nil)

		for _, value := range []int{0, 2, -2, 100} {
			_, err := ledger.CastVote(context.Background(), "1", value)
			assert.ErrorIs(t, err, ErrInvalidVoteValue)
		}

		votes, err := store.GetVotesByPost("1")
		require.NoError(t, err)
		assert.Empty(t, votes)
	})

	t.Run("Not existing post", func(t *testing.T) {
		ledger := NewLedger(mocks.NewMockVoteStorage(), nil)

		_, err := ledger.CastVote(context.Background(), "404", Up)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Same user may vote many times", func(t *testing.T) {
		ledger := NewLedger(mocks.NewMockVoteStorage("1"), nil)
		ctx := auth.WithUserID(context.Background(), "7")

		for i := 0; i < 4; i++ {
			v, err := ledger.CreateVote(ctx, "1")
			require.NoError(t, err)
			assert.Equal(t, "7", v.UserID)
		}
		requireScore(t, ledger, "1", 4, 0, 4)
	})

	t.Run("Counts are recomputed after outside mutation", func(t *testing.T) {
		store := mocks.NewMockVoteStorage("1")
		ledger := NewLedger(store, nil)

		_, err := ledger.CreateVote(context.Background(), "1")
		require.NoError(t, err)
		requireScore(t, ledger, "1", 1, 0, 1)

		// голос добавлен в обход ledger
		_, err = store.CreateVote(context.Background(), "1", Down)
		require.NoError(t, err)
		requireScore(t, ledger, "1", 1, 1, 0)

		require.NoError(t, store.DeleteVotesByPost("1"))
		requireScore(t, ledger, "1", 0, 0, 0)
	})

	t.Run("Storage error", func(t *testing.T) {
		store := mocks.NewMockVoteStorage("1")
		store.Err = errors.New("connection refused")
		ledger := NewLedger(store, nil)

		_, err := ledger.CreateVote(context.Background(), "1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")

		_, err = ledger.Points("1")
		assert.Error(t, err)
	})
}

func TestLedger_PublishesScore(t *testing.T) {
	manager := mocks.NewMockSubscriptionManager()
	ledger := NewLedger(mocks.NewMockVoteStorage("1"), manager)
	ctx := context.Background()

	_, err := ledger.CreateVote(ctx, "1")
	require.NoError(t, err)
	_, err = ledger.CastVote(ctx, "1", Down)
	require.NoError(t, err)
	_, err = ledger.CastVote(ctx, "1", 5)
	require.Error(t, err)

	notifications := manager.GetNotificationsForPost("1")
	require.Len(t, notifications, 2)
	assert.Equal(t, 1, notifications[0].Points)
	assert.Equal(t, 0, notifications[1].Points)
	assert.Equal(t, 1, notifications[1].DownVotes)
}

func TestLedger_SlowSubscribersDoNotDelayVotes(t *testing.T) {
	manager := subscription.NewScoreManager()
	ledger := NewLedger(mocks.NewMockVoteStorage("1"), manager)
	ctx := context.Background()

	// подписчики, которые никогда не читают
	var streams []<-chan *model.Score
	for i := 0; i < 3; i++ {
		ch, cancel := manager.Subscribe("1")
		defer cancel()
		streams = append(streams, ch)
	}

	start := time.Now()
	for i := 0; i < 5; i++ {
		_, err := ledger.CreateVote(ctx, "1")
		require.NoError(t, err)
	}
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	for _, ch := range streams {
		score := <-ch
		assert.Equal(t, 5, score.UpVotes)
		assert.Equal(t, 5, score.Points)
	}
}
