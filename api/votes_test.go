package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVotes(t *testing.T) {
	app, scores := setupApp(t)
	author := signUpAndIn(t, app, "author")
	topicID, postID := createTopicAndPost(t, app, author)
	postPath := fmt.Sprintf("/topics/%s/posts/%s", topicID, postID)

	t.Run("Empty score", func(t *testing.T) {
		status, data := doRequest(t, app, http.MethodGet, postPath+"/score", "", nil)
		require.Equal(t, http.StatusOK, status)

		var score model.Score
		decode(t, data, &score)
		assert.Equal(t, model.Score{PostID: postID}, score)
	})

	t.Run("Three up and two down", func(t *testing.T) {
		for _, path := range []string{"/up-vote", "/down-vote", "/up-vote", "/down-vote"} {
			status, _ := doRequest(t, app, http.MethodPost, postPath+path, author, nil)
			require.Equal(t, http.StatusCreated, status)
		}

		status, data := doRequest(t, app, http.MethodPost, postPath+"/votes", author, fiber.Map{"value": 1})
		require.Equal(t, http.StatusCreated, status)

		var resp voteResponse
		decode(t, data, &resp)
		assert.Equal(t, 1, resp.Vote.Value)
		assert.Equal(t, "1", resp.Vote.UserID)
		assert.Equal(t, 3, resp.Score.UpVotes)
		assert.Equal(t, 2, resp.Score.DownVotes)
		assert.Equal(t, 1, resp.Score.Points)
	})

	t.Run("Invalid vote value", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, postPath+"/votes", author, fiber.Map{"value": 5})
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		status, data := doRequest(t, app, http.MethodGet, postPath+"/score", "", nil)
		require.Equal(t, http.StatusOK, status)

		var score model.Score
		decode(t, data, &score)
		assert.Equal(t, 1, score.Points)
	})

	t.Run("Anonymous vote", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, postPath+"/up-vote", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Vote is published to subscribers", func(t *testing.T) {
		updates, cancel := scores.Subscribe(postID)
		defer cancel()

		status, _ := doRequest(t, app, http.MethodPost, postPath+"/down-vote", author, nil)
		require.Equal(t, http.StatusCreated, status)

		select {
		case score := <-updates:
			assert.Equal(t, 0, score.Points)
			assert.Equal(t, 3, score.DownVotes)
		case <-time.After(time.Second):
			t.Fatal("score update was not published")
		}
	})

	t.Run("Stream of missing post", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodGet, "/topics/"+topicID+"/posts/999/score/stream", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Zero(t, scores.Subscribers("999"))
	})
}

func TestWriteScoreEvent(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	err := writeScoreEvent(w, json.Marshal, &model.Score{PostID: "7", UpVotes: 2, DownVotes: 1, Points: 1})
	require.NoError(t, err)

	assert.Equal(t,
		"event: score\ndata: {\"postId\":\"7\",\"upVotes\":2,\"downVotes\":1,\"points\":1}\n\n",
		buf.String(),
	)
}
