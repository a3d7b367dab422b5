package api

import (
	"bufio"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/vote"
	"github.com/gofiber/fiber/v2"
)

// heartbeatInterval: период комментариев-пингов в SSE, по ошибке записи
// обнаруживается отключившийся клиент
const heartbeatInterval = 15 * time.Second

type voteRequest struct {
	Value int `json:"value" example:"1"`
}

type voteResponse struct {
	Vote  *model.Vote  `json:"vote"`
	Score *model.Score `json:"score"`
}

// showScore godoc
// @Summary  Score of a post
// @Tags     votes
// @Produce  json
// @Param    topic_id  path      string  true  "topic id"
// @Param    post_id   path      string  true  "post id"
// @Success  200       {object}  model.Score
// @Failure  404       {object}  ErrorResponse
// @Router   /topics/{topic_id}/posts/{post_id}/score [get]
func (h *Handler) showScore(c *fiber.Ctx) error {
	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	score, err := h.ledger.Score(p.ID)
	if err != nil {
		return err
	}
	return c.JSON(score)
}

// castVote godoc
// @Summary   Cast a vote (1 or -1)
// @Tags      votes
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     topic_id  path      string       true  "topic id"
// @Param     post_id   path      string       true  "post id"
// @Param     body      body      voteRequest  true  "vote value"
// @Success   201       {object}  voteResponse
// @Failure   422       {object}  ErrorResponse
// @Router    /topics/{topic_id}/posts/{post_id}/votes [post]
func (h *Handler) castVote(c *fiber.Ctx) error {
	var req voteRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}
	return h.vote(c, req.Value)
}

// upVote godoc
// @Summary   Up-vote a post
// @Tags      votes
// @Produce   json
// @Security  BearerAuth
// @Param     topic_id  path      string  true  "topic id"
// @Param     post_id   path      string  true  "post id"
// @Success   201       {object}  voteResponse
// @Router    /topics/{topic_id}/posts/{post_id}/up-vote [post]
func (h *Handler) upVote(c *fiber.Ctx) error {
	return h.vote(c, vote.Up)
}

// downVote godoc
// @Summary   Down-vote a post
// @Tags      votes
// @Produce   json
// @Security  BearerAuth
// @Param     topic_id  path      string  true  "topic id"
// @Param     post_id   path      string  true  "post id"
// @Success   201       {object}  voteResponse
// @Router    /topics/{topic_id}/posts/{post_id}/down-vote [post]
func (h *Handler) downVote(c *fiber.Ctx) error {
	return h.vote(c, vote.Down)
}

func (h *Handler) vote(c *fiber.Ctx, value int) error {
	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	var v *model.Vote
	if value == vote.Up {
		v, err = h.ledger.CreateVote(c.UserContext(), p.ID)
	} else {
		v, err = h.ledger.CastVote(c.UserContext(), p.ID, value)
	}
	if err != nil {
		return err
	}

	score, err := h.ledger.Score(p.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(voteResponse{Vote: v, Score: score})
}

// streamScore godoc
// @Summary  Stream score updates of a post (server-sent events)
// @Tags     votes
// @Produce  text/event-stream
// @Param    topic_id  path  string  true  "topic id"
// @Param    post_id   path  string  true  "post id"
// @Success  200
// @Router   /topics/{topic_id}/posts/{post_id}/score/stream [get]
func (h *Handler) streamScore(c *fiber.Ctx) error {
	if h.scores == nil {
		return fiber.ErrNotImplemented
	}

	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	// подписываемся до чтения текущего счета, чтобы не потерять голос между ними
	updates, cancel := h.scores.Subscribe(p.ID)

	current, err := h.ledger.Score(p.ID)
	if err != nil {
		cancel()
		return err
	}

	encode := c.App().Config().JSONEncoder

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()

		if writeScoreEvent(w, encode, current) != nil {
			return
		}

		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case score, ok := <-updates:
				if !ok {
					return
				}
				if writeScoreEvent(w, encode, score) != nil {
					return
				}
			case <-ticker.C:
				_, err := w.WriteString(": ping\n\n")
				if err == nil {
					err = w.Flush()
				}
				if err != nil {
					return
				}
			}
		}
	})

	return nil
}

// writeScoreEvent пишет одно SSE-событие score и сбрасывает буфер
func writeScoreEvent(w *bufio.Writer, encode func(interface{}) ([]byte, error), score *model.Score) error {
	data, err := encode(score)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: score\ndata: %s\n\n", data)
	if err != nil {
		return err
	}

	return w.Flush()
}
