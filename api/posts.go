package api

import (
	"fmt"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Title string `json:"title" example:"Hello world"`
	Body  string `json:"body" example:"A body that is at least twenty characters long"`
}

// loadPost возвращает пост из пути, если он принадлежит теме из пути
func (h *Handler) loadPost(c *fiber.Ctx) (*model.Post, error) {
	topicID := c.Params("topic_id")
	postID := c.Params("post_id")

	p, err := h.posts.GetPostById(postID)
	if err != nil {
		return nil, err
	}

	if p.TopicID != topicID {
		return nil, fmt.Errorf("post %s in topic %s: %w", postID, topicID, storage.ErrNotFound)
	}

	return p, nil
}

// createPost godoc
// @Summary   Create a post in a topic
// @Tags      posts
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     topic_id  path      string       true  "topic id"
// @Param     body      body      postRequest  true  "post"
// @Success   201       {object}  model.Post
// @Failure   404       {object}  ErrorResponse
// @Failure   422       {object}  ErrorResponse
// @Router    /topics/{topic_id}/posts [post]
func (h *Handler) createPost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	p, err := h.posts.CreatePost(c.UserContext(), c.Params("topic_id"), req.Title, req.Body)
	if err != nil {
		return err
	}

	p.Score = &model.Score{PostID: p.ID}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// showPost godoc
// @Summary  Show a post with its score
// @Tags     posts
// @Produce  json
// @Param    topic_id  path      string  true  "topic id"
// @Param    post_id   path      string  true  "post id"
// @Success  200       {object}  model.Post
// @Failure  404       {object}  ErrorResponse
// @Router   /topics/{topic_id}/posts/{post_id} [get]
func (h *Handler) showPost(c *fiber.Ctx) error {
	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	p.Score, err = h.ledger.Score(p.ID)
	if err != nil {
		return err
	}

	favs, err := h.favorites.GetFavoritesByPost(p.ID)
	if err != nil {
		return err
	}
	p.Favorites = len(favs)

	return c.JSON(p)
}

// updatePost godoc
// @Summary   Update a post
// @Tags      posts
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     topic_id  path      string       true  "topic id"
// @Param     post_id   path      string       true  "post id"
// @Param     body      body      postRequest  true  "fields to change"
// @Success   200       {object}  model.Post
// @Failure   403       {object}  ErrorResponse
// @Failure   422       {object}  ErrorResponse
// @Router    /topics/{topic_id}/posts/{post_id} [patch]
func (h *Handler) updatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	p, err = h.posts.UpdatePost(c.UserContext(), p.ID, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// deletePost godoc
// @Summary   Delete a post with its votes, comments and favorites
// @Tags      posts
// @Security  BearerAuth
// @Param     topic_id  path  string  true  "topic id"
// @Param     post_id   path  string  true  "post id"
// @Success   204
// @Failure   403  {object}  ErrorResponse
// @Router    /topics/{topic_id}/posts/{post_id} [delete]
func (h *Handler) deletePost(c *fiber.Ctx) error {
	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	err = h.posts.DeletePostById(c.UserContext(), p.ID)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
