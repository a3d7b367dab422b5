package api

import (
	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Body string `json:"body" example:"Great post!"`
}

// listComments godoc
// @Summary  List comments of a post
// @Tags     comments
// @Produce  json
// @Param    topic_id  path      string  true   "topic id"
// @Param    post_id   path      string  true   "post id"
// @Param    limit     query     int     false  "page size (default 20, max 100)"
// @Param    offset    query     int     false  "offset"
// @Success  200       {object}  model.CommentConnection
// @Failure  404       {object}  ErrorResponse
// @Router   /topics/{topic_id}/posts/{post_id}/comments [get]
func (h *Handler) listComments(c *fiber.Ctx) error {
	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	page, err := h.comments.GetComments(p.ID, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// createComment godoc
// @Summary   Comment a post
// @Tags      comments
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     topic_id  path      string          true  "topic id"
// @Param     post_id   path      string          true  "post id"
// @Param     body      body      commentRequest  true  "comment"
// @Success   201       {object}  model.Comment
// @Failure   422       {object}  ErrorResponse
// @Router    /topics/{topic_id}/posts/{post_id}/comments [post]
func (h *Handler) createComment(c *fiber.Ctx) error {
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	cm, err := h.comments.CreateComment(c.UserContext(), p.ID, req.Body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(cm)
}
