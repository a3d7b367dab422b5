package api

import (
	"github.com/gofiber/fiber/v2"
)

// createFavorite godoc
// @Summary   Favorite a post
// @Tags      favorites
// @Produce   json
// @Security  BearerAuth
// @Param     topic_id  path      string  true  "topic id"
// @Param     post_id   path      string  true  "post id"
// @Success   201       {object}  model.Favorite
// @Failure   409       {object}  ErrorResponse
// @Router    /topics/{topic_id}/posts/{post_id}/favorite [post]
func (h *Handler) createFavorite(c *fiber.Ctx) error {
	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	f, err := h.favorites.CreateFavorite(c.UserContext(), p.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

// deleteFavorite godoc
// @Summary   Unfavorite a post
// @Tags      favorites
// @Security  BearerAuth
// @Param     topic_id  path  string  true  "topic id"
// @Param     post_id   path  string  true  "post id"
// @Success   204
// @Failure   404  {object}  ErrorResponse
// @Router    /topics/{topic_id}/posts/{post_id}/favorite [delete]
func (h *Handler) deleteFavorite(c *fiber.Ctx) error {
	p, err := h.loadPost(c)
	if err != nil {
		return err
	}

	err = h.favorites.DeleteFavorite(c.UserContext(), p.ID)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
