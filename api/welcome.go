package api

import "github.com/gofiber/fiber/v2"

// index godoc
// @Summary  Welcome page
// @Tags     welcome
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   / [get]
func (h *Handler) index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "Bloccit",
		"message": "Welcome to Bloccit",
	})
}

// about godoc
// @Summary  About page
// @Tags     welcome
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /about [get]
func (h *Handler) about(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":  "Bloccit",
		"about": "Topics, posts and a vote ledger that scores every post by its up and down votes.",
	})
}
