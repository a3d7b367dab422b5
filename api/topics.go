package api

import "github.com/gofiber/fiber/v2"

type topicRequest struct {
	Name        string `json:"name" example:"Golang"`
	Description string `json:"description" example:"Everything about Go"`
}

// listTopics godoc
// @Summary  List topics
// @Tags     topics
// @Produce  json
// @Success  200  {array}  model.Topic
// @Router   /topics [get]
func (h *Handler) listTopics(c *fiber.Ctx) error {
	topics, err := h.topics.GetAllTopics()
	if err != nil {
		return err
	}
	return c.JSON(topics)
}

// createTopic godoc
// @Summary   Create a topic
// @Tags      topics
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      topicRequest  true  "topic"
// @Success   201   {object}  model.Topic
// @Failure   422   {object}  ErrorResponse
// @Router    /topics [post]
func (h *Handler) createTopic(c *fiber.Ctx) error {
	var req topicRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	t, err := h.topics.CreateTopic(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// showTopic godoc
// @Summary  Show a topic with its posts
// @Tags     topics
// @Produce  json
// @Param    id   path      string  true  "topic id"
// @Success  200  {object}  model.Topic
// @Failure  404  {object}  ErrorResponse
// @Router   /topics/{id} [get]
func (h *Handler) showTopic(c *fiber.Ctx) error {
	t, err := h.topics.GetTopicById(c.Params("id"))
	if err != nil {
		return err
	}

	posts, err := h.posts.GetPostsByTopic(t.ID)
	if err != nil {
		return err
	}
	t.Posts = posts

	return c.JSON(t)
}

// updateTopic godoc
// @Summary   Update a topic
// @Tags      topics
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string        true  "topic id"
// @Param     body  body      topicRequest  true  "fields to change"
// @Success   200   {object}  model.Topic
// @Failure   403   {object}  ErrorResponse
// @Router    /topics/{id} [patch]
func (h *Handler) updateTopic(c *fiber.Ctx) error {
	var req topicRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	t, err := h.topics.UpdateTopic(c.UserContext(), c.Params("id"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(t)
}

// deleteTopic godoc
// @Summary   Delete a topic and its posts
// @Tags      topics
// @Security  BearerAuth
// @Param     id  path  string  true  "topic id"
// @Success   204
// @Failure   403  {object}  ErrorResponse
// @Router    /topics/{id} [delete]
func (h *Handler) deleteTopic(c *fiber.Ctx) error {
	// права проверяет хранилище до удаления постов темы
	err := h.topics.DeleteTopicById(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
