package api

import (
	"github.com/gofiber/fiber/v2"
)

type signUpRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret123"`
}

type signInRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret123"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// signUp godoc
// @Summary  Register a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body      signUpRequest  true  "credentials"
// @Success  201   {object}  model.User
// @Failure  409   {object}  ErrorResponse
// @Failure  422   {object}  ErrorResponse
// @Router   /users/sign_up [post]
func (h *Handler) signUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	u, err := h.users.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(u)
}

// signIn godoc
// @Summary  Sign in and get a JWT
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body      signInRequest  true  "credentials"
// @Success  200   {object}  tokenResponse
// @Failure  401   {object}  ErrorResponse
// @Router   /users/sign_in [post]
func (h *Handler) signIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	token, err := h.users.LoginUser(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(tokenResponse{Token: token})
}

// listUsers godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200  {array}  model.User
// @Router   /users [get]
func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.users.GetAllUsers()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// showUser godoc
// @Summary  Show a user
// @Tags     users
// @Produce  json
// @Param    id   path      string  true  "user id"
// @Success  200  {object}  model.User
// @Failure  404  {object}  ErrorResponse
// @Router   /users/{id} [get]
func (h *Handler) showUser(c *fiber.Ctx) error {
	u, err := h.users.GetUserById(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// updateUser godoc
// @Summary   Update own account
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string             true  "user id"
// @Param     body  body      updateUserRequest  true  "fields to change"
// @Success   200   {object}  model.User
// @Failure   403   {object}  ErrorResponse
// @Router    /users/{id} [patch]
func (h *Handler) updateUser(c *fiber.Ctx) error {
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody
	}

	u, err := h.users.UpdateUser(c.UserContext(), c.Params("id"), req.Username, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// deleteUser godoc
// @Summary   Delete own account
// @Tags      users
// @Security  BearerAuth
// @Param     id  path  string  true  "user id"
// @Success   204
// @Failure   403  {object}  ErrorResponse
// @Router    /users/{id} [delete]
func (h *Handler) deleteUser(c *fiber.Ctx) error {
	err := h.users.DeleteUserById(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
