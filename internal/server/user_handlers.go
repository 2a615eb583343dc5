package server

import (
	"errors"

	"socialpod/internal/models"
	"socialpod/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /users
// @Summary Register a user on first sign-in
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.CreateUserInput true "User"
// @Success 200 {object} models.InsertResult
// @Success 200 {object} models.MessageResponse "user already exists"
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	res, err := s.userService.CreateUser(c.UserContext(), req)
	if errors.Is(err, service.ErrUserExists) {
		return c.JSON(models.MessageResponse{Message: service.UserExistsMessage})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetUsers handles GET /users?search=
// @Summary List users
// @Description Case-insensitive substring match on name
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name filter"
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(users))
}

// SetAdmin handles PATCH /users/admin/:id
// @Summary Grant the admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /users/admin/{id} [patch]
func (s *Server) SetAdmin(c *fiber.Ctx) error {
	res, err := s.userService.SetAdmin(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// CheckAdmin handles GET /users/admin/:email
// @Summary Check whether the caller is an admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {object} object{admin=bool}
// @Failure 403 {object} models.ErrorResponse
// @Router /users/admin/{email} [get]
func (s *Server) CheckAdmin(c *fiber.Ctx) error {
	email := pathParam(c, "email")
	if err := requireCaller(c, email); err != nil {
		return respondError(c, err)
	}

	admin, err := s.userService.IsAdmin(c.UserContext(), callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"admin": admin})
}

// GetBadge handles GET /user/badge/:email
// @Summary Get the caller's badge
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {object} models.BadgeView
// @Failure 403 {object} models.ErrorResponse
// @Router /user/badge/{email} [get]
func (s *Server) GetBadge(c *fiber.Ctx) error {
	email := pathParam(c, "email")
	if err := requireCaller(c, email); err != nil {
		return respondError(c, err)
	}

	badge, err := s.userService.Badge(c.UserContext(), callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(badge)
}
