package server

import (
	"socialpod/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /comments
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param request body service.CreateCommentInput true "Comment"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Router /comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req service.CreateCommentInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	res, err := s.commentService.CreateComment(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetComments handles GET /comments
// @Summary List comments
// @Tags comments
// @Produce json
// @Success 200 {array} models.Comment
// @Router /comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListComments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(comments))
}

// GetCommentsByTitle handles GET /comments/:title
// @Summary List comments by post title
// @Tags comments
// @Produce json
// @Param title path string true "Post title"
// @Success 200 {array} models.Comment
// @Router /comments/{title} [get]
func (s *Server) GetCommentsByTitle(c *fiber.Ctx) error {
	comments, err := s.commentService.ListByTitle(c.UserContext(), pathParam(c, "title"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(comments))
}

// GetCommentsByPost handles GET /getComments/:postId
// @Summary List comments on a post
// @Tags comments
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Router /getComments/{postId} [get]
func (s *Server) GetCommentsByPost(c *fiber.Ctx) error {
	comments, err := s.commentService.ListByPost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(comments))
}
