package server

import (
	"socialpod/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /newPost
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body service.CreatePostInput true "Post"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Router /newPost [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	res, err := s.postService.CreatePost(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetPosts handles GET /post?page=&size=
// @Summary List posts
// @Description Insertion order; skips page*size posts
// @Tags posts
// @Produce json
// @Param page query int false "Page, from 0"
// @Param size query int false "Page size, at most 100"
// @Success 200 {array} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /post [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, size, err := parsePage(c)
	if err != nil {
		return respondError(c, err)
	}

	posts, err := s.postService.ListPosts(c.UserContext(), page, size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(posts))
}

// CountPosts handles GET /postCount
// @Summary Count posts
// @Tags posts
// @Produce json
// @Success 200 {object} object{count=int}
// @Router /postCount [get]
func (s *Server) CountPosts(c *fiber.Ctx) error {
	n, err := s.postService.CountPosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": n})
}

// GetPost handles GET /post/:id
// @Summary Get a post
// @Description Returns null when the post does not exist
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /post/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// VotePost handles PATCH /post/:id
// @Summary Vote on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body service.VoteInput true "upVote or downVote"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.ErrorResponse
// @Router /post/{id} [patch]
func (s *Server) VotePost(c *fiber.Ctx) error {
	var req service.VoteInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	// Unauthenticated callers are bucketed by IP for flag rollouts
	res, err := s.postService.Vote(c.UserContext(), c.Params("id"), req, c.IP())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetPostsByAuthor handles GET /myPost/:email
// @Summary List posts by author
// @Tags posts
// @Produce json
// @Param email path string true "Author email"
// @Success 200 {array} models.Post
// @Router /myPost/{email} [get]
func (s *Server) GetPostsByAuthor(c *fiber.Ctx) error {
	posts, err := s.postService.ListByAuthor(c.UserContext(), pathParam(c, "email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(posts))
}

// DeletePost handles DELETE /deletePost/:id
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} models.ErrorResponse
// @Router /deletePost/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	res, err := s.postService.DeletePost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
