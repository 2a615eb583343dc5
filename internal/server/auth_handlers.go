package server

import (
	"strings"

	"socialpod/internal/auth"
	"socialpod/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// IssueToken handles POST /jwt
// @Summary Issue an access token
// @Description Signs a 10 hour token for an identity the client has already authenticated
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.Identity true "Identity"
// @Success 200 {object} object{token=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /jwt [post]
func (s *Server) IssueToken(c *fiber.Ctx) error {
	var req auth.Identity
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return respondError(c, err)
	}

	token, err := s.signer.Issue(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}
