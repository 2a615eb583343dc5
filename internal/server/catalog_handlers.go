package server

import (
	"socialpod/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateAnnouncement handles POST /announcement
// @Summary Publish an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateAnnouncementInput true "Announcement"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /announcement [post]
func (s *Server) CreateAnnouncement(c *fiber.Ctx) error {
	var req service.CreateAnnouncementInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	res, err := s.catalogService.CreateAnnouncement(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetAnnouncements handles GET /getAnnouncements
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} models.Announcement
// @Router /getAnnouncements [get]
func (s *Server) GetAnnouncements(c *fiber.Ctx) error {
	list, err := s.catalogService.ListAnnouncements(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(list))
}

// CreateTag handles POST /tags
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTagInput true "Tag"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /tags [post]
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req service.CreateTagInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	res, err := s.catalogService.CreateTag(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetTags handles GET /tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /tags [get]
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.catalogService.ListTags(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orEmpty(tags))
}
