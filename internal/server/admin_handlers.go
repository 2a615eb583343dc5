package server

import "github.com/gofiber/fiber/v2"

// GetAdminStats handles GET /admin-stats
// @Summary Collection sizes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Stats
// @Failure 403 {object} models.ErrorResponse
// @Router /admin-stats [get]
func (s *Server) GetAdminStats(c *fiber.Ctx) error {
	stats, err := s.statsService.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetFeatureFlags returns configured feature flags and evaluated state for the caller.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	if s.featureFlags == nil {
		return c.JSON(fiber.Map{
			"raw":       map[string]string{},
			"evaluated": map[string]bool{},
		})
	}

	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(callerEmail(c)),
	})
}
