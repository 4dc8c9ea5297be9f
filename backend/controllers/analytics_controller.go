package controllers

import (
	"biophilic/backend/database"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	Store *database.Store
}

func NewAnalyticsController(store *database.Store) *AnalyticsController {
	return &AnalyticsController{Store: store}
}

// GetCourseAnalytics godoc
// @Summary Course analytics
// @Description Enrolment count and per-student progress for instructors and admins
// @Tags analytics
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/analytics [get]
func (ac *AnalyticsController) GetCourseAnalytics(c *fiber.Ctx) error {
	a := ac.Store.GetCourseAnalytics(c.Params("id"))
	if a == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.OK(c, a)
}
