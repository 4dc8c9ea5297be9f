package controllers

import (
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store *database.Store
}

func NewProgressController(store *database.Store) *ProgressController {
	return &ProgressController{Store: store}
}

// GetCourseProgress godoc
// @Summary Get course progress
// @Description Completed and total lessons of the course for the signed-in user
// @Tags progress
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress [get]
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	p := pc.Store.GetCourseProgress(middleware.UserID(c), c.Params("id"))
	if p == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.OK(c, p)
}

// CompleteLesson godoc
// @Summary Mark a lesson completed
// @Tags progress
// @Param id path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/lessons/{lessonId}/complete [post]
func (pc *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	courseID, lessonID := c.Params("id"), c.Params("lessonId")

	course := pc.Store.GetCourseByID(courseID)
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}
	if _, l := course.FindLesson(lessonID); l == nil {
		return utils.NotFound(c, "Lesson not found")
	}
	if !pc.Store.CanAccessLesson(userID, courseID, lessonID) {
		return utils.Forbidden(c, "Lesson is locked")
	}
	if !pc.Store.MarkLessonAsCompleted(userID, lessonID) {
		return utils.NotFound(c, "Lesson not found")
	}
	return utils.OK(c, pc.Store.GetCourseProgress(userID, courseID))
}
