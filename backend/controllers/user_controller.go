package controllers

import (
	"biophilic/backend/config"
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store *database.Store
	Cfg   *config.Config
}

func NewUserController(store *database.Store, cfg *config.Config) *UserController {
	return &UserController{Store: store, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the signed-in user's profile with badges and certificates
// @Tags user
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user := uc.Store.GetUserByID(middleware.UserID(c))
	if user == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.OK(c, models.ProfileOf(user))
}

// GetUserCourses godoc
// @Summary List enrolled courses
// @Description Enrolled courses in enrolment order, each with the user's progress
// @Tags user
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /user/courses [get]
func (uc *UserController) GetUserCourses(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	result := []fiber.Map{}
	for _, course := range uc.Store.GetEnrolledCourses(userID) {
		result = append(result, fiber.Map{
			"course":   models.SummarizeCourse(course),
			"progress": uc.Store.GetCourseProgress(userID, course.ID),
		})
	}
	return utils.OK(c, result)
}

// GetQuizAttempts godoc
// @Summary List quiz attempts
// @Description The user's attempts at one quiz, oldest first
// @Tags user
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /user/quizzes/{quizId}/attempts [get]
func (uc *UserController) GetQuizAttempts(c *fiber.Ctx) error {
	attempts := uc.Store.GetQuizAttempts(middleware.UserID(c), c.Params("quizId"))
	if attempts == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.OK(c, attempts)
}
