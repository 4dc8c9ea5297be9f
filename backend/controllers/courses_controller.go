package controllers

import (
	"biophilic/backend/config"
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Store *database.Store
	Cfg   *config.Config
	Log   *utils.Logger
}

func NewCoursesController(store *database.Store, cfg *config.Config, log *utils.Logger) *CoursesController {
	return &CoursesController{Store: store, Cfg: cfg, Log: log.With("controller", "courses")}
}

// GetCourses godoc
// @Summary List the catalogue
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	return utils.OK(c, models.SummarizeCourses(cc.Store.GetCourses()))
}

// GetCourseDetails godoc
// @Summary Get course details
// @Description Modules and lessons of a course. Signed-in callers also get completion marks, enrolment and progress.
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	course := cc.Store.GetCourseByID(c.Params("id"))
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	if userID == "" {
		return utils.OK(c, fiber.Map{
			"course":   models.DetailCourse(*course, nil),
			"enrolled": false,
			"progress": nil,
		})
	}
	completed := func(lessonID string) bool { return cc.Store.IsLessonCompleted(userID, lessonID) }
	return utils.OK(c, fiber.Map{
		"course":   models.DetailCourse(*course, completed),
		"enrolled": cc.Store.IsEnrolled(userID, course.ID),
		"progress": cc.Store.GetCourseProgress(userID, course.ID),
	})
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags courses
// @Param id path string true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/enroll [post]
func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	courseID := c.Params("id")
	if cc.Store.GetCourseByID(courseID) == nil {
		return utils.NotFound(c, "Course not found")
	}
	if !cc.Store.Enroll(userID, courseID) {
		return utils.Conflict(c, "Already enrolled")
	}
	cc.Log.Info("enrolled", "user_id", userID, "course_id", courseID)
	return utils.OK(c, fiber.Map{"courseId": courseID, "enrolled": true})
}

// GetLesson godoc
// @Summary Open a lesson
// @Description Returns the lesson without its answer key and marks it completed
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/lessons/{lessonId} [get]
func (cc *CoursesController) GetLesson(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	course, module, lesson := cc.lookupLesson(c.Params("id"), c.Params("lessonId"))
	if lesson == nil {
		return utils.NotFound(c, "Lesson not found")
	}
	if !cc.Store.CanAccessLesson(userID, course.ID, lesson.ID) {
		return utils.Forbidden(c, "Lesson is locked")
	}

	// Opening a lesson counts as completing it.
	cc.Store.MarkLessonAsCompleted(userID, lesson.ID)

	next := cc.Store.GetNextLesson(course.ID, lesson.ID)
	prev := cc.Store.GetPreviousLesson(course.ID, lesson.ID)
	return utils.OK(c, fiber.Map{
		"lesson":           models.ViewLesson(course.ID, module.ID, *lesson, true),
		"nextLessonId":     lessonIDOf(next),
		"previousLessonId": lessonIDOf(prev),
	})
}

// GetNextLesson godoc
// @Summary Next lesson in the course
// @Tags courses
// @Param id path string true "Course ID"
// @Param lessonId path string true "Current lesson ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/lessons/{lessonId}/next [get]
func (cc *CoursesController) GetNextLesson(c *fiber.Ctx) error {
	courseID := c.Params("id")
	return cc.neighbour(c, courseID, cc.Store.GetNextLesson(courseID, c.Params("lessonId")))
}

// GetPreviousLesson godoc
// @Summary Previous lesson in the course
// @Tags courses
// @Param id path string true "Course ID"
// @Param lessonId path string true "Current lesson ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/lessons/{lessonId}/previous [get]
func (cc *CoursesController) GetPreviousLesson(c *fiber.Ctx) error {
	courseID := c.Params("id")
	return cc.neighbour(c, courseID, cc.Store.GetPreviousLesson(courseID, c.Params("lessonId")))
}

func (cc *CoursesController) neighbour(c *fiber.Ctx, courseID string, lesson *models.Lesson) error {
	if lesson == nil {
		return utils.NotFound(c, "No such lesson")
	}
	course, module, l := cc.lookupLesson(courseID, lesson.ID)
	if l == nil {
		return utils.NotFound(c, "No such lesson")
	}
	done := cc.Store.IsLessonCompleted(middleware.UserID(c), l.ID)
	return utils.OK(c, fiber.Map{
		"lesson":     models.ViewLesson(course.ID, module.ID, *l, done),
		"accessible": cc.Store.CanAccessLesson(middleware.UserID(c), course.ID, l.ID),
	})
}

func (cc *CoursesController) lookupLesson(courseID, lessonID string) (*models.Course, *models.Module, *models.Lesson) {
	course := cc.Store.GetCourseByID(courseID)
	if course == nil {
		return nil, nil, nil
	}
	module, lesson := course.FindLesson(lessonID)
	if lesson == nil {
		return nil, nil, nil
	}
	return course, module, lesson
}

func lessonIDOf(l *models.Lesson) *string {
	if l == nil {
		return nil
	}
	return &l.ID
}
