package controllers

import (
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DiscussionsController struct {
	Store *database.Store
}

func NewDiscussionsController(store *database.Store) *DiscussionsController {
	return &DiscussionsController{Store: store}
}

type OpenThreadRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type PostMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// GetCourseDiscussions godoc
// @Summary List course threads
// @Tags discussions
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/discussions [get]
func (dc *DiscussionsController) GetCourseDiscussions(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if dc.Store.GetCourseByID(courseID) == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.OK(c, dc.Store.GetCourseDiscussions(courseID))
}

// OpenThread godoc
// @Summary Ask a question in a course
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param input body OpenThreadRequest true "Question"
// @Success 201 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/discussions [post]
func (dc *DiscussionsController) OpenThread(c *fiber.Ctx) error {
	var input OpenThreadRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}
	user := dc.Store.GetUserByID(middleware.UserID(c))
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, ok := dc.Store.CreateDiscussionThread(database.NewThread{
		CourseID:    c.Params("id"),
		StudentID:   user.ID,
		StudentName: user.Name,
		Title:       input.Title,
		Message:     input.Message,
	})
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Created(c, fiber.Map{"id": id})
}

// GetThread godoc
// @Summary Get a thread with its messages
// @Tags discussions
// @Produce json
// @Param id path string true "Thread ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /discussions/{id} [get]
func (dc *DiscussionsController) GetThread(c *fiber.Ctx) error {
	t := dc.Store.GetDiscussionThread(c.Params("id"))
	if t == nil {
		return utils.NotFound(c, "Thread not found")
	}
	return utils.OK(c, t)
}

// PostMessage godoc
// @Summary Reply in a thread
// @Description Instructors and admins post with the instructor role
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path string true "Thread ID"
// @Param input body PostMessageRequest true "Message"
// @Success 201 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /discussions/{id}/messages [post]
func (dc *DiscussionsController) PostMessage(c *fiber.Ctx) error {
	var input PostMessageRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}
	user := dc.Store.GetUserByID(middleware.UserID(c))
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	threadID := c.Params("id")
	t := dc.Store.GetDiscussionThread(threadID)
	if t == nil {
		return utils.NotFound(c, "Thread not found")
	}
	if t.Status == models.ThreadClosed {
		return utils.Conflict(c, "Thread is closed")
	}

	role := models.MessageFromStudent
	if user.Role != models.RoleStudent {
		role = models.MessageFromInstructor
	}
	id, ok := dc.Store.AddDiscussionMessage(database.NewMessage{
		ThreadID:   threadID,
		SenderID:   user.ID,
		SenderName: user.Name,
		Role:       role,
		Content:    input.Content,
	})
	if !ok {
		return utils.NotFound(c, "Thread not found")
	}
	return utils.Created(c, fiber.Map{"id": id})
}

// CloseThread godoc
// @Summary Close a thread
// @Description Allowed for the asking student, instructors and admins
// @Tags discussions
// @Param id path string true "Thread ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /discussions/{id}/close [put]
func (dc *DiscussionsController) CloseThread(c *fiber.Ctx) error {
	user := dc.Store.GetUserByID(middleware.UserID(c))
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	t := dc.Store.GetDiscussionThread(c.Params("id"))
	if t == nil {
		return utils.NotFound(c, "Thread not found")
	}
	if user.Role == models.RoleStudent && user.ID != t.StudentID {
		return utils.Forbidden(c, "Only the author can close this thread")
	}
	if !dc.Store.CloseDiscussionThread(t.ID) {
		return utils.NotFound(c, "Thread not found")
	}
	return utils.OK(c, fiber.Map{"id": t.ID, "status": models.ThreadClosed})
}

// GetMyThreads godoc
// @Summary Threads opened by the signed-in user
// @Tags discussions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /user/discussions [get]
func (dc *DiscussionsController) GetMyThreads(c *fiber.Ctx) error {
	return utils.OK(c, dc.Store.GetStudentDiscussions(middleware.UserID(c)))
}
