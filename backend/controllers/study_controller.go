package controllers

import (
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StudyController struct {
	Store *database.Store
}

func NewStudyController(store *database.Store) *StudyController {
	return &StudyController{Store: store}
}

type AddStudyItemRequest struct {
	Title    string `json:"title" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=note voice image"`
	Content  string `json:"content"`
	CourseID string `json:"courseId"`
	ModuleID string `json:"moduleId"`
	LessonID string `json:"lessonId"`
}

// GetGallery godoc
// @Summary List the study gallery
// @Tags gallery
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /gallery [get]
func (sc *StudyController) GetGallery(c *fiber.Ctx) error {
	items := sc.Store.GetStudyGallery(middleware.UserID(c))
	if items == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.OK(c, items)
}

// AddItem godoc
// @Summary Add a study item
// @Tags gallery
// @Accept json
// @Produce json
// @Param input body AddStudyItemRequest true "Study item"
// @Success 201 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /gallery [post]
func (sc *StudyController) AddItem(c *fiber.Ctx) error {
	var input AddStudyItemRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}

	id, ok := sc.Store.AddStudyNote(middleware.UserID(c), database.StudyItemInput{
		Title:    input.Title,
		Type:     models.StudyItemType(input.Type),
		Content:  input.Content,
		CourseID: input.CourseID,
		ModuleID: input.ModuleID,
		LessonID: input.LessonID,
	})
	if !ok {
		return utils.NotFound(c, "User not found")
	}
	return utils.Created(c, fiber.Map{"id": id})
}

// DeleteItem godoc
// @Summary Delete a study item
// @Tags gallery
// @Param itemId path string true "Item ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /gallery/{itemId} [delete]
func (sc *StudyController) DeleteItem(c *fiber.Ctx) error {
	if !sc.Store.DeleteStudyItem(middleware.UserID(c), c.Params("itemId")) {
		return utils.NotFound(c, "Study item not found")
	}
	return utils.NoContent(c)
}
