package controllers

import (
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CaseStudiesController struct {
	Store *database.Store
	Log   *utils.Logger
}

func NewCaseStudiesController(store *database.Store, log *utils.Logger) *CaseStudiesController {
	return &CaseStudiesController{Store: store, Log: log.With("controller", "case_studies")}
}

type SubmitCaseStudyRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
}

type PublishRequest struct {
	Publish *bool `json:"publish"`
}

type FeatureRequest struct {
	Featured bool `json:"featured"`
}

// GetCaseStudies godoc
// @Summary List published case studies
// @Tags case-studies
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /case-studies [get]
func (cs *CaseStudiesController) GetCaseStudies(c *fiber.Ctx) error {
	return utils.OK(c, cs.Store.GetPublishedCaseStudies())
}

// GetCaseStudy godoc
// @Summary Get a case study
// @Description Unpublished case studies are visible to their author and admins only
// @Tags case-studies
// @Produce json
// @Param id path string true "Case study ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /case-studies/{id} [get]
func (cs *CaseStudiesController) GetCaseStudy(c *fiber.Ctx) error {
	study := cs.Store.GetCaseStudyByID(c.Params("id"))
	if study == nil {
		return utils.NotFound(c, "Case study not found")
	}
	if !study.Published {
		user := cs.Store.GetUserByID(middleware.UserID(c))
		if user == nil || (user.ID != study.AuthorID && user.Role != models.RoleAdmin) {
			return utils.NotFound(c, "Case study not found")
		}
	}
	return utils.OK(c, study)
}

// SubmitCaseStudy godoc
// @Summary Submit a case study for review
// @Tags case-studies
// @Accept json
// @Produce json
// @Param input body SubmitCaseStudyRequest true "Case study"
// @Success 201 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /case-studies [post]
func (cs *CaseStudiesController) SubmitCaseStudy(c *fiber.Ctx) error {
	var input SubmitCaseStudyRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}
	user := cs.Store.GetUserByID(middleware.UserID(c))
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id := cs.Store.AddCaseStudy(database.CaseStudyInput{
		Title:       input.Title,
		Description: input.Description,
		Images:      input.Images,
		Tags:        input.Tags,
		AuthorID:    user.ID,
		AuthorName:  user.Name,
	})
	cs.Log.Info("case study submitted", "case_study_id", id, "author_id", user.ID)
	return utils.Created(c, fiber.Map{"id": id, "published": false})
}

// PublishCaseStudy godoc
// @Summary Publish or unpublish a case study
// @Tags admin
// @Accept json
// @Param id path string true "Case study ID"
// @Param input body PublishRequest false "Defaults to publish=true"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/case-studies/{id}/publish [put]
func (cs *CaseStudiesController) PublishCaseStudy(c *fiber.Ctx) error {
	var input PublishRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}
	publish := input.Publish == nil || *input.Publish

	id := c.Params("id")
	if !cs.Store.PublishCaseStudy(id, publish) {
		return utils.NotFound(c, "Case study not found")
	}
	cs.Log.Info("case study reviewed", "case_study_id", id, "published", publish)
	return utils.OK(c, fiber.Map{"id": id, "published": publish})
}

// FeatureCaseStudy godoc
// @Summary Feature or unfeature a case study
// @Tags admin
// @Accept json
// @Param id path string true "Case study ID"
// @Param input body FeatureRequest true "Featured flag"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/case-studies/{id}/feature [put]
func (cs *CaseStudiesController) FeatureCaseStudy(c *fiber.Ctx) error {
	var input FeatureRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	id := c.Params("id")
	if !cs.Store.FeatureCaseStudy(id, input.Featured) {
		return utils.NotFound(c, "Case study not found")
	}
	return utils.OK(c, fiber.Map{"id": id, "featured": input.Featured})
}
