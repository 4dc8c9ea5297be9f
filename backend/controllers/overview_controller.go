package controllers

import (
	"biophilic/backend/database"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// OverviewController serves the catalogue landing views.
type OverviewController struct {
	Store *database.Store
}

func NewOverviewController(store *database.Store) *OverviewController {
	return &OverviewController{Store: store}
}

// GetFeaturedCourses godoc
// @Summary Featured courses
// @Tags overview
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /courses/featured [get]
func (oc *OverviewController) GetFeaturedCourses(c *fiber.Ctx) error {
	return utils.OK(c, models.SummarizeCourses(oc.Store.GetFeaturedCourses()))
}

// SearchCourses godoc
// @Summary Search the catalogue
// @Description Case-insensitive match on title, description and instructor
// @Tags overview
// @Produce json
// @Param q query string false "Search text"
// @Param free query bool false "Only free courses"
// @Param featured query bool false "Only featured courses"
// @Success 200 {object} utils.SuccessResponse
// @Router /courses/search [get]
func (oc *OverviewController) SearchCourses(c *fiber.Ctx) error {
	courses := oc.Store.SearchCourses(database.CourseFilter{
		Query:        c.Query("q"),
		FreeOnly:     c.QueryBool("free"),
		FeaturedOnly: c.QueryBool("featured"),
	})
	return utils.Success(c, fiber.StatusOK, models.SummarizeCourses(courses), fiber.Map{"total": len(courses)})
}
