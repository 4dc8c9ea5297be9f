package controllers

import (
	"time"

	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizzesController struct {
	Store *database.Store
	Log   *utils.Logger
}

func NewQuizzesController(store *database.Store, log *utils.Logger) *QuizzesController {
	return &QuizzesController{Store: store, Log: log.With("controller", "quizzes")}
}

// SubmitQuizRequest holds one selected option index per question. A null or
// negative entry is an unanswered question.
type SubmitQuizRequest struct {
	Answers   []*int     `json:"answers" validate:"required"`
	StartedAt *time.Time `json:"startedAt"`
}

// SubmitQuiz godoc
// @Summary Submit a quiz attempt
// @Description Grades the answers, records the attempt and returns the result
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param input body SubmitQuizRequest true "Answers"
// @Success 201 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id}/submit [post]
func (qc *QuizzesController) SubmitQuiz(c *fiber.Ctx) error {
	var input SubmitQuizRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}

	quiz := qc.Store.GetQuizByID(c.Params("id"))
	if quiz == nil {
		return utils.NotFound(c, "Quiz not found")
	}
	userID := middleware.UserID(c)
	// A quiz is only as open as the lesson that carries it.
	courseID, lessonID, _ := qc.Store.GetQuizLesson(quiz.ID)
	if !qc.Store.CanAccessLesson(userID, courseID, lessonID) {
		return utils.Forbidden(c, "Lesson is locked")
	}

	var startedAt time.Time
	if input.StartedAt != nil {
		startedAt = input.StartedAt.UTC()
	}
	answers := models.NormalizeAnswers(input.Answers, len(quiz.Questions))
	sub := qc.Store.SubmitQuiz(userID, quiz.ID, answers, startedAt)
	if sub == nil {
		return utils.NotFound(c, "User not found")
	}
	qc.Log.Info("quiz submitted", "user_id", userID, "quiz_id", quiz.ID, "score", sub.Result.Score, "passed", sub.Result.Passed)
	return utils.Created(c, sub)
}
