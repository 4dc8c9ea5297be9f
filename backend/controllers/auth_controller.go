package controllers

import (
	"errors"

	"biophilic/backend/config"
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Store *database.Store
	Cfg   *config.Config
	Log   *utils.Logger
}

func NewAuthController(store *database.Store, cfg *config.Config, log *utils.Logger) *AuthController {
	return &AuthController{Store: store, Cfg: cfg, Log: log.With("controller", "auth")}
}

// RegisterRequest is the signup body. Public signup always creates students.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a student account and opens a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}

	user, err := ac.Store.CreateUser(database.NewUser{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Role:     models.RoleStudent,
		Avatar:   input.Avatar,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			return utils.Conflict(c, err.Error())
		}
		if errors.Is(err, database.ErrInvalidArgument) {
			return utils.BadRequest(c, err.Error())
		}
		ac.Log.Error("create user failed", "error", err)
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := ac.openSession(c, user.ID)
	if err != nil {
		ac.Log.Error("open session failed", "user_id", user.ID, "error", err)
		return utils.InternalServerError(c, "Could not start session")
	}
	return utils.Created(c, fiber.Map{
		"token": token,
		"user":  models.ProfileOf(user),
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}

	user := ac.Store.Authenticate(input.Email, input.Password)
	if user == nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := ac.openSession(c, user.ID)
	if err != nil {
		ac.Log.Error("open session failed", "user_id", user.ID, "error", err)
		return utils.InternalServerError(c, "Could not start session")
	}
	return utils.OK(c, fiber.Map{
		"token": token,
		"user":  models.ProfileOf(user),
	})
}

// Logout godoc
// @Summary End the current session
// @Tags auth
// @Success 204
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Store.EndSession(c.UserContext(), middleware.SessionID(c)); err != nil {
		ac.Log.Error("end session failed", "error", err)
		return utils.InternalServerError(c, "Could not end session")
	}
	return utils.NoContent(c)
}

func (ac *AuthController) openSession(c *fiber.Ctx, userID string) (string, error) {
	sid, err := ac.Store.StartSession(c.UserContext(), userID)
	if err != nil {
		return "", err
	}
	return utils.GenerateJWTToken(userID, sid, ac.Cfg)
}
