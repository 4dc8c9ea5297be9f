package controllers

import (
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CommunityController struct {
	Store *database.Store
	Log   *utils.Logger
}

func NewCommunityController(store *database.Store, log *utils.Logger) *CommunityController {
	return &CommunityController{Store: store, Log: log.With("controller", "community")}
}

type CommunityPostRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// GetPosts godoc
// @Summary Community feed
// @Description All posts, newest first
// @Tags community
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /community/posts [get]
func (cc *CommunityController) GetPosts(c *fiber.Ctx) error {
	posts, err := cc.Store.GetPosts(c.UserContext())
	if err != nil {
		cc.Log.Error("load posts failed", "error", err)
		return utils.InternalServerError(c, "Failed to fetch posts")
	}
	return utils.OK(c, posts)
}

// CreatePost godoc
// @Summary Publish a community post
// @Tags community
// @Accept json
// @Produce json
// @Param input body CommunityPostRequest true "Post"
// @Success 201 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /community/posts [post]
func (cc *CommunityController) CreatePost(c *fiber.Ctx) error {
	var input CommunityPostRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}
	author, ok := cc.author(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	post, err := cc.Store.CreateDiscussionPost(c.UserContext(), database.NewPost{Content: input.Content, Author: author})
	if err != nil {
		cc.Log.Error("create post failed", "error", err)
		return utils.InternalServerError(c, "Failed to create post")
	}
	return utils.Created(c, post)
}

// AddReply godoc
// @Summary Reply to a community post
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param input body CommunityPostRequest true "Reply"
// @Success 201 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /community/posts/{id}/replies [post]
func (cc *CommunityController) AddReply(c *fiber.Ctx) error {
	var input CommunityPostRequest
	if ok, err := utils.ParseAndValidate(c, &input); !ok {
		return err
	}
	author, ok := cc.author(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	reply, err := cc.Store.AddReplyToPost(c.UserContext(), c.Params("id"), database.NewReply{Content: input.Content, Author: author})
	if err != nil {
		cc.Log.Error("add reply failed", "error", err)
		return utils.InternalServerError(c, "Failed to add reply")
	}
	if reply == nil {
		return utils.NotFound(c, "Post not found")
	}
	return utils.Created(c, reply)
}

// LikePost godoc
// @Summary Like a community post
// @Tags community
// @Param id path string true "Post ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /community/posts/{id}/like [post]
func (cc *CommunityController) LikePost(c *fiber.Ctx) error {
	found, err := cc.Store.LikePost(c.UserContext(), c.Params("id"))
	if err != nil {
		cc.Log.Error("like post failed", "error", err)
		return utils.InternalServerError(c, "Failed to like post")
	}
	if !found {
		return utils.NotFound(c, "Post not found")
	}
	return utils.OK(c, fiber.Map{"id": c.Params("id"), "liked": true})
}

// DeletePost godoc
// @Summary Delete a community post
// @Description Allowed for the post author and admins
// @Tags community
// @Param id path string true "Post ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /community/posts/{id} [delete]
func (cc *CommunityController) DeletePost(c *fiber.Ctx) error {
	user := cc.Store.GetUserByID(middleware.UserID(c))
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	postID := c.Params("id")

	posts, err := cc.Store.GetPosts(c.UserContext())
	if err != nil {
		cc.Log.Error("load posts failed", "error", err)
		return utils.InternalServerError(c, "Failed to fetch posts")
	}
	var post *models.Post
	for i := range posts {
		if posts[i].ID == postID {
			post = &posts[i]
			break
		}
	}
	if post == nil {
		return utils.NotFound(c, "Post not found")
	}
	if post.Author.ID != user.ID && user.Role != models.RoleAdmin {
		return utils.Forbidden(c, "Only the author can delete this post")
	}

	deleted, err := cc.Store.DeletePost(c.UserContext(), postID)
	if err != nil {
		cc.Log.Error("delete post failed", "error", err)
		return utils.InternalServerError(c, "Failed to delete post")
	}
	if !deleted {
		return utils.NotFound(c, "Post not found")
	}
	return utils.NoContent(c)
}

func (cc *CommunityController) author(c *fiber.Ctx) (models.Author, bool) {
	user := cc.Store.GetUserByID(middleware.UserID(c))
	if user == nil {
		return models.Author{}, false
	}
	return models.Author{ID: user.ID, Name: user.Name, Avatar: user.Avatar}, true
}
