package routes

import (
	"biophilic/backend/config"
	"biophilic/backend/controllers"
	"biophilic/backend/database"
	"biophilic/backend/middleware"
	"biophilic/backend/models"
	"biophilic/backend/utils"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store *database.Store, cfg *config.Config, log *utils.Logger) {
	api := app.Group("/api")

	// Middleware
	auth := middleware.AuthMiddleware(store, cfg)
	optionalAuth := middleware.OptionalAuth(store, cfg)
	staff := middleware.RequireRole(store, models.RoleInstructor, models.RoleAdmin)
	admin := middleware.RequireRole(store, models.RoleAdmin)

	// Auth routes
	authController := controllers.NewAuthController(store, cfg, log)
	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)
	api.Post("/auth/logout", auth, authController.Logout)

	// User routes
	userController := controllers.NewUserController(store, cfg)
	discussionsController := controllers.NewDiscussionsController(store)
	api.Get("/user/profile", auth, userController.GetProfile)
	api.Get("/user/courses", auth, userController.GetUserCourses)
	api.Get("/user/quizzes/:quizId/attempts", auth, userController.GetQuizAttempts)
	api.Get("/user/discussions", auth, discussionsController.GetMyThreads)

	// Courses routes
	coursesController := controllers.NewCoursesController(store, cfg, log)
	overviewController := controllers.NewOverviewController(store)
	progressController := controllers.NewProgressController(store)
	analyticsController := controllers.NewAnalyticsController(store)
	courses := api.Group("/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/featured", overviewController.GetFeaturedCourses)
	courses.Get("/search", overviewController.SearchCourses)
	courses.Get("/:id", optionalAuth, coursesController.GetCourseDetails)
	courses.Post("/:id/enroll", auth, coursesController.Enroll)
	courses.Get("/:id/progress", auth, progressController.GetCourseProgress)
	courses.Get("/:id/lessons/:lessonId", auth, coursesController.GetLesson)
	courses.Get("/:id/lessons/:lessonId/next", auth, coursesController.GetNextLesson)
	courses.Get("/:id/lessons/:lessonId/previous", auth, coursesController.GetPreviousLesson)
	courses.Post("/:id/lessons/:lessonId/complete", auth, progressController.CompleteLesson)
	courses.Get("/:id/discussions", auth, discussionsController.GetCourseDiscussions)
	courses.Post("/:id/discussions", auth, discussionsController.OpenThread)
	courses.Get("/:id/analytics", auth, staff, analyticsController.GetCourseAnalytics)

	// Quiz routes
	quizzesController := controllers.NewQuizzesController(store, log)
	api.Post("/quizzes/:id/submit", auth, quizzesController.SubmitQuiz)

	// Study gallery routes
	studyController := controllers.NewStudyController(store)
	api.Get("/gallery", auth, studyController.GetGallery)
	api.Post("/gallery", auth, studyController.AddItem)
	api.Delete("/gallery/:itemId", auth, studyController.DeleteItem)

	// Case study routes
	caseStudiesController := controllers.NewCaseStudiesController(store, log)
	api.Get("/case-studies", caseStudiesController.GetCaseStudies)
	api.Get("/case-studies/:id", auth, caseStudiesController.GetCaseStudy)
	api.Post("/case-studies", auth, caseStudiesController.SubmitCaseStudy)

	// Discussion routes
	api.Get("/discussions/:id", auth, discussionsController.GetThread)
	api.Post("/discussions/:id/messages", auth, discussionsController.PostMessage)
	api.Put("/discussions/:id/close", auth, discussionsController.CloseThread)

	// Community routes
	communityController := controllers.NewCommunityController(store, log)
	community := api.Group("/community/posts")
	community.Get("/", auth, communityController.GetPosts)
	community.Post("/", auth, communityController.CreatePost)
	community.Post("/:id/replies", auth, communityController.AddReply)
	community.Post("/:id/like", auth, communityController.LikePost)
	community.Delete("/:id", auth, communityController.DeletePost)

	// Admin routes for case studies
	adminCaseStudies := api.Group("/admin/case-studies", auth, admin)
	adminCaseStudies.Put("/:id/publish", caseStudiesController.PublishCaseStudy)
	adminCaseStudies.Put("/:id/feature", caseStudiesController.FeatureCaseStudy)
}
