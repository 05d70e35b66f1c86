// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tsegaye25/portfolio-api/internal/config"
	"github.com/tsegaye25/portfolio-api/internal/handler"
	"github.com/tsegaye25/portfolio-api/internal/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Projects    *handler.ProjectHandler
	Skills      *handler.SkillHandler
	Experiences *handler.ExperienceHandler
	Education   *handler.EducationHandler
	Contact     *handler.ContactHandler
	Profile     *handler.ProfileHandler
	Github      *handler.GithubHandler
	Demo        *handler.DemoHandler
}

// Register mounts all routes.  Reads are public; mutations and the
// contact inbox require a valid token in the x-auth-token header.
// The Redis-backed response cache covers the public GET endpoints.
// The rate limiter runs after the guard on protected routes so
// authenticated traffic is bucketed per user rather than per IP.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	guard := middleware.JWTAuth(cfg.JWTSecret)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	pub := e.Group("/api", limit)
	priv := e.Group("/api", guard, limit)

	// auth
	pub.POST("/auth", h.Auth.Login)
	priv.GET("/auth", h.Auth.Me)
	pub.POST("/auth/register", h.Auth.Register)
	pub.POST("/auth/forgot-password", h.Auth.ForgotPassword)
	pub.POST("/auth/reset-password/:token", h.Auth.ResetPassword)

	// projects
	pub.GET("/projects", h.Projects.List, cache)
	pub.GET("/projects/:id", h.Projects.Get)
	priv.POST("/projects", h.Projects.Create)
	priv.PUT("/projects/:id", h.Projects.Update)
	priv.DELETE("/projects/:id", h.Projects.Delete)

	// skills
	pub.GET("/skills", h.Skills.List, cache)
	pub.GET("/skills/:id", h.Skills.Get)
	priv.POST("/skills", h.Skills.Create)
	priv.PUT("/skills/:id", h.Skills.Update)
	priv.DELETE("/skills/:id", h.Skills.Delete)

	// experiences
	pub.GET("/experiences", h.Experiences.List, cache)
	pub.GET("/experiences/:id", h.Experiences.Get)
	priv.POST("/experiences", h.Experiences.Create)
	priv.PUT("/experiences/:id", h.Experiences.Update)
	priv.DELETE("/experiences/:id", h.Experiences.Delete)

	// education
	pub.GET("/education", h.Education.List, cache)
	pub.GET("/education/:id", h.Education.Get)
	priv.POST("/education", h.Education.Create)
	priv.PUT("/education/:id", h.Education.Update)
	priv.DELETE("/education/:id", h.Education.Delete)

	// contact
	priv.GET("/contact", h.Contact.List)
	pub.POST("/contact", h.Contact.Create)
	priv.DELETE("/contact/:id", h.Contact.Delete)

	// profile + github
	pub.GET("/profile/:userId", h.Profile.Get)
	pub.GET("/github/projects", h.Github.Projects, cache)

	registerDemo(e, h.Demo)
}

// registerDemo mounts the store-backed demo layer.  The session
// endpoints and the public contact-form append are open; the admin
// message/project surface sits behind the session route guard.
func registerDemo(e *echo.Echo, d *handler.DemoHandler) {
	g := e.Group("/demo")

	g.GET("/session", d.GetSession)
	g.POST("/session/login", d.Login)
	g.POST("/session/register", d.Register)
	g.POST("/session/logout", d.Logout)

	g.POST("/messages", d.SubmitMessage)

	admin := e.Group("/demo", d.RequireSession)
	admin.PUT("/session/user", d.UpdateUser)
	admin.PUT("/session/profile-image", d.UpdateProfileImage)
	admin.DELETE("/session/profile-image", d.RemoveProfileImage)

	admin.GET("/messages", d.ListMessages)
	admin.DELETE("/messages/:id", d.DeleteMessage)
	admin.POST("/messages/:id/replies", d.ReplyMessage)

	admin.GET("/projects", d.ListProjects)
	admin.POST("/projects", d.AddProject)
	admin.PUT("/projects/:id", d.UpdateProject)
	admin.DELETE("/projects/:id", d.DeleteProject)
}
