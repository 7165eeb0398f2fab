package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"luminous/cmd/fx/auth_fx"
	"luminous/cmd/fx/community_fx"
	"luminous/cmd/fx/config_fx"
	"luminous/cmd/fx/controllers_fx"
	"luminous/cmd/fx/db_fx"
	"luminous/cmd/fx/habit_fx"
	"luminous/cmd/fx/jobs_fx"
	"luminous/cmd/fx/memcache_fx"
	"luminous/cmd/fx/project_fx"
	"luminous/cmd/fx/wellness_fx"
	"luminous/internal/api/controllers"
	"luminous/internal/config"
	"luminous/internal/services"
	"luminous/pkg/metrics"
	"luminous/pkg/middleware"
	"luminous/pkg/utils"
)

func main() {
	app := fx.New(
		appOptions(),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		project_fx.Module,
		habit_fx.Module,
		community_fx.Module,
		wellness_fx.Module,
		controllers_fx.Module,
		jobs_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(ProvideRouter),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Sessions services.SessionServiceInterface
	Admins   services.AdminServiceInterface
	Limiter  *middleware.RateLimiter

	Auth      *controllers.AuthController
	Projects  *controllers.ProjectController
	Tasks     *controllers.TaskController
	Habits    *controllers.HabitController
	Community *controllers.CommunityController
	Challenge *controllers.ChallengeController
	Wellness  *controllers.WellnessController
	Admin     *controllers.AdminController
	Health    *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(p.Config.GinMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.Recovery(p.Logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware(p.Metrics))

	RegisterRoutes(r, p)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		utils.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/healthz", p.Health.Health)
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/session", p.Auth.Login)
	authGroup.POST("/logout", p.Auth.Logout)

	wellnessGroup := api.Group("/wellness", p.Limiter.Handler())
	wellnessGroup.GET("/daily", p.Wellness.Daily)
	wellnessGroup.GET("/quote", p.Wellness.Quote)
	wellnessGroup.GET("/mindfulness-quote", p.Wellness.MindfulnessQuote)
	wellnessGroup.GET("/sessions", p.Wellness.Sessions)
	wellnessGroup.GET("/breathing", p.Wellness.Breathing)
	wellnessGroup.GET("/mood", p.Wellness.Mood)

	authed := api.Group("", middleware.SessionAuthMiddleware(p.Sessions))
	authed.GET("/auth/user", p.Auth.CurrentUser)

	projectGroup := authed.Group("/projects")
	projectGroup.GET("", p.Projects.ListProjects)
	projectGroup.POST("", p.Projects.CreateProject)
	projectGroup.GET("/:id", p.Projects.GetProject)
	projectGroup.PUT("/:id", p.Projects.UpdateProject)
	projectGroup.DELETE("/:id", p.Projects.DeleteProject)
	projectGroup.GET("/:id/tasks", p.Projects.GetProjectTasks)

	taskGroup := authed.Group("/tasks")
	taskGroup.GET("", p.Tasks.ListTasks)
	taskGroup.POST("", p.Tasks.CreateTask)
	taskGroup.GET("/:id", p.Tasks.GetTask)
	taskGroup.PUT("/:id", p.Tasks.UpdateTask)
	taskGroup.DELETE("/:id", p.Tasks.DeleteTask)

	habitGroup := authed.Group("/habits")
	habitGroup.GET("", p.Habits.ListHabits)
	habitGroup.POST("", p.Habits.CreateHabit)
	habitGroup.GET("/stats", p.Habits.HabitStats)
	habitGroup.GET("/:id", p.Habits.GetHabit)
	habitGroup.PUT("/:id", p.Habits.UpdateHabit)
	habitGroup.DELETE("/:id", p.Habits.DeleteHabit)
	habitGroup.GET("/:id/entries", p.Habits.HabitEntriesForHabit)

	entryGroup := authed.Group("/habit-entries")
	entryGroup.GET("", p.Habits.ListHabitEntries)
	entryGroup.POST("", p.Habits.CreateHabitEntry)

	communityGroup := authed.Group("/community/posts")
	communityGroup.GET("", p.Community.ListPosts)
	communityGroup.POST("", p.Community.CreatePost)
	communityGroup.GET("/mine", p.Community.MyPosts)

	challengeGroup := authed.Group("/challenges")
	challengeGroup.GET("", p.Challenge.ListActive)
	challengeGroup.GET("/participations", p.Challenge.Participations)
	challengeGroup.PUT("/participations/:id/progress", p.Challenge.UpdateProgress)
	challengeGroup.GET("/:id", p.Challenge.GetChallenge)
	challengeGroup.POST("/:id/join", p.Challenge.Join)
	challengeGroup.GET("/:id/status", p.Challenge.Status)

	adminGroup := authed.Group("/admin", middleware.AdminOnly(p.Admins))
	adminGroup.GET("/users", p.Admin.ListUsers)
	adminGroup.GET("/users/:userId/profile", p.Admin.UserProfile)
	adminGroup.POST("/challenges", p.Admin.CreateChallenge)
}
