package controllers_fx

import (
	"go.uber.org/fx"
	"luminous/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewProjectController),
	fx.Provide(controllers.NewTaskController),
	fx.Provide(controllers.NewHabitController),
	fx.Provide(controllers.NewCommunityController),
	fx.Provide(controllers.NewChallengeController),
	fx.Provide(controllers.NewWellnessController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewHealthController))
