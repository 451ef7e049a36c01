package core

import (
	"github.com/hiqsoft/routecore/modules/core/infrastructure/persistence"
	"github.com/hiqsoft/routecore/modules/core/presentation/controllers"
	"github.com/hiqsoft/routecore/modules/core/services"
	"github.com/hiqsoft/routecore/pkg/application"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	users := persistence.NewUserRepository()
	authService := services.NewAuthService(users, users, app.Config().Auth)
	app.RegisterControllers(
		controllers.NewAuthController(authService, app.Config().RateLimit),
	)
	return nil
}
