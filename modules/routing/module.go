package routing

import (
	"github.com/hiqsoft/routecore/modules/routing/infrastructure/persistence"
	"github.com/hiqsoft/routecore/modules/routing/presentation/controllers"
	"github.com/hiqsoft/routecore/modules/routing/services"
	"github.com/hiqsoft/routecore/pkg/application"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "routing"
}

func (m *Module) Register(app application.Application) error {
	bus := app.EventPublisher()
	secret := app.Config().Auth.Secret

	unitRepo := persistence.NewUnitRepository()
	shiftRepo := persistence.NewShiftRepository()
	workstationRepo := persistence.NewWorkstationRepository()
	processRepo := persistence.NewProcessRepository()
	routeRepo := persistence.NewRouteRepository()
	productRepo := persistence.NewProductRepository()

	app.RegisterControllers(
		controllers.NewUnitController(services.NewUnitService(unitRepo, bus), secret),
		controllers.NewShiftController(services.NewShiftService(shiftRepo, bus), secret),
		controllers.NewWorkstationController(services.NewWorkstationService(workstationRepo, shiftRepo, bus), secret),
		controllers.NewProcessController(services.NewProcessService(processRepo, bus), secret),
		controllers.NewRouteController(services.NewRouteService(routeRepo, bus), secret),
		controllers.NewProductController(services.NewProductService(productRepo, routeRepo, bus), secret),
	)
	return nil
}
