package modules

import (
	"github.com/hiqsoft/routecore/modules/core"
	"github.com/hiqsoft/routecore/modules/routing"
	"github.com/hiqsoft/routecore/pkg/application"
)

// BuiltInModules is the default module set, registered in order.
var BuiltInModules = []application.Module{
	core.NewModule(),
	routing.NewModule(),
}

func Load(app application.Application) error {
	return application.Load(app, BuiltInModules...)
}
