package server

import (
	"github.com/hiqsoft/routecore/pkg/application"
	"github.com/hiqsoft/routecore/pkg/middleware"
	"github.com/hiqsoft/routecore/pkg/server"
)

// Default assembles the HTTP server with the standard middleware chain.
// Order matters: the logger runs first so every later stage can log, and the
// pool must be in the context before any controller executes.
func Default(app application.Application) *server.HTTPServer {
	conf := app.Config()
	app.RegisterMiddleware(
		middleware.WithLogger(app.Logger(), conf.RequestIDHeader),
		middleware.ProvidePool(app.Pool()),
		middleware.Cors(conf.Origin),
	)
	return server.NewHTTPServer(app)
}
