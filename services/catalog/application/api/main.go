package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/app"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/errhttp"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/handlers"
	appsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/services"
)

// CatalogRoutes registers the catalog endpoints and the web page on r.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	production := a.Config != nil && a.Config.Environment == config.EnvProduction
	errs := errhttp.NewResponder(production, a.Logger)

	r.Get("/", handlers.IndexHandler)
	r.Handle("/static/*", handlers.StaticHandler())
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewGetItemsHandler(svcs, errs).Execute)
		r.Post("/submit", handlers.NewPostSubmitHandler(svcs, errs).Execute)
	})
	r.Get("/choice", handlers.NewGetChoiceHandler(svcs, errs).Execute)
}
