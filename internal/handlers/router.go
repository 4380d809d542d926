// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gmao/internal/middleware"
	"gmao/internal/models"
	"gmao/internal/repo"
	"gmao/internal/service"
)

// RegisterRoutes mounts the whole service-layer API: local auth, per-entity
// CRUD, the tool loan transitions and the stock evaluator views.
func RegisterRoutes(mux *chi.Mux, reg *repo.Registry) {
	authn := service.NewAuthenticator(reg.Users)
	loans := service.NewLoans(reg.Tools)
	stock := service.NewStock(reg.Stock)

	mux.Post("/auth/login", LoginHandler(authn))
	mux.Post("/auth/logout", LogoutHandler())
	mux.With(middleware.RequireAuth(reg)).Get("/auth/me", MeHandler())

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Route("/api", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(reg))

		manager := middleware.RequireRole(models.RoleManager)
		technician := middleware.RequireRole(models.RoleTechnician)

		mountCRUD(sr, "/equipment", reg.Equipment, manager)
		// Technicians record their own work orders.
		mountCRUD(sr, "/work-orders", reg.WorkOrders, technician)
		mountCRUD(sr, "/stock", reg.Stock, manager, mountStockEval(stock))
		mountCRUD(sr, "/tools", reg.Tools, manager, mountLoans(loans, technician))
		mountCRUD(sr, "/third-parties", reg.ThirdParties, manager)
		mountCRUD(sr, "/personnel", reg.Personnel, manager)

		// Account management is admin territory.
		sr.With(middleware.RequireRole(models.RoleAdmin)).
			Group(func(gr chi.Router) { mountUsers(gr, reg.Users) })
	})
}
