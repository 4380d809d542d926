// internal/handlers/stock.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpserver "gmao/internal/http"
	"gmao/internal/service"
)

// mountStockEval registers the read-only threshold evaluator views on the
// stock subrouter.
func mountStockEval(stock *service.Stock) func(chi.Router) {
	return func(sr chi.Router) {
		sr.Get("/levels", func(w http.ResponseWriter, req *http.Request) {
			levels, err := stock.Levels(req.Context())
			if err != nil {
				httpserver.Error(w, err, "stock evaluation failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, levels)
		})

		sr.Get("/alerts", func(w http.ResponseWriter, req *http.Request) {
			alerts, err := stock.Alerts(req.Context())
			if err != nil {
				httpserver.Error(w, err, "stock evaluation failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, alerts)
		})
	}
}
