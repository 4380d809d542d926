// internal/handlers/entities.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httpserver "gmao/internal/http"
	"gmao/internal/repo"
)

func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	if dec.More() {
		httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON (extra content)"})
		return false
	}
	return true
}

// mountCRUD wires the generic repository operations of one collection under
// a route. Reads are open to any authenticated user; mutations additionally
// pass writeMW. extra callbacks register collection-specific routes on the
// same subrouter.
func mountCRUD[T any](r chi.Router, path string, col *repo.Collection[T], writeMW func(http.Handler) http.Handler, extra ...func(chi.Router)) {
	r.Route(path, func(sr chi.Router) {
		for _, fn := range extra {
			fn(sr)
		}

		sr.Get("/", func(w http.ResponseWriter, req *http.Request) {
			records, err := col.All(req.Context())
			if err != nil {
				httpserver.Error(w, err, "list failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, records)
		})

		sr.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			rec, err := col.Get(req.Context(), id)
			if err != nil {
				httpserver.Error(w, err, "get failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, rec)
		})

		sr.With(writeMW).Post("/", func(w http.ResponseWriter, req *http.Request) {
			var rec T
			if !decodeBody(w, req, &rec) {
				return
			}
			stored, err := col.Add(req.Context(), rec)
			if err != nil {
				httpserver.Error(w, err, "create failed")
				return
			}
			httpserver.JSON(w, http.StatusCreated, stored)
		})

		sr.With(writeMW).Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			var rec T
			if !decodeBody(w, req, &rec) {
				return
			}
			stored, err := col.Update(req.Context(), id, rec)
			if err != nil {
				httpserver.Error(w, err, "update failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, stored)
		})

		sr.With(writeMW).Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			if err := col.Delete(req.Context(), id); err != nil {
				httpserver.Error(w, err, "delete failed")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}
