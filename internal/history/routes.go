package history

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/ziadkadry99/brandcraft/internal/export"
)

// RegisterRoutes mounts the history API, page and download endpoints.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/history", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Get("/{id}", handleGet(store))
	})
	r.Get("/history", handlePage(store))
	r.Get("/download/{id}", handleDownload(store))
}

func pageParams(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = n
	}
	if n, err := strconv.Atoi(q.Get("offset")); err == nil {
		offset = n
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pageParams(r)

		gens, err := store.List(r.Context(), limit, offset)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("listing history")
			http.Error(w, `{"error":"failed to list history"}`, http.StatusInternalServerError)
			return
		}
		total, err := store.Count(r.Context())
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("counting history")
			http.Error(w, `{"error":"failed to count history"}`, http.StatusInternalServerError)
			return
		}
		if gens == nil {
			gens = []Generation{}
		}

		writeJSON(w, http.StatusOK, Page{Generations: gens, Total: total, Limit: limit, Offset: offset})
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, `{"error":"failed to load generation"}`, http.StatusInternalServerError)
			return
		}
		if g == nil {
			http.Error(w, `{"error":"generation not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

func handlePage(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pageParams(r)
		gens, err := store.List(r.Context(), limit, offset)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("listing history")
			http.Error(w, "failed to list history", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, gens); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("rendering history page")
		}
	}
}

func handleDownload(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "failed to load generation", http.StatusInternalServerError)
			return
		}
		if g == nil {
			http.Error(w, "generation not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", export.MIMEType+"; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
		w.Write([]byte(export.DownloadText(g.Idea, g.Style, g.Result)))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
