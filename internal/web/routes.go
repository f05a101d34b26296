// Package web serves the BrandCraft page and the JSON endpoint it posts to.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/export"
	"github.com/ziadkadry99/brandcraft/internal/generator"
	"github.com/ziadkadry99/brandcraft/internal/logo"
)

const generationIDHeader = "X-Generation-ID"

// Generator produces a brand identity for a request.
type Generator interface {
	Generate(ctx context.Context, req brand.Request) (*generator.Outcome, error)
}

// RegisterRoutes mounts the page, the generate endpoint and the logo endpoint.
func RegisterRoutes(r chi.Router, gen Generator) {
	r.Get("/", handleIndex())
	r.Post("/", handleFormSubmit(gen))
	r.Post("/generate", handleGenerate(gen))
	r.Get("/logo.svg", handleLogo())
}

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, http.StatusOK, newPageData(brand.Request{Style: string(brand.DefaultStyle)}))
	}
}

func handleGenerate(gen Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req brand.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		out, err := gen.Generate(r.Context(), req)
		if errors.Is(err, generator.ErrIdeaRequired) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Business idea is required"})
			return
		}
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("generating brand identity")
			http.Error(w, `{"error":"generation failed"}`, http.StatusInternalServerError)
			return
		}

		if out.ID != "" {
			w.Header().Set(generationIDHeader, out.ID)
		}
		writeJSON(w, http.StatusOK, out.Result)
	}
}

// handleFormSubmit serves the plain HTML form post. Callers that ask for
// JSON get the same response as /generate.
func handleFormSubmit(gen Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		req := brand.Request{
			Idea:     r.FormValue("idea"),
			Style:    r.FormValue("style"),
			Audience: r.FormValue("audience"),
		}
		data := newPageData(req)

		out, err := gen.Generate(r.Context(), req)
		if err != nil {
			status := http.StatusInternalServerError
			data.Error = "Something went wrong. Please try again."
			if errors.Is(err, generator.ErrIdeaRequired) {
				status = http.StatusBadRequest
				data.Error = "Business idea is required"
			} else {
				hlog.FromRequest(r).Error().Err(err).Msg("generating brand identity")
			}
			if wantsJSON(r) {
				writeJSON(w, status, map[string]string{"error": data.Error})
				return
			}
			renderPage(w, r, status, data)
			return
		}

		if wantsJSON(r) {
			if out.ID != "" {
				w.Header().Set(generationIDHeader, out.ID)
			}
			writeJSON(w, http.StatusOK, out.Result)
			return
		}

		data.Result = out.Result
		data.ID = out.ID
		data.CopyText = export.CopyText(out.Result)
		data.Logo = template.HTML(logo.Render(out.Result.PrimaryName(), string(brand.StyleOrDefault(req.Style)), out.Result.PrimaryColor()))
		renderPage(w, r, http.StatusOK, data)
	}
}

func handleLogo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		name := strings.TrimSpace(q.Get("name"))
		if name == "" {
			http.Error(w, `{"error":"name is required"}`, http.StatusBadRequest)
			return
		}
		color := q.Get("color")
		if color == "" {
			color = brand.NeutralColor
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte(logo.Render(name, string(brand.StyleOrDefault(q.Get("style"))), color)))
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("rendering page")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
