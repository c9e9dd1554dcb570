package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/piperubio/registry/registry"
)

// RegistryHandle serves the registry index as stored.
func (s *ServerHandler) RegistryHandle(w http.ResponseWriter, r *http.Request) {
	index, err := s.Source.Index(r.Context())
	countRead("index", err)

	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load registry index", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load registry")

		return
	}

	writeJSONBytes(w, http.StatusOK, index)
}

// ComponentHandle serves one component document as stored. Any failure,
// including malformed JSON on disk, is reported as not found.
func (s *ServerHandler) ComponentHandle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if !registry.ValidName(name) {
		countRead("component", registry.ErrNotFound)
		writeJSONError(w, http.StatusNotFound, "Component not found")

		return
	}

	doc, err := s.Source.Component(r.Context(), name)
	countRead("component", err)

	if err != nil {
		slog.WarnContext(r.Context(), "Could not read component", "name", name, "error", err)
		writeJSONError(w, http.StatusNotFound, "Component not found")

		return
	}

	writeJSONBytes(w, http.StatusOK, doc)
}

// CodeHandle serves a component with the contents of its source files.
func (s *ServerHandler) CodeHandle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if !registry.ValidName(name) {
		countRead("code", registry.ErrNotFound)
		writeJSONError(w, http.StatusNotFound, "Component source code not found")

		return
	}

	code, err := s.Source.Code(r.Context(), name)
	countRead("code", err)

	if err != nil {
		slog.WarnContext(r.Context(), "Could not read component code", "name", name, "error", err)
		writeJSONError(w, http.StatusNotFound, "Component source code not found")

		return
	}

	writeJSON(w, r, http.StatusOK, code)
}
