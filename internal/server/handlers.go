package server

import (
	"bytes"
	"log"
	"net/http"
	"path/filepath"

	"github.com/jonathan/cv-dashboard/internal/rendering"
)

// EntryResponse represents the response for /api/entries/{title}
type EntryResponse struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Description string `json:"description"`
}

// handlePage renders the dashboard page. ?layout= overrides the configured layout.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	layout := s.layout
	if name := r.URL.Query().Get("layout"); name != "" {
		l, err := rendering.ParseLayout(name)
		if err != nil {
			s.errorFrom(w, &ErrValidation{Field: "layout", Message: err.Error()})
			return
		}
		layout = l
	}

	d := s.builder.Build("html")

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, d, layout); err != nil {
		log.Printf("[render] %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[render] failed to write page: %v", err)
	}
}

// handleDashboard returns the whole dashboard as JSON
func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.builder.Build("json"))
}

// handleEntry returns the institution and description of one entry
func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	d := s.builder.Build("json")
	if !d.Timeline.Available() {
		s.errorFrom(w, &ErrSectionUnavailable{Section: "timeline", Notice: d.Timeline.Notice})
		return
	}

	detail, ok := d.Timeline.Data.Lookup[title]
	if !ok {
		s.errorFrom(w, &ErrEntryNotFound{Title: title})
		return
	}

	s.jsonResponse(w, http.StatusOK, EntryResponse{
		Title:       title,
		Institution: detail.Institution,
		Description: detail.Description,
	})
}

// handleImage serves a file from the image directory
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("file")
	if s.imageDir == "" || name != filepath.Base(name) || name == "." || name == ".." {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.imageDir, name))
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
