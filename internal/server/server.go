// Package server provides the HTTP JSON API over the tailoring entry point.
// It is the boundary the interactive UI consumes; it carries no UI itself.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Tailorer is the entry-point capability the server exposes.
type Tailorer interface {
	GenerateResumes(ctx context.Context, pointsText, jobDescriptionText string) (string, string, string, string)
}

// TailorRequest is the JSON body for POST /v1/tailor.
type TailorRequest struct {
	// ResumePoints is newline-delimited; one experience point per line.
	ResumePoints   string `json:"resume_points" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// Validate validates the request using the validator.
func (r *TailorRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TailorResponse is the fixed 4-field response shape.
type TailorResponse struct {
	SkillsSummary       string `json:"skills_summary"`
	Professional        string `json:"professional"`
	AchievementOriented string `json:"achievement_oriented"`
	Creative            string `json:"creative"`
}

// Server is the HTTP server.
type Server struct {
	httpServer *http.Server
	tailorer   Tailorer
}

// New creates a server for the given entry point, listening on addr.
func New(addr string, tailorer Tailorer) *Server {
	s := &Server{tailorer: tailorer}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/tailor", requireMethod(http.MethodPost, s.handleTailor))
	mux.HandleFunc("/health", requireMethod(http.MethodGet, s.handleHealth))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.withLogging(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the configured handler chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("[%s] tailoring request: %d bytes of points, %d bytes of job description",
		requestID, len(req.ResumePoints), len(req.JobDescription))

	skills, professional, achievement, creative := s.tailorer.GenerateResumes(r.Context(), req.ResumePoints, req.JobDescription)

	w.Header().Set("X-Request-ID", requestID)
	s.jsonResponse(w, http.StatusOK, TailorResponse{
		SkillsSummary:       skills,
		Professional:        professional,
		AchievementOriented: achievement,
		Creative:            creative,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// requireMethod emulates Go 1.22 ServeMux method patterns on older
// toolchains: a method mismatch yields 405 with an Allow header, and
// GET patterns also accept HEAD.
func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method && !(method == http.MethodGet && r.Method == http.MethodHead) {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
