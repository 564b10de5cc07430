package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/saikat0506/Rezume-AI/internal/cleaner"
	"github.com/saikat0506/Rezume-AI/internal/extract"
	"github.com/saikat0506/Rezume-AI/internal/highlight"
	"github.com/saikat0506/Rezume-AI/internal/styles"
	"github.com/saikat0506/Rezume-AI/pkg/errors"
	"github.com/saikat0506/Rezume-AI/pkg/logger"
	"github.com/saikat0506/Rezume-AI/pkg/types"
)

const (
	maxUploadBytes  = 10 << 20
	llmCallTimeout  = 60 * time.Second
	defaultFilename = "tailored_resume.txt"
)

// Tailorer is the narrow boundary to the AI collaborator, so the provider can
// be swapped without touching the handlers or the highlighter.
type Tailorer interface {
	ExtractKeywords(ctx context.Context, jobDesc string) (string, error)
	Tailor(ctx context.Context, in types.TailorInput) (string, error)
	Review(ctx context.Context, tailoredResume, jobTitle, jobDesc string) (*types.Review, error)
}

type Server struct {
	port   int
	ai     Tailorer
	styles *styles.Registry
	clean  *cleaner.Cleaner
}

func NewServer(port int, ai Tailorer, styleRegistry *styles.Registry) *Server {
	return &Server{
		port:   port,
		ai:     ai,
		styles: styleRegistry,
		clean:  cleaner.NewCleaner(),
	}
}

// Handler builds the route table with the full middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	post := func(h http.HandlerFunc) http.HandlerFunc {
		return chain(h, RequestID, Logger, Recover, CORS, MethodChecker(http.MethodPost, http.MethodOptions))
	}
	mux.HandleFunc("/api/tailor", post(s.handleTailor))
	mux.HandleFunc("/api/highlight", post(s.handleHighlight))
	mux.HandleFunc("/api/review", post(s.handleReview))
	mux.HandleFunc("/api/download", post(s.handleDownload))
	return mux
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("Starting API server", "port", s.port)
	return http.ListenAndServe(addr, s.Handler())
}

// handleTailor runs the full pipeline: extract resume text, pull keywords
// from the job description, tailor, diff against the original, review.
// Keyword and review failures degrade instead of failing the whole request.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Failed to parse multipart form").WithRequestID(requestID))
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		RespondWithError(w, errors.ErrBadRequest("No resume file provided").WithRequestID(requestID))
		return
	}
	defer file.Close()

	jobTitle := r.FormValue("jobTitle")
	jobDesc := r.FormValue("jobDesc")
	if jobTitle == "" || jobDesc == "" {
		RespondWithError(w, errors.ErrBadRequest("jobTitle and jobDesc are required").WithRequestID(requestID))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		RespondWithError(w, errors.ErrInternalServer("Failed to read uploaded file").WithRequestID(requestID))
		return
	}

	resumeText, err := extract.Text(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		RespondWithError(w, errors.ErrUnsupportedFile(err.Error()).WithRequestID(requestID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), llmCallTimeout)
	defer cancel()

	keywords, err := s.ai.ExtractKeywords(ctx, jobDesc)
	if err != nil {
		slog.Warn("keyword extraction failed, tailoring without keywords", "error", err, "request_id", requestID)
		keywords = ""
	}

	tailored, err := s.ai.Tailor(ctx, types.TailorInput{
		ResumeText:     resumeText,
		JobTitle:       jobTitle,
		JobDescription: jobDesc,
		StyleGuidance:  s.styles.Guidance(r.FormValue("style")),
		Keywords:       keywords,
	})
	if err != nil {
		RespondWithError(w, errors.ErrLLMProcessing(err.Error()).WithRequestID(requestID))
		return
	}

	segments, err := highlight.Diff(s.clean.NormalizeLines(resumeText), s.clean.NormalizeLines(tailored))
	if err != nil {
		if stderrors.Is(err, highlight.ErrInputTooLarge) {
			RespondWithError(w, errors.ErrInputTooLarge(err.Error()).WithRequestID(requestID))
			return
		}
		RespondWithError(w, errors.ErrInternalServer(err.Error()).WithRequestID(requestID))
		return
	}

	review, err := s.ai.Review(ctx, tailored, jobTitle, jobDesc)
	if err != nil {
		slog.Warn("review failed, returning tailored resume without review", "error", err, "request_id", requestID)
		review = nil
	}

	RespondWithJSON(w, http.StatusOK, types.TailorResult{
		Keywords:       keywords,
		TailoredResume: tailored,
		Segments:       segments,
		DiffHTML:       highlight.RenderHTML(segments),
		Review:         review,
	})
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	var req types.HighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Invalid request body").WithRequestID(requestID))
		return
	}

	segments, err := highlight.Diff(req.Original, req.Revised)
	if err != nil {
		if stderrors.Is(err, highlight.ErrInputTooLarge) {
			RespondWithError(w, errors.ErrInputTooLarge(err.Error()).WithRequestID(requestID))
			return
		}
		RespondWithError(w, errors.ErrInternalServer(err.Error()).WithRequestID(requestID))
		return
	}

	RespondWithJSON(w, http.StatusOK, types.HighlightResponse{
		Segments: segments,
		HTML:     highlight.RenderHTML(segments),
	})
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	var req types.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Invalid request body").WithRequestID(requestID))
		return
	}
	if req.TailoredResume == "" {
		RespondWithError(w, errors.ErrBadRequest("No tailored resume provided").WithRequestID(requestID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), llmCallTimeout)
	defer cancel()

	review, err := s.ai.Review(ctx, req.TailoredResume, req.JobTitle, req.JobDescription)
	if err != nil {
		RespondWithError(w, errors.ErrLLMProcessing(err.Error()).WithRequestID(requestID))
		return
	}

	RespondWithJSON(w, http.StatusOK, review)
}

// handleDownload echoes content back as a text attachment, mirroring the
// download button of the web client.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GetRequestID(r.Context())

	var req types.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, errors.ErrBadRequest("Invalid request body").WithRequestID(requestID))
		return
	}
	if req.Content == "" {
		RespondWithError(w, errors.ErrBadRequest("No content provided").WithRequestID(requestID))
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = defaultFilename
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, req.Content); err != nil {
		slog.Error("Failed to write download response", "err", err, "request_id", requestID)
	}
}
