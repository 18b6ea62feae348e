package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/whatsafe/whatsafe/internal/detector"
	"github.com/whatsafe/whatsafe/internal/gemini"
)

// analyzeRequest is the shared request body of all analysis endpoints.
// Binding runs go-playground/validator underneath gin.
type analyzeRequest struct {
	Content string `json:"content" binding:"required"`
}

// fullAnalysis pairs the engine result with the independent LLM result. The
// LLM side degrades to an error string; the engine result is always present.
type fullAnalysis struct {
	Engine   detector.AnalysisResult `json:"engine"`
	LLM      *gemini.Analysis        `json:"llm"`
	LLMError string                  `json:"llm_error,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "llm_enabled": s.llm != nil})
}

// handleAnalyzeText runs the analysis engine over the posted transcript.
func (s *Server) handleAnalyzeText(c *gin.Context) {
	req, ok := s.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	result := s.analyzer.Analyze(req.Content)
	c.JSON(http.StatusOK, result)
}

// handleAnalyzeLLM runs only the alternate LLM analysis path.
func (s *Server) handleAnalyzeLLM(c *gin.Context) {
	req, ok := s.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	if s.llm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "llm_not_configured", "detail": "no Gemini API key configured"})
		return
	}

	analysis, err := s.llm.AnalyzeTranscript(c.Request.Context(), req.Content)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "LLM analysis failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "llm_analysis_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// handleAnalyzeFull runs the engine and the LLM path concurrently over the
// same transcript and reports both results independently. An LLM failure is
// carried in the response, not escalated: the two analyses may disagree and
// neither gates the other.
func (s *Server) handleAnalyzeFull(c *gin.Context) {
	req, ok := s.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	var out fullAnalysis
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		out.Engine = s.analyzer.Analyze(req.Content)
		return nil
	})
	g.Go(func() error {
		if s.llm == nil {
			out.LLMError = "llm_not_configured"
			return nil
		}
		analysis, err := s.llm.AnalyzeTranscript(ctx, req.Content)
		if err != nil {
			s.log.ErrorContext(ctx, "LLM analysis failed", "error", err)
			out.LLMError = err.Error()
			return nil
		}
		out.LLM = analysis
		return nil
	})

	// Neither goroutine returns an error; Wait only orders the writes.
	_ = g.Wait()

	c.JSON(http.StatusOK, out)
}

func (s *Server) bindAnalyzeRequest(c *gin.Context) (analyzeRequest, bool) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload_too_large", "detail": "transcript exceeds the configured size limit"})
			return req, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return req, false
	}
	return req, true
}
