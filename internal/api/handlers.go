package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soap-scribe-server/internal/domain"
)

// analyzeTextRequest is the body of POST /analyze-text.
type analyzeTextRequest struct {
	Notes     string `json:"notes" binding:"required"`
	Specialty string `json:"specialty"`
}

// handleAnalyzeText runs the text-to-SOAP pipeline for free-text notes.
func (s *Server) handleAnalyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, bindError(err, "notes"))
		return
	}
	if strings.TrimSpace(req.Notes) == "" {
		s.respondError(c, domain.NewInputError("notes", "encounter notes must not be empty"))
		return
	}

	specialty, err := domain.ParseSpecialty(req.Specialty)
	if err != nil {
		s.respondError(c, err)
		return
	}

	result, err := s.scribe.AnalyzeText(c.Request.Context(), req.Notes, specialty)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":   result,
		"disclaimer": result.Disclaimer,
	})
}

// handleAnalyzeSOAP accepts a structured encounter and returns the flat
// AnalysisResult shape.
func (s *Server) handleAnalyzeSOAP(c *gin.Context) {
	var input domain.EncounterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		s.respondError(c, bindError(err, "encounter_notes"))
		return
	}

	result, err := s.scribe.AnalyzeEncounter(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleTranscribeAudio transcribes an uploaded audio file.
func (s *Server) handleTranscribeAudio(c *gin.Context) {
	audio, header, ok := s.readUpload(c)
	if !ok {
		return
	}

	transcript, err := s.scribe.Transcribe(c.Request.Context(), audio, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcription": transcript,
	})
}

// handleTranscribeAndAnalyze chains transcription into SOAP analysis. The
// specialty comes from a query parameter because the body is multipart.
func (s *Server) handleTranscribeAndAnalyze(c *gin.Context) {
	specialty, err := domain.ParseSpecialty(c.Query("specialty"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	audio, header, ok := s.readUpload(c)
	if !ok {
		return
	}

	result, err := s.scribe.TranscribeAndAnalyze(c.Request.Context(), audio, header.Filename, header.Header.Get("Content-Type"), specialty)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":      result.Analysis,
		"transcription": result.Transcription,
		"disclaimer":    result.Analysis.Disclaimer,
	})
}

// bindError classifies a request-body bind failure: bodies that are not
// parseable JSON get a message saying so, while well-formed bodies missing
// a required field are reported against that field.
func bindError(err error, field string) *domain.ScribeError {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return domain.NewInputError("body", "request body could not be parsed as JSON")
	}
	return domain.NewInputError(field, field+" field is required")
}

// readUpload extracts the "file" part of a multipart upload. It writes
// the 400 response itself when the file is missing or empty.
func (s *Server) readUpload(c *gin.Context) ([]byte, *multipart.FileHeader, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		s.respondError(c, domain.NewInputError("file", "no audio file was sent"))
		return nil, nil, false
	}

	file, err := header.Open()
	if err != nil {
		s.respondError(c, domain.NewInputError("file", "uploaded file could not be read"))
		return nil, nil, false
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		s.respondError(c, domain.NewInputError("file", "uploaded file could not be read"))
		return nil, nil, false
	}
	if len(audio) == 0 {
		s.respondError(c, domain.NewInputError("file", "uploaded audio file is empty"))
		return nil, nil, false
	}

	return audio, header, true
}

// respondError translates a failure into the HTTP error shape. Raw model
// responses stay in the log, not in the client payload.
func (s *Server) respondError(c *gin.Context, err error) {
	se := domain.AsScribeError(err)
	se.RequestID = c.GetString("correlation_id")

	entry := s.logger.WithFields(logrus.Fields{
		"code":           se.Code,
		"correlation_id": se.RequestID,
		"path":           c.Request.URL.Path,
	})
	if se.HTTPStatus() >= http.StatusInternalServerError {
		entry.WithField("details", se.Details).Error(se.Message)
	} else {
		entry.Info(se.Message)
	}

	c.AbortWithStatusJSON(se.HTTPStatus(), gin.H{
		"error": gin.H{
			"code":       se.Code,
			"message":    se.Message,
			"request_id": se.RequestID,
		},
	})
}
