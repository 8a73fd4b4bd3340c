package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soap-scribe-server/internal/domain"
)

// ScribeService composes the documentation pipeline: prompt construction,
// the provider round trip, and response normalization. It holds no state
// across requests and performs no retries; a failed provider call is a
// single reported failure.
type ScribeService struct {
	logger   *logrus.Logger
	provider domain.Provider
	builder  *PromptBuilder
	registry *TemplateRegistry
}

// TranscribeAndAnalyzeResult carries both the generated note and the raw
// transcript for the combined endpoint.
type TranscribeAndAnalyzeResult struct {
	Analysis      *domain.AnalysisResult
	Transcription string
}

// NewScribeService creates a new scribe service
func NewScribeService(logger *logrus.Logger, provider domain.Provider, registry *TemplateRegistry) *ScribeService {
	return &ScribeService{
		logger:   logger,
		provider: provider,
		builder:  NewPromptBuilder(registry),
		registry: registry,
	}
}

// AnalyzeText runs the full text-to-SOAP pipeline for the given notes.
// Empty text is not rejected here: the prompt simply carries an empty
// quotation (a silent recording still produces a note of empty fields).
// Rejecting empty client notes is the HTTP boundary's job.
func (s *ScribeService) AnalyzeText(ctx context.Context, notes string, specialty domain.Specialty) (*domain.AnalysisResult, error) {
	startTime := time.Now()
	s.logger.WithFields(logrus.Fields{
		"specialty":  specialty,
		"notes_size": len(notes),
	}).Info("Starting SOAP analysis")

	prompt := s.builder.Build(notes, specialty)

	completion, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, domain.NewNoteGenerationError(err)
	}

	result, err := Normalize(completion)
	if err != nil {
		s.logger.WithError(err).WithField("raw_response", snippet(completion)).Error("Failed to normalize model response")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"specialty":       specialty,
		"processing_time": time.Since(startTime),
		"cdi_codes":       len(result.CDICodes),
	}).Info("SOAP analysis completed")

	return result, nil
}

// AnalyzeEncounter folds the optional patient demographics and context
// into the note text, then runs the default-specialty pipeline.
func (s *ScribeService) AnalyzeEncounter(ctx context.Context, input domain.EncounterInput) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(input.EncounterNotes) == "" {
		return nil, domain.NewInputError("encounter_notes", "encounter notes must not be empty")
	}
	if input.PatientAge < 0 {
		return nil, domain.NewInputError("patient_age", "patient age must be a positive integer")
	}

	var b strings.Builder
	if input.PatientAge > 0 {
		fmt.Fprintf(&b, "Patient age: %d\n", input.PatientAge)
	}
	if input.PatientGender != "" {
		fmt.Fprintf(&b, "Patient gender: %s\n", input.PatientGender)
	}
	if input.AdditionalContext != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", input.AdditionalContext)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(input.EncounterNotes)

	return s.AnalyzeText(ctx, b.String(), domain.SpecialtyDefault)
}

// Transcribe sends uploaded audio to the speech-to-text provider and
// returns the transcript.
func (s *ScribeService) Transcribe(ctx context.Context, audio []byte, filename, contentType string) (string, error) {
	if len(audio) == 0 {
		return "", domain.NewInputError("file", "uploaded audio file is empty")
	}

	s.logger.WithFields(logrus.Fields{
		"filename":     filename,
		"content_type": contentType,
		"audio_size":   len(audio),
	}).Info("Starting audio transcription")

	text, err := s.provider.Transcribe(ctx, audio, filename, contentType)
	if err != nil {
		return "", domain.NewTranscriptionError(err)
	}

	s.logger.WithField("transcript_size", len(text)).Info("Audio transcription completed")
	return text, nil
}

// TranscribeAndAnalyze chains transcription into the SOAP pipeline.
// Failures keep their stage attribution: a transcription failure is
// reported distinctly from a note generation failure.
func (s *ScribeService) TranscribeAndAnalyze(ctx context.Context, audio []byte, filename, contentType string, specialty domain.Specialty) (*TranscribeAndAnalyzeResult, error) {
	transcript, err := s.Transcribe(ctx, audio, filename, contentType)
	if err != nil {
		return nil, err
	}

	result, err := s.AnalyzeText(ctx, transcript, specialty)
	if err != nil {
		return nil, err
	}

	return &TranscribeAndAnalyzeResult{
		Analysis:      result,
		Transcription: transcript,
	}, nil
}
