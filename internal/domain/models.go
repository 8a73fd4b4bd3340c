package domain

// Disclaimer is attached to every generated note regardless of what the
// model returned for it.
const Disclaimer = "This AI-generated documentation is a drafting aid and is not a substitute for professional medical judgment. Review and verify all content before use in patient care."

// Specialty selects which note template the prompt is built from.
type Specialty string

// Closed set of supported specialties.
const (
	SpecialtyDefault     Specialty = "default"
	SpecialtyCardiology  Specialty = "cardiology"
	SpecialtyPsychiatry  Specialty = "psychiatry"
	SpecialtyDermatology Specialty = "dermatology"
)

// AllSpecialties lists every supported specialty.
func AllSpecialties() []Specialty {
	return []Specialty{SpecialtyDefault, SpecialtyCardiology, SpecialtyPsychiatry, SpecialtyDermatology}
}

// ParseSpecialty validates a request-supplied specialty value. An empty
// value means the caller did not ask for one and maps to the default.
// Matching is case-insensitive because frontends send both "Cardiology"
// and "cardiology".
func ParseSpecialty(s string) (Specialty, error) {
	if s == "" {
		return SpecialtyDefault, nil
	}
	normalized := Specialty(lowerASCII(s))
	for _, known := range AllSpecialties() {
		if normalized == known {
			return known, nil
		}
	}
	return "", NewInputError("specialty", "unknown specialty: "+s)
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// EncounterInput is the raw material for one SOAP analysis request.
// It exists only for the duration of a single request.
type EncounterInput struct {
	EncounterNotes    string `json:"encounter_notes" binding:"required"`
	PatientAge        int    `json:"patient_age,omitempty"`
	PatientGender     string `json:"patient_gender,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// AnalysisResult is the normalized SOAP note shape returned to clients.
// Every field is always present in serialized output, even when empty:
// scalars default to "" and lists to [] (never null).
type AnalysisResult struct {
	Subjective          string   `json:"subjective"`
	Objective           string   `json:"objective"`
	Assessment          string   `json:"assessment"`
	Plan                string   `json:"plan"`
	ClinicalImpressions string   `json:"clinical_impressions"`
	KeyFindings         string   `json:"key_findings"`
	CriticalPoints      []string `json:"critical_points"`
	CDICodes            []string `json:"cdi_codes"`
	NextSteps           []string `json:"next_steps"`
	FollowUpPriorities  []string `json:"follow_up_priorities"`
	Recommendations     []string `json:"recommendations"`
	Disclaimer          string   `json:"disclaimer"`
}
