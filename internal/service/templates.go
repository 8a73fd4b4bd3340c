package service

import (
	"encoding/json"
	"fmt"

	"github.com/soap-scribe-server/internal/domain"
)

// TemplateRegistry is the immutable specialty-to-template mapping, built
// once at startup. Lookup is total over the Specialty set and falls back
// to the default template for anything it does not recognize; unknown
// specialty strings are rejected earlier, at request deserialization.
type TemplateRegistry struct {
	templates map[domain.Specialty]domain.Template
	schemas   map[domain.Specialty]string
}

// NewTemplateRegistry builds the registry. Every specialty template
// carries the full default field set; variants differ only in how the
// field descriptions steer the model.
func NewTemplateRegistry() *TemplateRegistry {
	templates := map[domain.Specialty]domain.Template{
		domain.SpecialtyDefault:     defaultTemplate(),
		domain.SpecialtyCardiology:  cardiologyTemplate(),
		domain.SpecialtyPsychiatry:  psychiatryTemplate(),
		domain.SpecialtyDermatology: dermatologyTemplate(),
	}

	schemas := make(map[domain.Specialty]string, len(templates))
	for specialty, tmpl := range templates {
		data, err := json.Marshal(tmpl)
		if err != nil {
			// Templates are static literals; a marshal failure here is a
			// programming error, not a runtime condition.
			panic(fmt.Sprintf("failed to serialize %s template: %v", specialty, err))
		}
		schemas[specialty] = string(data)
	}

	return &TemplateRegistry{templates: templates, schemas: schemas}
}

// Lookup returns the template for the given specialty, falling back to
// the default template when the specialty is not in the mapping.
func (r *TemplateRegistry) Lookup(specialty domain.Specialty) domain.Template {
	if tmpl, ok := r.templates[specialty]; ok {
		return tmpl
	}
	return r.templates[domain.SpecialtyDefault]
}

// SchemaJSON returns the canonical serialized form of the specialty's
// template, with stable field order. This is the exact text embedded into
// prompts.
func (r *TemplateRegistry) SchemaJSON(specialty domain.Specialty) string {
	if schema, ok := r.schemas[specialty]; ok {
		return schema
	}
	return r.schemas[domain.SpecialtyDefault]
}

func defaultTemplate() domain.Template {
	return domain.Template{Fields: []domain.TemplateField{
		{Name: "subjective", Description: "Patient-reported symptoms, history of present illness, and relevant history in the patient's framing"},
		{Name: "objective", Description: "Observable findings: vital signs, physical exam findings, and test results stated in the encounter"},
		{Name: "assessment", Description: "Clinical assessment synthesizing the subjective and objective findings"},
		{Name: "plan", Description: "Treatment plan, orders, prescriptions, and patient instructions"},
		{Name: "clinical_impressions", Description: "Working diagnoses or differential impressions supported by the encounter"},
		{Name: "key_findings", Description: "The most clinically significant findings from the encounter"},
		{Name: "critical_points", Description: "A point requiring immediate clinician attention", List: true},
		{Name: "cdi_codes", Description: "A suggested ICD-10 or CPT code with a short rationale", List: true},
		{Name: "next_steps", Description: "A concrete next step in the care pathway", List: true},
		{Name: "follow_up_priorities", Description: "A follow-up item, highest clinical priority first", List: true},
		{Name: "recommendations", Description: "A recommendation for the patient or care team", List: true},
	}}
}

func cardiologyTemplate() domain.Template {
	return domain.Template{Fields: []domain.TemplateField{
		{Name: "subjective", Description: "Cardiac symptoms as reported: chest pain character and radiation, dyspnea, palpitations, syncope, exertional tolerance"},
		{Name: "objective", Description: "Cardiovascular exam findings, vital signs, ECG, echo, troponin or other cardiac test results stated in the encounter"},
		{Name: "assessment", Description: "Cardiac assessment including risk stratification supported by the encounter"},
		{Name: "plan", Description: "Cardiac treatment plan: medications, interventions, monitoring, and activity guidance"},
		{Name: "clinical_impressions", Description: "Working cardiac diagnoses or differentials supported by the encounter"},
		{Name: "key_findings", Description: "The most significant cardiac findings from the encounter"},
		{Name: "critical_points", Description: "A finding suggesting acute coronary syndrome, arrhythmia, or decompensation needing immediate attention", List: true},
		{Name: "cdi_codes", Description: "A suggested ICD-10 or CPT code relevant to the cardiac presentation, with a short rationale", List: true},
		{Name: "next_steps", Description: "A concrete next step such as serial troponins, stress testing, or cardiology referral", List: true},
		{Name: "follow_up_priorities", Description: "A cardiac follow-up item, highest clinical priority first", List: true},
		{Name: "recommendations", Description: "A recommendation on lifestyle, medication adherence, or symptom escalation", List: true},
	}}
}

func psychiatryTemplate() domain.Template {
	return domain.Template{Fields: []domain.TemplateField{
		{Name: "subjective", Description: "Reported mood, affect, sleep, appetite, stressors, and psychiatric history in the patient's framing"},
		{Name: "objective", Description: "Mental status examination findings: appearance, speech, thought process, cognition, insight"},
		{Name: "assessment", Description: "Psychiatric assessment including safety and risk assessment supported by the encounter"},
		{Name: "plan", Description: "Psychiatric treatment plan: psychotherapy, medications, safety planning, and level of care"},
		{Name: "clinical_impressions", Description: "Working psychiatric diagnoses or differentials supported by the encounter"},
		{Name: "key_findings", Description: "The most significant psychiatric findings from the encounter"},
		{Name: "critical_points", Description: "A safety concern such as suicidal or homicidal ideation, psychosis, or inability to self-care", List: true},
		{Name: "cdi_codes", Description: "A suggested ICD-10 or CPT code relevant to the psychiatric presentation, with a short rationale", List: true},
		{Name: "next_steps", Description: "A concrete next step such as medication titration, referral, or screening instruments", List: true},
		{Name: "follow_up_priorities", Description: "A psychiatric follow-up item, highest clinical priority first", List: true},
		{Name: "recommendations", Description: "A recommendation on coping strategies, support systems, or crisis resources", List: true},
	}}
}

func dermatologyTemplate() domain.Template {
	return domain.Template{Fields: []domain.TemplateField{
		{Name: "subjective", Description: "Reported skin complaints: onset, duration, itching or pain, triggers, and prior treatments"},
		{Name: "objective", Description: "Lesion morphology, distribution, color, and size, plus dermoscopy or biopsy results stated in the encounter"},
		{Name: "assessment", Description: "Dermatologic assessment synthesizing history and lesion findings"},
		{Name: "plan", Description: "Dermatologic treatment plan: topical or systemic therapy, procedures, and skin care instructions"},
		{Name: "clinical_impressions", Description: "Working dermatologic diagnoses or differentials supported by the encounter"},
		{Name: "key_findings", Description: "The most significant dermatologic findings from the encounter"},
		{Name: "critical_points", Description: "A finding concerning for malignancy, severe drug reaction, or infection needing urgent attention", List: true},
		{Name: "cdi_codes", Description: "A suggested ICD-10 or CPT code relevant to the dermatologic presentation, with a short rationale", List: true},
		{Name: "next_steps", Description: "A concrete next step such as biopsy, patch testing, or dermatology referral", List: true},
		{Name: "follow_up_priorities", Description: "A dermatologic follow-up item, highest clinical priority first", List: true},
		{Name: "recommendations", Description: "A recommendation on sun protection, skin care, or lesion monitoring", List: true},
	}}
}
