package intake

import (
	"strings"
	"time"

	"github.com/trilio-crm/backend/internal/models"
)

// SessionForm is the contact form captured during a demo/recording session.
type SessionForm struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Situation string `json:"situation"`
	Zipcode   string `json:"zipcode"`
}

// SessionRecording is the optional audio capture for the session.
type SessionRecording struct {
	Transcription string `json:"transcription"`
	AudioRef      string `json:"audio_ref"`
	Duration      string `json:"duration"`
}

// SessionSummary holds the lists extracted from the transcript by the
// analyzer. Any of the lists may be empty or absent.
type SessionSummary struct {
	KeyPoints   []string `json:"key_points"`
	Concerns    []string `json:"concerns"`
	SmallThings []string `json:"small_things"`
}

const (
	placeholderKeyPoints   = "No key points recorded"
	placeholderConcerns    = "No concerns recorded"
	placeholderPreferences = "No preferences recorded"

	defaultFacility = "Sunrise Gardens"
	defaultRep      = "AI Agent"
)

// CreateLeadFromSession converts a completed intake session into a
// well-formed lead. It never fails: absent summary lists become placeholder
// text so the result is always complete and renderable.
func CreateLeadFromSession(id string, form SessionForm, rec *SessionRecording, summary SessionSummary, now time.Time) models.Lead {
	dateStr := now.Format("2006-01-02")
	timeStr := now.Format("1/2/2006, 3:04:05 PM")
	fullName := strings.TrimSpace(form.FirstName + " " + form.LastName)

	situation := form.Situation
	if situation == "" {
		situation = "Self"
	}

	note := models.IntakeNote{
		LeadSource:         "AI Demo Session",
		Zipcode:            orDefault(form.Zipcode, "90001"),
		Caller:             fullName + " (" + situation + ")",
		DateTime:           timeStr,
		SalesRep:           defaultRep,
		SituationSummary:   orPlaceholder(summary.KeyPoints, placeholderKeyPoints),
		CareNeeds:          orPlaceholder(summary.Concerns, placeholderConcerns),
		BudgetFinancial:    []string{"Budget to be discussed during follow-up"},
		DecisionMakers:     []string{fullName},
		Timeline:           "To be determined",
		Preferences:        orPlaceholder(summary.SmallThings, placeholderPreferences),
		Objections:         []string{"None recorded yet"},
		SalesRepAssessment: []string{"AI-generated lead from demo session", "Requires human follow-up"},
		NextStep:           []string{"Follow-up call scheduled", "Review AI transcript and analysis"},
	}

	lead := models.Lead{
		ID:              id,
		Name:            fullName,
		ContactPerson:   fullName,
		ContactRelation: "Self",
		ContactPhone:    form.Phone,
		ContactEmail:    form.Email,
		CareLevel:       InferCareLevel(form.Situation),
		Source:          models.SourcePhoneCall,
		Stage:           models.StageInquiry,
		Facility:        defaultFacility,
		SalesRep:        defaultRep,
		InquiryDate:     dateStr,
		InitialContact:  dateStr,
		LastContactDate: dateStr,
		NextActivity:    "Follow-up call scheduled",
		IntakeNote:      note,
		Interactions:    []models.InteractionEntry{},
	}

	if rec != nil {
		transcript := rec.Transcription
		if transcript == "" {
			transcript = "No transcript available"
		}
		lead.CallTranscripts = []models.CallTranscript{{
			ID:          id + "-tr1",
			Date:        dateStr,
			Time:        now.Format("3:04 PM"),
			Duration:    orDefault(rec.Duration, "N/A"),
			Type:        "call",
			RepName:     defaultRep,
			ContactName: fullName,
			Messages: []models.TranscriptMessage{
				{Speaker: "contact", Text: transcript, Timestamp: "0:00"},
			},
		}}
	}

	return lead
}

// InferCareLevel is a naive substring match against the free-text situation
// field. It is a heuristic, not a classifier: situations without one of the
// literal keywords default to Assisted Living.
func InferCareLevel(situation string) models.CareLevel {
	switch {
	case strings.Contains(situation, "Memory"):
		return models.CareMemoryCare
	case strings.Contains(situation, "Skilled"):
		return models.CareSkilledNursing
	case strings.Contains(situation, "Independent"):
		return models.CareIndependentLiving
	default:
		return models.CareAssistedLiving
	}
}

func orPlaceholder(list []string, placeholder string) []string {
	if len(list) == 0 {
		return []string{placeholder}
	}
	return list
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
