package models

import "time"

// Stage is a lead's current pipeline phase. Stages are conceptually ordered
// but any stage is reachable from any other.
type Stage string

const (
	StageInquiry    Stage = "inquiry"
	StageConnection Stage = "connection"
	StagePreTour    Stage = "pre_tour"
	StagePostTour   Stage = "post_tour"
	StageDeposit    Stage = "deposit"
	StageMoveIn     Stage = "move_in"
)

type CareLevel string

const (
	CareAssistedLiving    CareLevel = "Assisted Living"
	CareIndependentLiving CareLevel = "Independent Living"
	CareMemoryCare        CareLevel = "Memory Care"
	CareSkilledNursing    CareLevel = "Skilled Nursing"
)

type Source string

const (
	SourceDigitalAds Source = "Digital Ads"
	SourceWebsite    Source = "Website"
	SourcePhoneCall  Source = "Phone Call"
	SourceWalkIn     Source = "Walk-in"
	SourceReferral   Source = "Referral"
)

type InteractionType string

const (
	InteractionCall        InteractionType = "call"
	InteractionEmail       InteractionType = "email"
	InteractionTour        InteractionType = "tour"
	InteractionNote        InteractionType = "note"
	InteractionStageChange InteractionType = "stage_change"
	InteractionMeeting     InteractionType = "meeting"
)

// IntakeNote is the structured first-call capture.
type IntakeNote struct {
	LeadSource         string   `json:"lead_source"`
	Zipcode            string   `json:"zipcode"`
	Caller             string   `json:"caller"`
	DateTime           string   `json:"date_time"`
	SalesRep           string   `json:"sales_rep"`
	SituationSummary   []string `json:"situation_summary"`
	CareNeeds          []string `json:"care_needs"`
	BudgetFinancial    []string `json:"budget_financial"`
	DecisionMakers     []string `json:"decision_makers"`
	Timeline           string   `json:"timeline"`
	Preferences        []string `json:"preferences"`
	Objections         []string `json:"objections"`
	SalesRepAssessment []string `json:"sales_rep_assessment"`
	NextStep           []string `json:"next_step"`
}

// PostTourNote is the structured capture after a facility visit. Present on a
// lead only once a tour has occurred; presence is caller-determined.
type PostTourNote struct {
	TourDate           string   `json:"tour_date"`
	Attendees          string   `json:"attendees"`
	TourGuide          string   `json:"tour_guide"`
	FirstImpressions   []string `json:"first_impressions"`
	EmotionalSignals   []string `json:"emotional_signals"`
	Likes              []string `json:"likes"`
	ConcernsRaised     []string `json:"concerns_raised"`
	PricingReaction    []string `json:"pricing_reaction"`
	BuyingSignals      []string `json:"buying_signals"`
	RiskSignals        []string `json:"risk_signals"`
	SalesRepAssessment []string `json:"sales_rep_assessment"`
	ProbabilityToClose string   `json:"probability_to_close"`
	FollowUpActions    []string `json:"follow_up_actions"`
	NextStepScheduled  string   `json:"next_step_scheduled"`
}

type TranscriptMessage struct {
	Speaker   string `json:"speaker"` // "rep" or "contact"
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"` // offset within the call, e.g. "0:07"
	Highlight bool   `json:"highlight,omitempty"`
}

type CallTranscript struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Duration    string              `json:"duration"`
	DurationSec int                 `json:"duration_seconds"`
	Type        string              `json:"type"` // "call" or "tour"
	RepName     string              `json:"rep_name"`
	ContactName string              `json:"contact_name"`
	Messages    []TranscriptMessage `json:"messages"`
}

// InteractionEntry is one logged contact event. Entries are immutable once
// created; the per-lead journal is append-only.
type InteractionEntry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        InteractionType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	By          string          `json:"by"`
}

// Lead is one sales prospect tracked through the pipeline.
type Lead struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	ContactPerson   string             `json:"contact_person"`
	ContactRelation string             `json:"contact_relation"`
	ContactPhone    string             `json:"contact_phone"`
	ContactEmail    string             `json:"contact_email"`
	CareLevel       CareLevel          `json:"care_level"`
	Source          Source             `json:"source"`
	Stage           Stage              `json:"stage"`
	Facility        string             `json:"facility"`
	SalesRep        string             `json:"sales_rep"`
	InquiryDate     string             `json:"inquiry_date"`
	InitialContact  string             `json:"initial_contact"`
	LastContactDate string             `json:"last_contact_date"`
	NextActivity    string             `json:"next_activity"`
	IntakeNote      IntakeNote         `json:"intake_note"`
	PostTourNote    *PostTourNote      `json:"post_tour_note,omitempty"`
	Interactions    []InteractionEntry `json:"interactions"`
	CallTranscripts []CallTranscript   `json:"call_transcripts,omitempty"`
}

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSent      CampaignStatus = "sent"
)

// Template is a reusable follow-up email with {{merge_tag}} placeholders.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Campaign is a batch send of a template to a set of leads. Open/click rates
// exist only once sent and are synthesized, not measured.
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	TemplateID  string         `json:"template_id"`
	Recipients  []string       `json:"recipients"`
	Status      CampaignStatus `json:"status"`
	ScheduledAt string         `json:"scheduled_at,omitempty"`
	SentAt      string         `json:"sent_at,omitempty"`
	OpenRate    int            `json:"open_rate,omitempty"`
	ClickRate   int            `json:"click_rate,omitempty"`
}
