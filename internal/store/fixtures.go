package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/trilio-crm/backend/internal/models"
)

// Fixture data seeds every fresh store so the demo opens on a populated
// pipeline. Interaction histories are generated from each lead's current
// stage; live stage changes append their own entries instead.

var stageRank = map[models.Stage]int{
	models.StageInquiry:    0,
	models.StageConnection: 1,
	models.StagePreTour:    2,
	models.StagePostTour:   3,
	models.StageDeposit:    4,
	models.StageMoveIn:     5,
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func FixtureLeads() []models.Lead {
	leads := []models.Lead{
		{
			ID: "p1", Name: "Margaret Ellison", ContactPerson: "Karen Ellison", ContactRelation: "Daughter",
			ContactPhone: "(555) 201-4432", ContactEmail: "karen.ellison@example.com",
			CareLevel: models.CareAssistedLiving, Source: models.SourceDigitalAds, Stage: models.StageInquiry,
			Facility: "Sunrise Gardens", SalesRep: "Sarah Johnson",
			InquiryDate: "2026-02-08", InitialContact: "2026-02-09", LastContactDate: "2026-02-09",
			NextActivity: "Send information packet",
			IntakeNote: models.IntakeNote{
				LeadSource: "Digital Ads", Zipcode: "90012",
				Caller: "Karen Ellison (Daughter)", DateTime: "2026-02-09 10:15 AM", SalesRep: "Sarah Johnson",
				SituationSummary: []string{"Mother living alone since husband passed", "Daughter noticing missed medications"},
				CareNeeds:        []string{"Medication management", "Help with meals and housekeeping"},
				BudgetFinancial:  []string{"Around $4,500/month", "Selling the family home would extend the budget"},
				DecisionMakers:   []string{"Karen Ellison", "Brother Tom is consulted on finances"},
				Timeline:         "Within 2-3 months",
				Preferences:      []string{"Garden access", "Private room"},
				Objections:       []string{"Mother is reluctant to leave her home"},
				SalesRepAssessment: []string{"Warm lead, daughter is the driver", "Needs emotional reassurance more than facts"},
				NextStep:         []string{"Email brochure and pricing sheet", "Call back Thursday"},
			},
		},
		{
			ID: "p2", Name: "Harold Brink", ContactPerson: "Self", ContactRelation: "Self",
			ContactPhone: "(555) 377-0821", ContactEmail: "h.brink@example.com",
			CareLevel: models.CareIndependentLiving, Source: models.SourceWebsite, Stage: models.StageInquiry,
			Facility: "Maple Grove Commons", SalesRep: "Mike Peters",
			InquiryDate: "2026-02-10", InitialContact: "2026-02-11", LastContactDate: "2026-02-11",
			NextActivity: "Follow-up call",
			IntakeNote: models.IntakeNote{
				LeadSource: "Website", Zipcode: "90210",
				Caller: "Harold Brink (Self)", DateTime: "2026-02-11 2:40 PM", SalesRep: "Mike Peters",
				SituationSummary: []string{"Recently widowed, tired of maintaining a large house", "Wants an active community"},
				CareNeeds:        []string{"No daily care needs", "Wants transportation services"},
				BudgetFinancial:  []string{"Comfortable up to $3,800/month"},
				DecisionMakers:   []string{"Harold Brink"},
				Timeline:         "Flexible, 3-6 months",
				Preferences:      []string{"Golf nearby", "Two-bedroom apartment"},
				Objections:       []string{"Worried a community will feel like a hospital"},
				SalesRepAssessment: []string{"Self-directed and research-heavy", "Invite to the open house"},
				NextStep:         []string{"Send floor plans", "Add to newsletter list"},
			},
		},
		{
			ID: "p3", Name: "Dorothy Nakamura", ContactPerson: "Ken Nakamura", ContactRelation: "Son",
			ContactPhone: "(555) 412-9907", ContactEmail: "ken.nakamura@example.com",
			CareLevel: models.CareMemoryCare, Source: models.SourceReferral, Stage: models.StageConnection,
			Facility: "Sunrise Gardens", SalesRep: "Emily Brown",
			InquiryDate: "2026-02-03", InitialContact: "2026-02-04", LastContactDate: "2026-02-10",
			NextActivity: "Schedule tour",
			IntakeNote: models.IntakeNote{
				LeadSource: "Referral", Zipcode: "90045",
				Caller: "Ken Nakamura (Son)", DateTime: "2026-02-04 9:05 AM", SalesRep: "Emily Brown",
				SituationSummary: []string{"Mother diagnosed with early-stage dementia last fall", "Referred by Dr. Patel's office"},
				CareNeeds:        []string{"Secured memory care environment", "Structured daily routine"},
				BudgetFinancial:  []string{"Long-term care insurance covers part", "Family contributes the rest"},
				DecisionMakers:   []string{"Ken Nakamura", "Sister in Seattle joins by phone"},
				Timeline:         "As soon as the right fit is found",
				Preferences:      []string{"Japanese meals occasionally", "Staff experienced with dementia"},
				Objections:       []string{"Concerned about staff turnover"},
				SalesRepAssessment: []string{"High urgency, well-informed family"},
				NextStep:         []string{"Schedule tour with memory care director"},
			},
		},
		{
			ID: "p4", Name: "Frank Osei", ContactPerson: "Abena Osei", ContactRelation: "Wife",
			ContactPhone: "(555) 233-6614", ContactEmail: "abena.osei@example.com",
			CareLevel: models.CareSkilledNursing, Source: models.SourcePhoneCall, Stage: models.StageConnection,
			Facility: "Willow Creek Estates", SalesRep: "David Kim",
			InquiryDate: "2026-02-05", InitialContact: "2026-02-05", LastContactDate: "2026-02-11",
			NextActivity: "Insurance verification call",
			IntakeNote: models.IntakeNote{
				LeadSource: "Phone Call", Zipcode: "90301",
				Caller: "Abena Osei (Wife)", DateTime: "2026-02-05 4:20 PM", SalesRep: "David Kim",
				SituationSummary: []string{"Husband recovering from a stroke, discharging from rehab in March"},
				CareNeeds:        []string{"Skilled nursing with PT on site", "Wound care"},
				BudgetFinancial:  []string{"Medicare plus supplemental", "Needs benefits walkthrough"},
				DecisionMakers:   []string{"Abena Osei", "Adult daughter"},
				Timeline:         "Hard deadline: rehab discharge March 3",
				Preferences:      []string{"Close to Inglewood", "Private room if covered"},
				Objections:       []string{"Cost uncertainty until insurance is verified"},
				SalesRepAssessment: []string{"Time-critical, coordinate with discharge planner"},
				NextStep:         []string{"Verify coverage", "Hold a room pending tour"},
			},
		},
		{
			ID: "p5", Name: "Betty Calloway", ContactPerson: "Denise Calloway", ContactRelation: "Daughter",
			ContactPhone: "(555) 880-1276", ContactEmail: "denise.c@example.com",
			CareLevel: models.CareAssistedLiving, Source: models.SourceWalkIn, Stage: models.StagePreTour,
			Facility: "Sunrise Gardens", SalesRep: "Sarah Johnson",
			InquiryDate: "2026-01-28", InitialContact: "2026-01-28", LastContactDate: "2026-02-12",
			NextActivity: "Tour on Feb 16 at 10:00 AM",
			IntakeNote: models.IntakeNote{
				LeadSource: "Walk-in", Zipcode: "90036",
				Caller: "Denise Calloway (Daughter)", DateTime: "2026-01-28 11:30 AM", SalesRep: "Sarah Johnson",
				SituationSummary: []string{"Walked in while visiting a friend who lives here", "Mother had a fall last month"},
				CareNeeds:        []string{"Fall-risk monitoring", "Bathing assistance"},
				BudgetFinancial:  []string{"$5,000/month range", "Veteran's benefits through late husband"},
				DecisionMakers:   []string{"Denise Calloway", "Betty insists on final say"},
				Timeline:         "1-2 months",
				Preferences:      []string{"Near the courtyard", "Allows her cat"},
				Objections:       []string{"Betty worries about losing independence"},
				SalesRepAssessment: []string{"Strong fit, include Betty directly in every step"},
				NextStep:         []string{"Confirm tour for Feb 16", "Prepare VA benefits info"},
			},
		},
		{
			ID: "p6", Name: "Walter Jessup", ContactPerson: "Gloria Jessup", ContactRelation: "Daughter",
			ContactPhone: "(555) 641-5503", ContactEmail: "gloria.jessup@example.com",
			CareLevel: models.CareMemoryCare, Source: models.SourceDigitalAds, Stage: models.StagePostTour,
			Facility: "Sunrise Gardens", SalesRep: "Emily Brown",
			InquiryDate: "2026-01-20", InitialContact: "2026-01-21", LastContactDate: "2026-02-10",
			NextActivity: "Follow-up on care plan questions",
			IntakeNote: models.IntakeNote{
				LeadSource: "Digital Ads", Zipcode: "90064",
				Caller: "Gloria Jessup (Daughter)", DateTime: "2026-01-21 1:10 PM", SalesRep: "Emily Brown",
				SituationSummary: []string{"Father wandering at night, wife exhausted as primary caregiver"},
				CareNeeds:        []string{"Secured unit", "24-hour supervision"},
				BudgetFinancial:  []string{"$6,500/month budget", "Reverse mortgage under discussion"},
				DecisionMakers:   []string{"Gloria Jessup", "Mother co-decides"},
				Timeline:         "Within a month",
				Preferences:      []string{"Music therapy program"},
				Objections:       []string{"Guilt about moving him"},
				SalesRepAssessment: []string{"Family needs support and reassurance through the transition"},
				NextStep:         []string{"Tour completed, send care plan details"},
			},
			PostTourNote: &models.PostTourNote{
				TourDate: "2026-02-07 at 11:00 AM", Attendees: "Gloria Jessup, Ruth Jessup", TourGuide: "Emily Brown",
				FirstImpressions: []string{"Loved the bright common areas", "Commented on how calm the memory wing felt"},
				EmotionalSignals: []string{"Ruth teared up seeing the music room", "Relief visible by the end of the visit"},
				Likes:            []string{"Music therapy schedule", "Low staff-to-resident ratio"},
				ConcernsRaised:   []string{"Night staffing levels", "What happens as the dementia progresses"},
				PricingReaction:  []string{"Within budget, asked about annual increases"},
				BuyingSignals:    []string{"Asked about move-in logistics unprompted"},
				RiskSignals:      []string{"Mother still hesitant about timing"},
				SalesRepAssessment: []string{"70% likely with steady follow-up", "Address progression-of-care question in writing"},
				ProbabilityToClose: "70%",
				FollowUpActions:  []string{"Send care progression one-pager", "Invite to Saturday family lunch"},
				NextStepScheduled: "Call scheduled Feb 14 at 2:00 PM",
			},
		},
		{
			ID: "p7", Name: "Pearl Whitfield", ContactPerson: "Self", ContactRelation: "Self",
			ContactPhone: "(555) 902-3348", ContactEmail: "pearl.whitfield@example.com",
			CareLevel: models.CareIndependentLiving, Source: models.SourceReferral, Stage: models.StageDeposit,
			Facility: "Maple Grove Commons", SalesRep: "Mike Peters",
			InquiryDate: "2026-01-12", InitialContact: "2026-01-13", LastContactDate: "2026-02-11",
			NextActivity: "Confirm move-in date",
			IntakeNote: models.IntakeNote{
				LeadSource: "Referral", Zipcode: "90025",
				Caller: "Pearl Whitfield (Self)", DateTime: "2026-01-13 10:00 AM", SalesRep: "Mike Peters",
				SituationSummary: []string{"Referred by current resident Edna Mays", "Wants to downsize while healthy"},
				CareNeeds:        []string{"Independent living, future care continuum matters"},
				BudgetFinancial:  []string{"Proceeds from condo sale", "No financing concerns"},
				DecisionMakers:   []string{"Pearl Whitfield"},
				Timeline:         "Spring move preferred",
				Preferences:      []string{"South-facing apartment", "Bridge club"},
				Objections:       []string{"None significant"},
				SalesRepAssessment: []string{"Ready buyer, friend on campus seals it"},
				NextStep:         []string{"Collect deposit paperwork"},
			},
			PostTourNote: &models.PostTourNote{
				TourDate: "2026-01-25 at 2:00 PM", Attendees: "Pearl Whitfield", TourGuide: "Mike Peters",
				FirstImpressions: []string{"Felt at home immediately", "Stopped to chat with three residents"},
				EmotionalSignals: []string{"Excited rather than anxious"},
				Likes:            []string{"Dining menu", "South courtyard apartments"},
				ConcernsRaised:   []string{"Guest suite availability for visiting grandchildren"},
				PricingReaction:  []string{"No hesitation at quoted rate"},
				BuyingSignals:    []string{"Asked to see the contract", "Requested a specific unit"},
				RiskSignals:      []string{},
				SalesRepAssessment: []string{"Close this month"},
				ProbabilityToClose: "90%",
				FollowUpActions:  []string{"Reserve unit 214", "Schedule deposit signing"},
				NextStepScheduled: "Deposit signing Feb 13",
			},
		},
		{
			ID: "p8", Name: "Arthur Mendel", ContactPerson: "Joan Mendel", ContactRelation: "Daughter",
			ContactPhone: "(555) 118-7765", ContactEmail: "joan.mendel@example.com",
			CareLevel: models.CareAssistedLiving, Source: models.SourceWebsite, Stage: models.StageMoveIn,
			Facility: "Willow Creek Estates", SalesRep: "David Kim",
			InquiryDate: "2025-12-15", InitialContact: "2025-12-16", LastContactDate: "2026-02-09",
			NextActivity: "Move-in day Feb 20",
			IntakeNote: models.IntakeNote{
				LeadSource: "Website", Zipcode: "90405",
				Caller: "Joan Mendel (Daughter)", DateTime: "2025-12-16 3:30 PM", SalesRep: "David Kim",
				SituationSummary: []string{"Father managing poorly after hip replacement", "Family spread across three states"},
				CareNeeds:        []string{"Mobility assistance", "Medication management"},
				BudgetFinancial:  []string{"Pension plus savings, $5,500/month ceiling"},
				DecisionMakers:   []string{"Joan Mendel", "Two siblings by conference call"},
				Timeline:         "Was 1-2 months, now confirmed",
				Preferences:      []string{"Ground floor", "Woodworking shop"},
				Objections:       []string{"Initially resisted, warmed up after tour"},
				SalesRepAssessment: []string{"Closed; coordinate smooth move-in"},
				NextStep:         []string{"Finalize move-in checklist"},
			},
			PostTourNote: &models.PostTourNote{
				TourDate: "2026-01-08 at 10:30 AM", Attendees: "Arthur Mendel, Joan Mendel", TourGuide: "David Kim",
				FirstImpressions: []string{"Arthur gravitated to the workshop", "Liked meeting the maintenance-crew veterans"},
				EmotionalSignals: []string{"Visibly relaxed once he saw other men his age in the shop"},
				Likes:            []string{"Woodworking shop", "Ground-floor garden units"},
				ConcernsRaised:   []string{"Whether he could bring his workbench"},
				PricingReaction:  []string{"Within ceiling with room to spare"},
				BuyingSignals:    []string{"Picked out a unit during the tour"},
				RiskSignals:      []string{},
				SalesRepAssessment: []string{"Deposit taken Jan 15, move-in Feb 20"},
				ProbabilityToClose: "100%",
				FollowUpActions:  []string{"Send moving-company referrals", "Workbench approved for unit 108"},
				NextStepScheduled: "Move-in Feb 20 at 9:00 AM",
			},
		},
	}

	for i := range leads {
		leads[i].Interactions = syntheticHistory(leads[i])
		leads[i].CallTranscripts = syntheticTranscripts(leads[i])
	}
	return leads
}

// syntheticHistory derives the journal a lead "should" have from its current
// stage, assuming a linear walk through every prior stage. Fixture use only.
func syntheticHistory(l models.Lead) []models.InteractionEntry {
	rank := stageRank[l.Stage]
	contact := l.ContactPerson
	if contact == "Self" {
		contact = l.Name
	}

	inquiry := day(l.InquiryDate)
	initial := day(l.InitialContact)
	last := day(l.LastContactDate)
	seq := 0
	next := func(base time.Time) time.Time {
		seq++
		return base.Add(time.Duration(seq) * time.Hour)
	}

	entries := []models.InteractionEntry{
		{ID: l.ID + "-i1", Date: next(inquiry), Type: models.InteractionNote, Title: "Inquiry received",
			Description: fmt.Sprintf("New inquiry from %s via %s. Care level: %s.", contact, strings.ToLower(string(l.Source)), l.CareLevel), By: "System"},
		{ID: l.ID + "-i2", Date: next(initial), Type: models.InteractionCall, Title: "Initial contact call",
			Description: fmt.Sprintf("First call with %s. Discussed care needs and community options. %s.", contact, l.IntakeNote.SituationSummary[0]), By: l.SalesRep},
	}

	if rank >= stageRank[models.StageConnection] {
		entries = append(entries,
			models.InteractionEntry{ID: l.ID + "-i3", Date: next(initial), Type: models.InteractionEmail, Title: "Sent information packet",
				Description: fmt.Sprintf("Emailed brochure, pricing sheet, and community overview to %s.", contact), By: l.SalesRep},
			models.InteractionEntry{ID: l.ID + "-i4", Date: next(initial), Type: models.InteractionStageChange, Title: "Moved to Connection",
				Description: "Lead advanced from Inquiry to Connection stage.", By: l.SalesRep},
		)
	}
	if rank >= stageRank[models.StagePreTour] {
		entries = append(entries,
			models.InteractionEntry{ID: l.ID + "-i5", Date: next(last), Type: models.InteractionCall, Title: "Follow-up call",
				Description: fmt.Sprintf("Discussed specific care needs and answered questions. %s expressed interest in touring.", contact), By: l.SalesRep},
			models.InteractionEntry{ID: l.ID + "-i6", Date: next(last), Type: models.InteractionStageChange, Title: "Moved to Pre-Tour",
				Description: "Tour scheduled. Lead advanced to Pre-Tour stage.", By: l.SalesRep},
		)
	}
	if rank >= stageRank[models.StagePostTour] {
		assessment := "Positive tour experience. Follow-up needed."
		if l.PostTourNote != nil && len(l.PostTourNote.SalesRepAssessment) > 0 {
			assessment = l.PostTourNote.SalesRepAssessment[0]
		}
		entries = append(entries,
			models.InteractionEntry{ID: l.ID + "-i7", Date: next(last), Type: models.InteractionTour, Title: "Facility tour completed",
				Description: fmt.Sprintf("%s toured %s.", contact, l.Facility), By: l.SalesRep},
			models.InteractionEntry{ID: l.ID + "-i8", Date: next(last), Type: models.InteractionNote, Title: "Post-tour assessment",
				Description: assessment, By: l.SalesRep},
			models.InteractionEntry{ID: l.ID + "-i9", Date: next(last), Type: models.InteractionStageChange, Title: "Moved to Post-Tour",
				Description: "Lead advanced to Post-Tour stage after facility visit.", By: l.SalesRep},
		)
	}
	if rank >= stageRank[models.StageDeposit] {
		entries = append(entries,
			models.InteractionEntry{ID: l.ID + "-i10", Date: next(last), Type: models.InteractionCall, Title: "Deposit discussion call",
				Description: fmt.Sprintf("Discussed pricing, room options, and move-in timeline with %s.", contact), By: l.SalesRep},
			models.InteractionEntry{ID: l.ID + "-i11", Date: next(last), Type: models.InteractionStageChange, Title: "Moved to Deposit",
				Description: "Deposit received. Lead advanced to Deposit stage.", By: l.SalesRep},
		)
	}
	if rank >= stageRank[models.StageMoveIn] {
		entries = append(entries,
			models.InteractionEntry{ID: l.ID + "-i12", Date: next(last), Type: models.InteractionMeeting, Title: "Move-in planning meeting",
				Description: fmt.Sprintf("Walked %s through the move-in checklist and logistics.", contact), By: l.SalesRep},
			models.InteractionEntry{ID: l.ID + "-i13", Date: next(last), Type: models.InteractionStageChange, Title: "Moved to Move-in",
				Description: "Move-in date confirmed. Lead advanced to Move-in stage.", By: l.SalesRep},
		)
	}

	// Newest first, matching how the journal is served.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

func syntheticTranscripts(l models.Lead) []models.CallTranscript {
	contact := l.ContactPerson
	if contact == "Self" {
		contact = l.Name
	}
	tr := models.CallTranscript{
		ID: l.ID + "-tr1", Date: l.InitialContact, Time: "9:53 AM",
		Duration: "7:44", DurationSec: 464, Type: "call",
		RepName: l.SalesRep, ContactName: contact,
		Messages: []models.TranscriptMessage{
			{Speaker: "rep", Text: fmt.Sprintf("Hi, this is %s from %s. Am I speaking with %s?", l.SalesRep, l.Facility, contact), Timestamp: "0:02"},
			{Speaker: "contact", Text: "Yes, hi! Thanks for calling back. I submitted an inquiry.", Timestamp: "0:07"},
			{Speaker: "rep", Text: "Of course! I'd love to learn more about what you're looking for.", Timestamp: "0:16"},
			{Speaker: "contact", Text: l.IntakeNote.SituationSummary[0] + ".", Timestamp: "0:19", Highlight: true},
			{Speaker: "rep", Text: "Thank you for sharing that. Can you tell me about your budget range?", Timestamp: "1:12", Highlight: true},
			{Speaker: "contact", Text: l.IntakeNote.BudgetFinancial[0] + ".", Timestamp: "1:25"},
			{Speaker: "rep", Text: fmt.Sprintf("Let me tell you about our %s program. Would a tour be helpful?", strings.ToLower(string(l.CareLevel))), Timestamp: "2:45"},
			{Speaker: "contact", Text: "Yes, I think that would be really helpful. " + l.IntakeNote.Timeline + ".", Timestamp: "6:02"},
			{Speaker: "rep", Text: l.IntakeNote.NextStep[0] + ". I'll be in touch soon!", Timestamp: "7:35"},
		},
	}
	return []models.CallTranscript{tr}
}

func FixtureTemplates() []models.Template {
	created := day("2026-01-05")
	return []models.Template{
		{
			ID: "t1", Name: "Welcome & Next Steps", CreatedAt: created,
			Subject: "Welcome to Trilio - Next Steps for {{name}}",
			Body: `Hi {{contact_person}},

Thank you for reaching out about senior living options for {{name}}. We understand this is an important decision, and we're here to help every step of the way.

I'd love to schedule a personalized tour of our {{facility}} community so you can see firsthand how we can support {{name}}'s care needs.

Warm regards,
{{sales_rep}}`,
		},
		{
			ID: "t2", Name: "Post-Tour Recap", CreatedAt: created,
			Subject: "Great meeting you - {{name}}'s tour recap",
			Body: `Hi {{contact_person}},

It was wonderful meeting you and showing you around {{facility}}! I hope the visit gave you a good sense of the care and community we offer.

I'm here for any questions that come up as you talk things over.

Warm regards,
{{sales_rep}}`,
		},
		{
			ID: "t3", Name: "Weekly Check-In", CreatedAt: created,
			Subject: "Checking in - How is {{name}} doing?",
			Body: `Hi {{contact_person}},

I wanted to check in and see how things are going with {{name}}. Making a decision about senior living takes time, and we're here whenever you're ready.

Warm regards,
{{sales_rep}}`,
		},
		{
			ID: "t4", Name: "Monthly Newsletter", CreatedAt: created,
			Subject: "{{facility}} - Monthly Newsletter",
			Body: `Hi {{contact_person}},

Here's what's been happening at {{facility}} this month! We'd love for you and {{name}} to visit and experience our community firsthand.

Warm regards,
{{sales_rep}}`,
		},
		{
			ID: "t5", Name: "Open House Invitation", CreatedAt: created,
			Subject: "You're invited - Spring Open House at {{facility}}",
			Body: `Hi {{contact_person}},

Join us for our Spring Open House at {{facility}}! Meet our care team, tour the community, and enjoy lunch with current residents.

Warm regards,
{{sales_rep}}`,
		},
	}
}

func FixtureCampaigns() []models.Campaign {
	return []models.Campaign{
		{ID: "c1", Name: "February Inquiry Welcome Blast", TemplateID: "t1", Recipients: []string{"p1", "p2", "p3", "p4"},
			Status: models.CampaignSent, SentAt: "2026-02-10", OpenRate: 72, ClickRate: 34},
		{ID: "c2", Name: "Post-Tour Follow-Up Batch", TemplateID: "t2", Recipients: []string{"p6", "p7", "p8"},
			Status: models.CampaignSent, SentAt: "2026-02-09", OpenRate: 85, ClickRate: 45},
		{ID: "c3", Name: "Weekly Check-In", TemplateID: "t3", Recipients: []string{"p3", "p4", "p5"},
			Status: models.CampaignScheduled, ScheduledAt: "2026-02-15"},
		{ID: "c4", Name: "February Monthly Newsletter", TemplateID: "t4", Recipients: []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"},
			Status: models.CampaignSent, SentAt: "2026-02-12", OpenRate: 68, ClickRate: 22},
		{ID: "c5", Name: "Spring Open House Invitation", TemplateID: "t5", Recipients: []string{"p1", "p2", "p5"},
			Status: models.CampaignScheduled, ScheduledAt: "2026-02-18"},
	}
}
