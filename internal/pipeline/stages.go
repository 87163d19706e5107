package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/trilio-crm/backend/internal/models"
)

// StageOrder is the fixed display order of pipeline stages.
var StageOrder = []models.Stage{
	models.StageInquiry,
	models.StageConnection,
	models.StagePreTour,
	models.StagePostTour,
	models.StageDeposit,
	models.StageMoveIn,
}

var stageLabels = map[models.Stage]string{
	models.StageInquiry:    "Inquiry",
	models.StageConnection: "Connection",
	models.StagePreTour:    "Pre-Tour",
	models.StagePostTour:   "Post-Tour",
	models.StageDeposit:    "Deposit",
	models.StageMoveIn:     "Move-in",
}

// Progress weights drive the progress bar only; they are not probabilities.
var stageProgress = map[models.Stage]int{
	models.StageInquiry:    10,
	models.StageConnection: 25,
	models.StagePreTour:    45,
	models.StagePostTour:   65,
	models.StageDeposit:    85,
	models.StageMoveIn:     100,
}

func ValidStage(s models.Stage) bool {
	_, ok := stageLabels[s]
	return ok
}

func StageLabel(s models.Stage) string {
	return stageLabels[s]
}

func StageProgress(s models.Stage) int {
	return stageProgress[s]
}

func ParseStage(raw string) (models.Stage, error) {
	s := models.Stage(strings.ToLower(strings.TrimSpace(raw)))
	if !ValidStage(s) {
		return "", fmt.Errorf("unknown stage %q", raw)
	}
	return s, nil
}

var careLevels = map[models.CareLevel]struct{}{
	models.CareAssistedLiving:    {},
	models.CareIndependentLiving: {},
	models.CareMemoryCare:        {},
	models.CareSkilledNursing:    {},
}

func ValidCareLevel(c models.CareLevel) bool {
	_, ok := careLevels[c]
	return ok
}

var sources = map[models.Source]struct{}{
	models.SourceDigitalAds: {},
	models.SourceWebsite:    {},
	models.SourcePhoneCall:  {},
	models.SourceWalkIn:     {},
	models.SourceReferral:   {},
}

func ValidSource(s models.Source) bool {
	_, ok := sources[s]
	return ok
}

var interactionTypes = map[models.InteractionType]struct{}{
	models.InteractionCall:        {},
	models.InteractionEmail:       {},
	models.InteractionTour:        {},
	models.InteractionNote:        {},
	models.InteractionStageChange: {},
	models.InteractionMeeting:     {},
}

func ValidInteractionType(t models.InteractionType) bool {
	_, ok := interactionTypes[t]
	return ok
}

// StageChangeEntry builds the journal entry recorded for a transition. Every
// transition logs one, whether it came from the picker or a board drag.
func StageChangeEntry(id string, from, to models.Stage, by string, at time.Time) models.InteractionEntry {
	return models.InteractionEntry{
		ID:          id,
		Date:        at,
		Type:        models.InteractionStageChange,
		Title:       "Moved to " + stageLabels[to],
		Description: fmt.Sprintf("Lead moved from %s to %s stage.", stageLabels[from], stageLabels[to]),
		By:          by,
	}
}
