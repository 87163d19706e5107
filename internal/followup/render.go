package followup

import (
	"strings"

	"github.com/trilio-crm/backend/internal/models"
	"github.com/trilio-crm/backend/internal/pipeline"
)

// mergeTags maps {{tag}} names to lead field accessors. Tags with no mapping
// are left in the text untouched, matching the preview behavior.
var mergeTags = map[string]func(models.Lead) string{
	"name":           func(l models.Lead) string { return l.Name },
	"contact_person": func(l models.Lead) string { return l.ContactPerson },
	"facility":       func(l models.Lead) string { return l.Facility },
	"sales_rep":      func(l models.Lead) string { return l.SalesRep },
	"care_level":     func(l models.Lead) string { return string(l.CareLevel) },
	"stage":          func(l models.Lead) string { return pipeline.StageLabel(l.Stage) },
}

// Render resolves the merge tags in a template's subject and body for one lead.
func Render(t models.Template, lead models.Lead) (subject string, body string) {
	return renderText(t.Subject, lead), renderText(t.Body, lead)
}

func renderText(text string, lead models.Lead) string {
	for tag, get := range mergeTags {
		text = strings.ReplaceAll(text, "{{"+tag+"}}", get(lead))
	}
	return text
}
