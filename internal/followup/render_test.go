package followup

import (
	"testing"

	"github.com/trilio-crm/backend/internal/models"
)

func TestRenderMergeTags(t *testing.T) {
	tmpl := models.Template{
		Subject: "Following up with {{name}}",
		Body:    "Hi {{contact_person}}, {{sales_rep}} from {{facility}} here. We discussed {{care_level}} and you are in the {{stage}} stage.",
	}
	lead := models.Lead{
		Name:          "Margaret Ellison",
		ContactPerson: "Karen Ellison",
		SalesRep:      "Sarah Johnson",
		Facility:      "Sunrise Gardens",
		CareLevel:     models.CareAssistedLiving,
		Stage:         models.StagePostTour,
	}

	subject, body := Render(tmpl, lead)
	if subject != "Following up with Margaret Ellison" {
		t.Fatalf("unexpected subject %q", subject)
	}
	want := "Hi Karen Ellison, Sarah Johnson from Sunrise Gardens here. We discussed Assisted Living and you are in the Post-Tour stage."
	if body != want {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestRenderUnknownTagLeftIntact(t *testing.T) {
	tmpl := models.Template{Subject: "{{name}}", Body: "Dear {{nickname}}, welcome."}
	_, body := Render(tmpl, models.Lead{Name: "X"})
	if body != "Dear {{nickname}}, welcome." {
		t.Fatalf("unknown tag should survive rendering, got %q", body)
	}
}
