package pipeline

import (
	"math"
	"sort"

	"github.com/trilio-crm/backend/internal/models"
)

// Filters holds independent equality predicates over the lead collection.
// Empty fields mean "no filter"; active predicates combine with AND.
type Filters struct {
	Stage     models.Stage
	Source    models.Source
	CareLevel models.CareLevel
	SalesRep  string
}

func (f Filters) match(l models.Lead) bool {
	if f.Stage != "" && l.Stage != f.Stage {
		return false
	}
	if f.Source != "" && l.Source != f.Source {
		return false
	}
	if f.CareLevel != "" && l.CareLevel != f.CareLevel {
		return false
	}
	if f.SalesRep != "" && l.SalesRep != f.SalesRep {
		return false
	}
	return true
}

// FilterLeads returns the subset matching all active predicates, preserving
// input order. No matches yields an empty slice, not an error.
func FilterLeads(leads []models.Lead, f Filters) []models.Lead {
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if f.match(l) {
			out = append(out, l)
		}
	}
	return out
}

// GroupByStage partitions leads into the six fixed stage buckets, preserving
// relative order. A stage with no leads still gets an empty bucket.
func GroupByStage(leads []models.Lead) map[models.Stage][]models.Lead {
	buckets := make(map[models.Stage][]models.Lead, len(StageOrder))
	for _, s := range StageOrder {
		buckets[s] = []models.Lead{}
	}
	for _, l := range leads {
		if _, ok := buckets[l.Stage]; !ok {
			continue
		}
		buckets[l.Stage] = append(buckets[l.Stage], l)
	}
	return buckets
}

type FunnelCount struct {
	Stage models.Stage `json:"stage"`
	Label string       `json:"label"`
	Count int          `json:"count"`
}

// FunnelCounts produces one count per stage in fixed order. Counts are
// stage-local, not cumulative: a lead in deposit is counted in deposit only.
func FunnelCounts(leads []models.Lead) []FunnelCount {
	counts := map[models.Stage]int{}
	for _, l := range leads {
		counts[l.Stage]++
	}
	out := make([]FunnelCount, 0, len(StageOrder))
	for _, s := range StageOrder {
		out = append(out, FunnelCount{Stage: s, Label: stageLabels[s], Count: counts[s]})
	}
	return out
}

type SourceCount struct {
	Source  models.Source `json:"source"`
	Count   int           `json:"count"`
	Percent int           `json:"percent"`
}

// SourceBreakdown groups leads by source with a rounded share of the total.
// Sources with no leads are omitted; output is sorted by count descending
// then source name for a stable order.
func SourceBreakdown(leads []models.Lead) []SourceCount {
	counts := map[models.Source]int{}
	for _, l := range leads {
		counts[l.Source]++
	}
	out := make([]SourceCount, 0, len(counts))
	total := len(leads)
	for src, n := range counts {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(n) / float64(total) * 100))
		}
		out = append(out, SourceCount{Source: src, Count: n, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Source < out[j].Source
		}
		return out[i].Count > out[j].Count
	})
	return out
}
