package gapscan

import "sort"

// SectionCoverage records how widely a section topic is covered across
// competitor documents.
type SectionCoverage struct {
	Title       string   `json:"title"`
	Key         string   `json:"key"`
	Competitors int      `json:"competitors"`
	Sources     []string `json:"sources"`
}

// Rank aggregates every section across the competitor structures, grouping
// by canonical key, and returns topics ordered by descending competitor
// count. Ties break on ascending key for determinism. This is the
// planning mode used when no primary document exists yet: there is
// nothing to diff, only coverage to rank.
func Rank(competitors []Competitor) []SectionCoverage {
	byKey := make(map[string]*SectionCoverage)
	var order []string

	for _, comp := range competitors {
		if comp.Structure == nil {
			continue
		}
		for _, key := range comp.Structure.SectionOrder {
			cov, ok := byKey[key]
			if !ok {
				cov = &SectionCoverage{
					Title: comp.Structure.Sections[key].Title,
					Key:   key,
				}
				byKey[key] = cov
				order = append(order, key)
			}
			if !containsString(cov.Sources, comp.Label) {
				cov.Sources = append(cov.Sources, comp.Label)
			}
		}
	}

	out := make([]SectionCoverage, 0, len(order))
	for _, key := range order {
		cov := byKey[key]
		cov.Competitors = len(cov.Sources)
		sort.Strings(cov.Sources)
		out = append(out, *cov)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Competitors != out[j].Competitors {
			return out[i].Competitors > out[j].Competitors
		}
		return out[i].Key < out[j].Key
	})

	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
