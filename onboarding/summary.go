package onboarding

// Counts is a created/existing/failed rollup for one entity type.
type Counts struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
	Failed   int `json:"failed"`
}

// Total returns the number of outcomes counted.
func (c Counts) Total() int {
	return c.Created + c.Existing + c.Failed
}

func (c *Counts) add(created, skipped bool) {
	switch {
	case created:
		c.Created++
	case skipped:
		c.Existing++
	default:
		c.Failed++
	}
}

// Summary is the rollup of one orchestration run.
type Summary struct {
	Providers     Counts `json:"providers"`
	Events        Counts `json:"events"`
	Registrations Counts `json:"registrations"`
	Combined      Counts `json:"combined"`
}

// Summarize reduces a Result to its rollup counts. It is pure: no logging,
// no mutation of the result.
func Summarize(result *Result) Summary {
	var summary Summary
	if result == nil {
		return summary
	}

	for _, r := range result.CreatedProviders {
		summary.Providers.add(r.Created, r.Skipped)
		summary.Combined.add(r.Created, r.Skipped)
	}
	for _, r := range result.CreatedEvents {
		summary.Events.add(r.Created, r.Skipped)
		summary.Combined.add(r.Created, r.Skipped)
	}
	for _, r := range result.CreatedRegistrations {
		summary.Registrations.add(r.Created, r.Skipped)
		summary.Combined.add(r.Created, r.Skipped)
	}
	return summary
}
