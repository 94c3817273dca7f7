package domain

// Aggregate builds the read model from an event's options and response rows.
// Participants keep the order in which their names first appear in rows.
// Every option gets a zero tally even without answers; rows for unknown
// options are ignored. Best holds the options tied at the highest ok count,
// in option order, and is empty when nobody answered ok.
func Aggregate(options []*DateOption, rows []*Response) (participants []*ParticipantAnswers, summary Summary, best []string) {
	participants = make([]*ParticipantAnswers, 0)
	byName := make(map[string]*ParticipantAnswers)
	for _, r := range rows {
		p, ok := byName[r.Name]
		if !ok {
			p = &ParticipantAnswers{Name: r.Name, Answers: make(map[string]Answer)}
			byName[r.Name] = p
			participants = append(participants, p)
		}
		p.Answers[r.DateOptionID] = Answer{Status: r.Status, Note: r.Note}
	}

	summary = make(Summary, len(options))
	for _, o := range options {
		summary[o.ID] = StatusCount{}
	}
	for _, r := range rows {
		c, ok := summary[r.DateOptionID]
		if !ok {
			continue
		}
		switch r.Status {
		case StatusOK:
			c.OK++
		case StatusMaybe:
			c.Maybe++
		case StatusNG:
			c.NG++
		}
		summary[r.DateOptionID] = c
	}

	return participants, summary, BestOptions(options, summary)
}

// BestOptions returns the IDs of options whose ok count equals the maximum.
func BestOptions(options []*DateOption, summary Summary) []string {
	best := make([]string, 0)
	maxOK := 0
	for _, o := range options {
		if n := summary[o.ID].OK; n > maxOK {
			maxOK = n
		}
	}
	if maxOK == 0 {
		return best
	}
	for _, o := range options {
		if summary[o.ID].OK == maxOK {
			best = append(best, o.ID)
		}
	}
	return best
}
