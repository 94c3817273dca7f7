package domain

import "time"

// ReconcilePlan lists the row changes that turn an event's persisted date
// options into a submitted list. Delete holds persisted IDs, Update holds
// options with a persisted ID and new field values, Insert holds new options
// without an ID.
type ReconcilePlan struct {
	Delete []string
	Update []*DateOption
	Insert []*DateOption
}

// Empty reports whether the plan changes nothing.
func (p ReconcilePlan) Empty() bool {
	return len(p.Delete) == 0 && len(p.Update) == 0 && len(p.Insert) == 0
}

// PlanReconcile diffs the persisted option IDs of eventID against submitted.
// A submitted option whose ID is empty or not persisted is inserted fresh, so
// a submission without any IDs replaces the whole set. Submitted values must
// already be normalized; now stamps inserted rows.
func PlanReconcile(eventID string, existing []string, submitted []DateOptionInput, now time.Time) ReconcilePlan {
	persisted := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		persisted[id] = struct{}{}
	}

	var plan ReconcilePlan
	kept := make(map[string]struct{}, len(submitted))
	for _, in := range submitted {
		opt := NewDateOption(eventID, in.Date, in.StartTime, in.EndTime, in.Label, now)
		if _, ok := persisted[in.ID]; ok && in.ID != "" {
			opt.ID = in.ID
			kept[in.ID] = struct{}{}
			plan.Update = append(plan.Update, opt)
			continue
		}
		plan.Insert = append(plan.Insert, opt)
	}
	for _, id := range existing {
		if _, ok := kept[id]; !ok {
			plan.Delete = append(plan.Delete, id)
		}
	}
	return plan
}
