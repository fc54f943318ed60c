package approval

import "sort"

// StepState classifies one level in the rendered progress sequence.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepUpcoming  StepState = "pending-future"
	StepRejected  StepState = "rejected"
)

// Step is one entry of the display-ready progress sequence.
type Step struct {
	Level int       `json:"level"`
	State StepState `json:"state"`
}

// RollupStatus derives the overall request status from its approval records,
// independent of order. A single rejection is terminal for the whole request;
// a request with no records is not yet under review.
func RollupStatus(records []Record) Status {
	if len(records) == 0 {
		return StatusPending
	}
	allApproved := true
	for _, r := range records {
		switch r.Status {
		case StatusRejected:
			return StatusRejected
		case StatusApproved:
		default:
			allApproved = false
		}
	}
	if allApproved {
		return StatusApproved
	}
	return StatusPending
}

// CompletionCount reports approved-vs-total. Only Approved records count as
// completed; a Rejected record does not, even though it already decides the
// request. That is the observed contract and is kept as-is.
func CompletionCount(records []Record) (completed, total int) {
	for _, r := range records {
		if r.Status == StatusApproved {
			completed++
		}
	}
	return completed, len(records)
}

// OrderedProgress returns the records sorted ascending by level. The sort is
// stable so malformed input with a duplicated level keeps its relative order.
func OrderedProgress(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

// CurrentLevel is the lowest level still awaiting action. When every record
// is decided it is one past the highest level present; for an empty set it
// is MinLevel.
func CurrentLevel(records []Record) int {
	if len(records) == 0 {
		return MinLevel
	}
	current := 0
	highest := 0
	for _, r := range records {
		if r.Level > highest {
			highest = r.Level
		}
		if r.Status == StatusPending && (current == 0 || r.Level < current) {
			current = r.Level
		}
	}
	if current == 0 {
		return highest + 1
	}
	return current
}

// ProgressBarState renders each level as completed, current, upcoming, or
// rejected. A rejection before the current level stays visible as rejected
// rather than collapsing into completed.
func ProgressBarState(records []Record) []Step {
	ordered := OrderedProgress(records)
	current := CurrentLevel(records)

	out := make([]Step, 0, len(ordered))
	for _, r := range ordered {
		var state StepState
		switch {
		case r.Status == StatusApproved:
			state = StepCompleted
		case r.Status == StatusRejected:
			state = StepRejected
		case r.Level == current:
			state = StepCurrent
		default:
			state = StepUpcoming
		}
		out = append(out, Step{Level: r.Level, State: state})
	}
	return out
}
