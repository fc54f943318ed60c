package approval

import (
	"fmt"
	"sort"
	"strings"
)

// Batch validation errors. Each carries the exact offending entries so the
// HTTP layer can report which rule broke and where, not a generic message.

var ErrEmptyBatch = fmt.Errorf("at least one approver is required")

// IncompleteEntryError lists candidate indices missing an approver.
type IncompleteEntryError struct {
	Indices []int
}

func (e *IncompleteEntryError) Error() string {
	return fmt.Sprintf("approver missing for entries %v", e.Indices)
}

// DuplicateApproverError reports an approver used for more than one level in
// the same batch.
type DuplicateApproverError struct {
	ApproverID uint64
}

func (e *DuplicateApproverError) Error() string {
	return fmt.Sprintf("approver %d selected more than once", e.ApproverID)
}

// DuplicateLevelError reports a level used twice within the batch.
type DuplicateLevelError struct {
	Level int
}

func (e *DuplicateLevelError) Error() string {
	return fmt.Sprintf("approval level %d used more than once", e.Level)
}

// LevelConflictError reports candidate levels already occupied by existing
// approvals of the same husky.
type LevelConflictError struct {
	Levels []int
}

func (e *LevelConflictError) Error() string {
	parts := make([]string, len(e.Levels))
	for i, l := range e.Levels {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return fmt.Sprintf("approval level(s) %s already exist for this request", strings.Join(parts, ", "))
}

// CapExceededError reports the batch overflowing the per-request cap.
type CapExceededError struct {
	Existing  int
	Proposed  int
	Remaining int
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("maximum %d total approvers: %d existing and %d proposed leave %d slot(s)",
		MaxApprovals, e.Existing, e.Proposed, e.Remaining)
}

// ValidateBatch decides whether a candidate batch may be attached to a husky
// that already owns the given approval records. Checks run in a fixed order
// and the first failure is returned, mirroring how the rules are surfaced to
// users one at a time. Pure; neither slice is modified.
func ValidateBatch(existing []Record, candidate []Candidate) error {
	if len(candidate) == 0 {
		return ErrEmptyBatch
	}

	var incomplete []int
	for i, c := range candidate {
		if c.ApproverID == 0 {
			incomplete = append(incomplete, i)
		}
	}
	if len(incomplete) > 0 {
		return &IncompleteEntryError{Indices: incomplete}
	}

	seenApprover := make(map[uint64]struct{}, len(candidate))
	for _, c := range candidate {
		if _, dup := seenApprover[c.ApproverID]; dup {
			return &DuplicateApproverError{ApproverID: c.ApproverID}
		}
		seenApprover[c.ApproverID] = struct{}{}
	}

	seenLevel := make(map[int]struct{}, len(candidate))
	for _, c := range candidate {
		if _, dup := seenLevel[c.Level]; dup {
			return &DuplicateLevelError{Level: c.Level}
		}
		seenLevel[c.Level] = struct{}{}
	}

	taken := make(map[int]struct{}, len(existing))
	for _, r := range existing {
		taken[r.Level] = struct{}{}
	}
	var conflicts []int
	for _, c := range candidate {
		if _, clash := taken[c.Level]; clash {
			conflicts = append(conflicts, c.Level)
		}
	}
	if len(conflicts) > 0 {
		sort.Ints(conflicts)
		return &LevelConflictError{Levels: conflicts}
	}

	if len(existing)+len(candidate) > MaxApprovals {
		return &CapExceededError{
			Existing:  len(existing),
			Proposed:  len(candidate),
			Remaining: MaxApprovals - len(existing),
		}
	}
	return nil
}

// AvailableApprovers filters approver ids already placed elsewhere in the
// in-progress batch. The entry being edited must be excluded from others by
// the caller.
func AvailableApprovers(all []uint64, others []Candidate) []uint64 {
	used := make(map[uint64]struct{}, len(others))
	for _, c := range others {
		if c.ApproverID != 0 {
			used[c.ApproverID] = struct{}{}
		}
	}
	out := make([]uint64, 0, len(all))
	for _, id := range all {
		if _, taken := used[id]; !taken {
			out = append(out, id)
		}
	}
	return out
}

// AvailableLevels returns the levels in [MinLevel, MaxLevel] not used by the
// rest of the in-progress batch nor by existing approvals. Consistent with
// the duplicate-level and level-conflict rules of ValidateBatch.
func AvailableLevels(others []Candidate, existing []Record) []int {
	used := make(map[int]struct{}, len(others)+len(existing))
	for _, c := range others {
		used[c.Level] = struct{}{}
	}
	for _, r := range existing {
		used[r.Level] = struct{}{}
	}
	out := make([]int, 0, MaxLevel-MinLevel+1)
	for l := MinLevel; l <= MaxLevel; l++ {
		if _, taken := used[l]; !taken {
			out = append(out, l)
		}
	}
	return out
}
