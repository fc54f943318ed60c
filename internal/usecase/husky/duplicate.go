package husky

import (
	"context"
	"sort"
	"strings"

	domainHusky "huskify-backend/internal/domain/husky"
)

// Duplicate scoring weights. Title overlap dominates; grade and job family
// matches nudge near-identical postings above the cutoff.
const (
	titleWeight     = 0.6
	gradeWeight     = 0.2
	jobFamilyWeight = 0.2

	duplicateScoreCutoff = 0.4
)

// CheckDuplicates scores all active huskies of the platform against the
// candidate fields and returns matches above the cutoff, best first.
func (u *Usecase) CheckDuplicates(ctx context.Context, in DuplicateCheckInput) ([]DuplicateMatch, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domainHusky.ErrInvalidInput
	}

	huskies, err := u.repo.ListByPlatformID(ctx, in.PlatformID)
	if err != nil {
		return nil, err
	}

	candidateTokens := tokenize(in.Title)
	var out []DuplicateMatch
	for i := range huskies {
		h := &huskies[i]
		if in.ExcludeHuskyID != "" && h.HuskyID == in.ExcludeHuskyID {
			continue
		}

		score := titleWeight * tokenOverlap(candidateTokens, tokenize(h.Title))
		if in.Grade != "" && strings.EqualFold(in.Grade, h.Grade) {
			score += gradeWeight
		}
		if in.JobFamilyID != 0 && in.JobFamilyID == h.JobFamilyID {
			score += jobFamilyWeight
		}
		if score < duplicateScoreCutoff {
			continue
		}
		out = append(out, DuplicateMatch{Husky: toHuskyDTO(h, nil), Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func tokenize(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		tok = strings.Trim(tok, ".,;:()[]/-")
		if len(tok) > 1 {
			out[tok] = struct{}{}
		}
	}
	return out
}

// Jaccard index over title tokens.
func tokenOverlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	common := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			common++
		}
	}
	union := len(a) + len(b) - common
	return float64(common) / float64(union)
}
