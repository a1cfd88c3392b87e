package domain

// FeedbackAction is the kind of user interaction recorded against a segment.
type FeedbackAction string

const (
	FeedbackActionUsed      FeedbackAction = "used"
	FeedbackActionDismissed FeedbackAction = "dismissed"
	FeedbackActionRated     FeedbackAction = "rated"
	FeedbackActionCopied    FeedbackAction = "copied"
)

func (a FeedbackAction) String() string { return string(a) }

func (a FeedbackAction) IsValid() bool {
	switch a {
	case FeedbackActionUsed, FeedbackActionDismissed, FeedbackActionRated, FeedbackActionCopied:
		return true
	}
	return false
}

// MutatesSegment reports whether recording this action changes the segment's statistics.
func (a FeedbackAction) MutatesSegment() bool {
	return a == FeedbackActionUsed || a == FeedbackActionRated
}

// MatchTier is a coarse label for a match score, as shown next to suggestions.
type MatchTier string

const (
	MatchTierExact  MatchTier = "exact"
	MatchTierHigh   MatchTier = "high"
	MatchTierMedium MatchTier = "medium"
	MatchTierFuzzy  MatchTier = "fuzzy"
)

func (t MatchTier) String() string { return string(t) }

// TierForScore maps a 0-100 match score onto its tier.
func TierForScore(score int) MatchTier {
	switch {
	case score >= 100:
		return MatchTierExact
	case score >= 90:
		return MatchTierHigh
	case score >= 80:
		return MatchTierMedium
	default:
		return MatchTierFuzzy
	}
}

// SortOrder is the direction for listing ordered records.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}
