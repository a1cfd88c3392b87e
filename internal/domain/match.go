package domain

// Match is one ranked search result.
type Match struct {
	Segment   Segment
	BaseScore int
	Score     int
	Tier      MatchTier
}
