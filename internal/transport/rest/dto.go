package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

type segmentResponse struct {
	ID             uuid.UUID      `json:"id"`
	SourceText     string         `json:"sourceText"`
	TargetText     string         `json:"targetText"`
	SourceLanguage string         `json:"sourceLanguage"`
	TargetLanguage string         `json:"targetLanguage"`
	Context        *string        `json:"context,omitempty"`
	Event          *string        `json:"event,omitempty"`
	Topic          *string        `json:"topic,omitempty"`
	TranslatedBy   *uuid.UUID     `json:"translatedBy,omitempty"`
	ContentID      *uuid.UUID     `json:"contentId,omitempty"`
	ProjectID      *uuid.UUID     `json:"projectId,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	UsageCount     int            `json:"usageCount"`
	AvgRating      *float64       `json:"avgRating"`
	RatingCount    int            `json:"ratingCount"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func toSegmentResponse(s *domain.Segment) segmentResponse {
	return segmentResponse{
		ID:             s.ID,
		SourceText:     s.SourceText,
		TargetText:     s.TargetText,
		SourceLanguage: s.SourceLanguage,
		TargetLanguage: s.TargetLanguage,
		Context:        s.Context,
		Event:          s.Event,
		Topic:          s.Topic,
		TranslatedBy:   s.TranslatedBy,
		ContentID:      s.ContentID,
		ProjectID:      s.ProjectID,
		Metadata:       s.Metadata,
		UsageCount:     s.UsageCount,
		AvgRating:      s.AvgRating,
		RatingCount:    s.RatingCount,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type segmentListResponse struct {
	Items  []segmentResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type matchResponse struct {
	Segment   segmentResponse `json:"segment"`
	Score     int             `json:"score"`
	BaseScore int             `json:"baseScore"`
	Tier      string          `json:"tier"`
}

type matchListResponse struct {
	Items []matchResponse `json:"items"`
}

func toMatchList(matches []domain.Match) matchListResponse {
	items := make([]matchResponse, len(matches))
	for i := range matches {
		m := &matches[i]
		items[i] = matchResponse{
			Segment:   toSegmentResponse(&m.Segment),
			Score:     m.Score,
			BaseScore: m.BaseScore,
			Tier:      m.Tier.String(),
		}
	}
	return matchListResponse{Items: items}
}

type feedbackResponse struct {
	ID        uuid.UUID  `json:"id"`
	SegmentID uuid.UUID  `json:"segmentId"`
	UserID    uuid.UUID  `json:"userId"`
	Action    string     `json:"action"`
	Rating    *int       `json:"rating,omitempty"`
	Comment   *string    `json:"comment,omitempty"`
	ProjectID *uuid.UUID `json:"projectId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toFeedbackResponse(e *domain.FeedbackEvent) feedbackResponse {
	return feedbackResponse{
		ID:        e.ID,
		SegmentID: e.SegmentID,
		UserID:    e.UserID,
		Action:    e.Action.String(),
		Rating:    e.Rating,
		Comment:   e.Comment,
		ProjectID: e.ProjectID,
		CreatedAt: e.CreatedAt,
	}
}

type recordFeedbackResponse struct {
	Event   feedbackResponse `json:"event"`
	Segment segmentResponse  `json:"segment"`
}

type feedbackListResponse struct {
	Items []feedbackResponse `json:"items"`
}

type feedbackSummaryResponse struct {
	SegmentID   uuid.UUID      `json:"segmentId"`
	Total       int            `json:"total"`
	Counts      map[string]int `json:"counts"`
	RatingCount int            `json:"ratingCount"`
	AvgRating   *float64       `json:"avgRating"`
}

func toSummaryResponse(s *domain.FeedbackSummary) feedbackSummaryResponse {
	counts := make(map[string]int, len(s.Counts))
	for action, n := range s.Counts {
		counts[action.String()] = n
	}
	return feedbackSummaryResponse{
		SegmentID:   s.SegmentID,
		Total:       s.Total(),
		Counts:      counts,
		RatingCount: s.RatingCount,
		AvgRating:   s.AvgRating,
	}
}

type versionResponse struct {
	ID           uuid.UUID `json:"id"`
	SegmentID    uuid.UUID `json:"segmentId"`
	Version      int       `json:"version"`
	SourceText   string    `json:"sourceText"`
	TargetText   string    `json:"targetText"`
	ChangedBy    uuid.UUID `json:"changedBy"`
	ChangeReason *string   `json:"changeReason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toVersionResponse(v *domain.VersionRecord) versionResponse {
	return versionResponse{
		ID:           v.ID,
		SegmentID:    v.SegmentID,
		Version:      v.Version,
		SourceText:   v.SourceText,
		TargetText:   v.TargetText,
		ChangedBy:    v.ChangedBy,
		ChangeReason: v.ChangeReason,
		CreatedAt:    v.CreatedAt,
	}
}

type versionListResponse struct {
	Items []versionResponse `json:"items"`
}
