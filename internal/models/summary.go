package models

import (
	"sort"
	"time"
)

// ChannelSummary condenses a ChannelReport into headline engagement numbers
type ChannelSummary struct {
	ChannelID          string        `json:"channelId"`
	Title              string        `json:"title"`
	UploadCount        int           `json:"uploadCount"`
	TotalViews         int64         `json:"totalViews"`
	TotalLikes         int64         `json:"totalLikes"`
	TotalComments      int64         `json:"totalComments"`
	AverageViews       float64       `json:"averageViews"`
	LikeToViewRatio    float64       `json:"likeToViewRatio"`
	CommentToViewRatio float64       `json:"commentToViewRatio"`
	TopVideos          []VideoRecord `json:"topVideos"`
	UploadWindow       TimeRange     `json:"uploadWindow"`
	GeneratedAt        time.Time     `json:"generatedAt"`
}

// TimeRange represents the period covered by a channel's uploads
type TimeRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// EngagementScore calculates the engagement score for a video
// This is a weighted combination of views, likes, and comments
func (v *VideoRecord) EngagementScore() float64 {
	if v.ViewCount == 0 {
		return 0
	}

	// Weight factors (can be adjusted)
	const (
		viewWeight    = 1.0
		likeWeight    = 2.0
		commentWeight = 3.0
	)

	return viewWeight*float64(v.ViewCount) +
		likeWeight*float64(v.LikeCount) +
		commentWeight*float64(v.CommentCount)
}

// Summarize computes a ChannelSummary from an assembled report. It reads the
// report without modifying it.
func (r *ChannelReport) Summarize() *ChannelSummary {
	summary := &ChannelSummary{
		ChannelID:   r.ChannelID,
		Title:       r.Title,
		UploadCount: len(r.Uploads),
		GeneratedAt: time.Now(),
	}

	if len(r.Uploads) == 0 {
		return summary
	}

	oldest := r.Uploads[0].PublishedAt
	newest := r.Uploads[0].PublishedAt
	for _, video := range r.Uploads {
		summary.TotalViews += video.ViewCount
		summary.TotalLikes += video.LikeCount
		summary.TotalComments += video.CommentCount
		if video.PublishedAt.Before(oldest) {
			oldest = video.PublishedAt
		}
		if video.PublishedAt.After(newest) {
			newest = video.PublishedAt
		}
	}

	summary.AverageViews = float64(summary.TotalViews) / float64(len(r.Uploads))
	if summary.TotalViews > 0 {
		summary.LikeToViewRatio = float64(summary.TotalLikes) / float64(summary.TotalViews)
		summary.CommentToViewRatio = float64(summary.TotalComments) / float64(summary.TotalViews)
	}

	// Sort a copy so the report's enumeration order stays intact
	top := make([]VideoRecord, len(r.Uploads))
	copy(top, r.Uploads)
	sort.Slice(top, func(i, j int) bool {
		return top[i].EngagementScore() > top[j].EngagementScore()
	})
	if len(top) > 5 {
		top = top[:5]
	}
	summary.TopVideos = top

	summary.UploadWindow = TimeRange{
		StartDate: oldest.Format("2006-01-02"),
		EndDate:   newest.Format("2006-01-02"),
	}

	return summary
}
