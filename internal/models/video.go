package models

import "time"

// VideoRecord represents one uploaded video in a channel report
type VideoRecord struct {
	VideoID      string    `json:"videoId"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"publishedAt"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
}

// PlaylistItemsResponse represents one page of an uploads playlist from YouTube API
type PlaylistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title       string    `json:"title"`
			PublishedAt time.Time `json:"publishedAt"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// VideoListResponse represents the batch statistics response from YouTube API
type VideoListResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}
