package models

import "time"

// ChannelReport is a point-in-time snapshot of a channel's public data.
// CreationDate is the zero time when upstream reports no creation timestamp.
// Uploads preserves the enumeration order of the channel's uploads playlist.
type ChannelReport struct {
	ChannelID        string        `json:"channelId"`
	Title            string        `json:"title"`
	SubscriberCount  int64         `json:"subscriberCount"`
	CreationDate     time.Time     `json:"creationDate"`
	TotalViewCount   int64         `json:"totalViewCount"`
	TotalUploadCount int64         `json:"totalUploadCount"`
	Uploads          []VideoRecord `json:"uploads"`
}

// ChannelListResponse represents the channel lookup response from YouTube API
type ChannelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string    `json:"title"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			ViewCount       string `json:"viewCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}
