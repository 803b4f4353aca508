package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yt-snapshot/internal/models"
)

// BuildChannelReport assembles a point-in-time report of a channel's public
// data: channel statistics plus every video in its uploads playlist with
// per-video statistics merged in. It returns a nil report and a nil error
// when the channel does not exist. Any transport or decode failure aborts
// the whole build; partial reports are never returned.
func (c *YouTubeClient) BuildChannelReport(ctx context.Context, channelID string) (*models.ChannelReport, error) {
	report, uploadsPlaylistID, err := c.lookupChannel(ctx, channelID)
	if err != nil || report == nil {
		return nil, err
	}

	records, order, err := c.enumerateUploads(ctx, uploadsPlaylistID)
	if err != nil {
		return nil, err
	}

	if err := c.mergeStatistics(ctx, records, order); err != nil {
		return nil, err
	}

	report.Uploads = make([]models.VideoRecord, 0, len(order))
	for _, videoID := range order {
		report.Uploads = append(report.Uploads, *records[videoID])
	}

	return report, nil
}

// lookupChannel fetches the channel's snippet, statistics, and content
// details. A response with no matching item yields a nil report, not an
// error. The second result is the id of the channel's uploads playlist.
func (c *YouTubeClient) lookupChannel(ctx context.Context, channelID string) (*models.ChannelReport, string, error) {
	channelURL := fmt.Sprintf("%s/channels?part=snippet,statistics,contentDetails&id=%s&key=%s",
		c.baseURL, channelID, c.apiKey)

	var response models.ChannelListResponse
	if err := c.fetchJSON(ctx, channelURL, &response); err != nil {
		return nil, "", err
	}

	if len(response.Items) == 0 {
		return nil, "", nil
	}

	item := response.Items[0]
	subscribers, _ := strconv.ParseInt(item.Statistics.SubscriberCount, 10, 64)
	views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	uploads, _ := strconv.ParseInt(item.Statistics.VideoCount, 10, 64)

	report := &models.ChannelReport{
		ChannelID:        item.ID,
		Title:            item.Snippet.Title,
		SubscriberCount:  subscribers,
		CreationDate:     item.Snippet.PublishedAt,
		TotalViewCount:   views,
		TotalUploadCount: uploads,
	}

	return report, item.ContentDetails.RelatedPlaylists.Uploads, nil
}

// enumerateUploads pages through the uploads playlist and returns one record
// per distinct video id plus the ids in enumeration order. A video id seen
// again on a later page overwrites the earlier record but keeps its original
// position.
func (c *YouTubeClient) enumerateUploads(ctx context.Context, playlistID string) (map[string]*models.VideoRecord, []string, error) {
	records := make(map[string]*models.VideoRecord)
	var order []string
	nextPageToken := ""

	for {
		pageURL := fmt.Sprintf("%s/playlistItems?part=snippet&playlistId=%s&maxResults=%d&key=%s",
			c.baseURL, playlistID, maxPageSize, c.apiKey)
		if nextPageToken != "" {
			pageURL += "&pageToken=" + nextPageToken
		}

		var page models.PlaylistItemsResponse
		if err := c.fetchJSON(ctx, pageURL, &page); err != nil {
			return nil, nil, err
		}

		for _, item := range page.Items {
			videoID := item.Snippet.ResourceID.VideoID
			if _, seen := records[videoID]; !seen {
				order = append(order, videoID)
			}
			records[videoID] = &models.VideoRecord{
				VideoID:     videoID,
				Title:       item.Snippet.Title,
				PublishedAt: item.Snippet.PublishedAt,
			}
		}

		if page.NextPageToken == "" {
			break
		}
		nextPageToken = page.NextPageToken
	}

	return records, order, nil
}

// mergeStatistics fetches per-video statistics in batches of at most 50 ids
// and overwrites the matching records' counters. Returned ids with no known
// record are ignored; records upstream never covers keep zero statistics.
func (c *YouTubeClient) mergeStatistics(ctx context.Context, records map[string]*models.VideoRecord, order []string) error {
	for start := 0; start < len(order); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(order) {
			end = len(order)
		}
		batch := order[start:end]

		statsURL := fmt.Sprintf("%s/videos?part=statistics&id=%s&key=%s",
			c.baseURL, strings.Join(batch, ","), c.apiKey)

		var response models.VideoListResponse
		if err := c.fetchJSON(ctx, statsURL, &response); err != nil {
			return err
		}

		for _, item := range response.Items {
			record, ok := records[item.ID]
			if !ok {
				continue
			}
			record.ViewCount, _ = strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
			record.LikeCount, _ = strconv.ParseInt(item.Statistics.LikeCount, 10, 64)
			record.CommentCount, _ = strconv.ParseInt(item.Statistics.CommentCount, 10, 64)
		}
	}

	return nil
}
