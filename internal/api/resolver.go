package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ChannelResolver turns public channel URLs into channel IDs using the
// official YouTube API client.
type ChannelResolver struct {
	service *youtube.Service
}

// NewChannelResolver creates a resolver authenticated with the given API key.
// Extra client options are appended after the key, which lets tests point the
// resolver at a fake endpoint.
func NewChannelResolver(ctx context.Context, apiKey string, opts ...option.ClientOption) (*ChannelResolver, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &ChannelResolver{service: service}, nil
}

// ResolveURL extracts the channel ID from various YouTube URL formats,
// looking it up through the API when the URL carries a handle or username.
func (r *ChannelResolver) ResolveURL(channelURL string) (string, error) {
	parsedURL, err := url.Parse(channelURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch {
	case strings.Contains(parsedURL.Host, "youtube.com"):
		path := parsedURL.Path
		switch {
		case strings.HasPrefix(path, "/channel/"):
			// Format: youtube.com/channel/UC...
			return strings.TrimPrefix(path, "/channel/"), nil
		case strings.HasPrefix(path, "/@"):
			// Format: youtube.com/@Handle
			return r.resolveHandle(strings.TrimPrefix(path, "/@"))
		case strings.HasPrefix(path, "/c/"), strings.HasPrefix(path, "/user/"):
			// Format: youtube.com/c/ChannelName or youtube.com/user/Username
			name := strings.TrimPrefix(path, "/c/")
			name = strings.TrimPrefix(name, "/user/")
			return r.resolveUsername(name)
		}
	case strings.Contains(parsedURL.Host, "youtu.be"):
		return "", fmt.Errorf("youtu.be URLs are typically video URLs, not channel URLs")
	}

	return "", fmt.Errorf("unsupported YouTube URL format")
}

func (r *ChannelResolver) resolveHandle(handle string) (string, error) {
	response, err := r.service.Channels.List([]string{"id"}).ForHandle(handle).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel ID: %w", err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("no channel found for handle: @%s", handle)
	}
	return response.Items[0].Id, nil
}

func (r *ChannelResolver) resolveUsername(username string) (string, error) {
	response, err := r.service.Channels.List([]string{"id"}).ForUsername(username).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel ID: %w", err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("no channel found for username: %s", username)
	}
	return response.Items[0].Id, nil
}
