package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yt-snapshot/internal/config"
)

// Server represents the API server
type Server struct {
	router   *gin.Engine
	client   *YouTubeClient
	resolver *ChannelResolver
}

// NewServer creates a new API server
func NewServer(cfg *config.Config) (*Server, error) {
	router := gin.Default()

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	client := NewYouTubeClient(cfg.YouTubeAPIKey).WithTimeout(cfg.RequestTimeout)

	resolver, err := NewChannelResolver(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		return nil, err
	}

	server := &Server{
		router:   router,
		client:   client,
		resolver: resolver,
	}

	// Setup routes
	server.setupRoutes()

	return server, nil
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Channel endpoints
	s.router.GET("/channel/resolve", s.resolveChannel)
	s.router.GET("/channel/:id/report", s.getChannelReport)
	s.router.GET("/channel/:id/summary", s.getChannelSummary)
}

// getChannelReport handles requests for a full channel report
func (s *Server) getChannelReport(c *gin.Context) {
	channelID := c.Param("id")

	log.Printf("Building report for channel: %s", channelID)

	report, err := s.client.BuildChannelReport(c.Request.Context(), channelID)
	if err != nil {
		c.JSON(upstreamStatus(err), gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getChannelSummary handles requests for a condensed channel summary
func (s *Server) getChannelSummary(c *gin.Context) {
	channelID := c.Param("id")

	log.Printf("Building summary for channel: %s", channelID)

	report, err := s.client.BuildChannelReport(c.Request.Context(), channelID)
	if err != nil {
		c.JSON(upstreamStatus(err), gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
		return
	}

	c.JSON(http.StatusOK, report.Summarize())
}

// resolveChannel handles requests to resolve a channel URL to its ID
func (s *Server) resolveChannel(c *gin.Context) {
	channelURL := c.Query("url")
	if channelURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	channelID, err := s.resolver.ResolveURL(channelURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"channelId": channelID})
}

// upstreamStatus maps build failures to response codes: transport and decode
// failures surface as 502, anything else as 500.
func upstreamStatus(err error) int {
	if errors.Is(err, ErrTransport) || errors.Is(err, ErrDecode) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
