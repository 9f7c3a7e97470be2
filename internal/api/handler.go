// Package api exposes the audit service over HTTP and maps every
// internal failure to exactly one status code and one sanitized
// message. Raw oracle text and credentials never cross this boundary.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/localseolabs/seo-audit-agent/internal/models"
	"github.com/localseolabs/seo-audit-agent/internal/oracle"
	"github.com/localseolabs/seo-audit-agent/internal/prompt"
	"github.com/localseolabs/seo-audit-agent/internal/ratelimit"
	"github.com/localseolabs/seo-audit-agent/internal/report"
)

const oracleTimeout = 30 * time.Second

// User-facing messages. Internal details stay in the logs.
const (
	msgRateLimited = "Too many requests. Please try again later."
	msgBadInput    = "Missing or invalid business details. Please check the form and resubmit."
	msgUnavailable = "The audit engine is temporarily unavailable. Please try again later."
	msgBadFormat   = "The audit came back in an unexpected format. Please try again."
	msgInternal    = "Something went wrong while generating the audit. Please try again."
)

type Handler struct {
	oracle  oracle.Oracle
	limiter *ratelimit.Limiter
	timeout time.Duration
}

func NewHandler(o oracle.Oracle, limiter *ratelimit.Limiter) *Handler {
	return &Handler{
		oracle:  o,
		limiter: limiter,
		timeout: oracleTimeout,
	}
}

// NewRouter wires the handler onto a fresh Gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()
	router.POST("/api/generate-report", h.GenerateReport)
	router.GET("/health", Health)
	return router
}

// GenerateReport runs the audit pipeline for one submission: rate
// limit, validate input, call the oracle once, extract, validate the
// schema, respond. A failure at any stage ends the request; there are
// no retries.
func (h *Handler) GenerateReport(c *gin.Context) {
	reqID := uuid.New().String()

	if !h.limiter.Allow(c.ClientIP()) {
		log.Printf("[%s] rate limited: %s", reqID, c.ClientIP())
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: msgRateLimited})
		return
	}

	var profile models.BusinessProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		log.Printf("[%s] rejected submission: %v", reqID, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgBadInput})
		return
	}

	log.Printf("[%s] audit requested for %q", reqID, profile.BusinessName)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	raw, err := h.oracle.Generate(ctx, prompt.Build(profile))
	if err != nil {
		h.fail(c, reqID, profile.BusinessName, err)
		return
	}

	parsed, err := report.Extract(raw)
	if err != nil {
		h.fail(c, reqID, profile.BusinessName, err)
		return
	}

	audit, err := report.Validate(parsed)
	if err != nil {
		h.fail(c, reqID, profile.BusinessName, err)
		return
	}

	log.Printf("[%s] audit completed for %q (score %.0f)", reqID, profile.BusinessName, audit.OverallScore)
	c.JSON(http.StatusOK, audit)
}

// fail maps a pipeline error to its status code and sanitized message.
func (h *Handler) fail(c *gin.Context, reqID, businessName string, err error) {
	var (
		unavailable *oracle.UnavailableError
		malformed   *report.MalformedOutputError
		schema      *report.SchemaError
	)

	switch {
	case errors.As(err, &unavailable):
		log.Printf("[%s] oracle unavailable for %q: %v", reqID, businessName, err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: msgUnavailable})
	case errors.As(err, &malformed):
		log.Printf("[%s] malformed oracle output for %q: %v (raw: %s)", reqID, businessName, err, truncate(malformed.Raw, 200))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgBadFormat})
	case errors.As(err, &schema):
		log.Printf("[%s] report schema violation for %q: %v", reqID, businessName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgBadFormat})
	default:
		log.Printf("[%s] audit failed for %q: %v", reqID, businessName, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternal})
	}
}

// Health answers liveness probes; it does not touch the oracle.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// truncate shortens s to at most n bytes, backing up to a rune
// boundary so the log line never carries a torn character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
