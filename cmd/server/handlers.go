package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
	"github.com/baditaflorin/l"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// StatisticsCalculator is the statistics dependency of the API.
type StatisticsCalculator interface {
	Compute(ctx context.Context, text string) domain.TextStatistics
}

// SimilarityCalculator is the similarity dependency of the API.
type SimilarityCalculator interface {
	Compute(ctx context.Context, a, b string) domain.SimilarityResult
	ComputeWithThreshold(ctx context.Context, a, b string, threshold float64) domain.SimilarityResult
}

// API serves the statistics and similarity endpoints.
type API struct {
	statistics     StatisticsCalculator
	similarity     SimilarityCalculator
	logger         l.Logger
	requestTimeout time.Duration
}

// NewAPI creates the request handlers.
func NewAPI(stats StatisticsCalculator, sim SimilarityCalculator, logger l.Logger, requestTimeout time.Duration) *API {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	return &API{
		statistics:     stats,
		similarity:     sim,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// StatisticsRequest is the body of POST /statistics.
type StatisticsRequest struct {
	Text string `json:"text"`
}

// StatisticsResponse is the body returned by POST /statistics.
type StatisticsResponse struct {
	domain.TextStatistics
	ReadingMinutes int `json:"reading_minutes"`
}

// SimilarityRequest is the body of POST /similarity.
type SimilarityRequest struct {
	TextA     string   `json:"text_a"`
	TextB     string   `json:"text_b"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// SimilarityResponse is the body returned by POST /similarity.
type SimilarityResponse struct {
	Score        float64 `json:"score"`
	Percent      float64 `json:"percent"`
	Passed       bool    `json:"passed"`
	Threshold    float64 `json:"threshold"`
	TokensA      int     `json:"tokens_a"`
	TokensB      int     `json:"tokens_b"`
	Intersection int     `json:"intersection"`
	Union        int     `json:"union"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// requestHandler is the main fasthttp request handler
func (a *API) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	requestID := string(ctx.Request.Header.Peek(RequestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set(RequestIDHeader, requestID)

	switch string(ctx.Path()) {
	case "/health":
		a.handleHealthCheck(ctx)
	case "/statistics":
		a.handleStatistics(ctx)
	case "/similarity":
		a.handleSimilarity(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		a.writeJSONError(ctx, "Not found")
	}

	a.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (a *API) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() && !ctx.IsHead() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		a.writeJSONError(ctx, "Method not allowed")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleStatistics handles text statistics requests
func (a *API) handleStatistics(ctx *fasthttp.RequestCtx) {
	var req StatisticsRequest
	if !a.decodePost(ctx, &req) {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), a.requestTimeout)
	defer cancel()

	stats := a.statistics.Compute(c, req.Text)

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, StatisticsResponse{
		TextStatistics: stats,
		ReadingMinutes: stats.ReadingTime.Minutes,
	})
}

// handleSimilarity handles similarity requests
func (a *API) handleSimilarity(ctx *fasthttp.RequestCtx) {
	var req SimilarityRequest
	if !a.decodePost(ctx, &req) {
		return
	}
	if req.Threshold != nil && (*req.Threshold < 0 || *req.Threshold > 1) {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "threshold must be between 0 and 1")
		return
	}

	c, cancel := context.WithTimeout(context.Background(), a.requestTimeout)
	defer cancel()

	var result domain.SimilarityResult
	if req.Threshold != nil {
		result = a.similarity.ComputeWithThreshold(c, req.TextA, req.TextB, *req.Threshold)
	} else {
		result = a.similarity.Compute(c, req.TextA, req.TextB)
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, SimilarityResponse{
		Score:        result.Score,
		Percent:      result.Score * 100,
		Passed:       result.Passed,
		Threshold:    result.Threshold,
		TokensA:      result.TokensA,
		TokensB:      result.TokensB,
		Intersection: result.Intersection,
		Union:        result.Union,
	})
}

// decodePost enforces POST and decodes the JSON body into v. It writes the
// error response and returns false when the request is unusable.
func (a *API) decodePost(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		a.writeJSONError(ctx, "Method not allowed")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// writeJSONResponse writes a JSON response to the context
func (a *API) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON response", "error", err)
		a.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (a *API) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
