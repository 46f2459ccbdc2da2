package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/jonfriesen/urlregex"
	"github.com/jonfriesen/urlregex/internal/config"
	"github.com/sirupsen/logrus"
)

type buildRequest struct {
	URLs   []string `json:"urls"`
	Scorer string   `json:"scorer,omitempty"`
}

type buildResponse struct {
	Pattern string         `json:"pattern"`
	Stats   urlregex.Stats `json:"stats"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler answers API Gateway requests carrying a JSON URL sample with the
// induced pattern.
type Handler struct {
	log    logrus.FieldLogger
	scorer urlregex.Scorer
}

func NewHandler(log logrus.FieldLogger, scorer urlregex.Scorer) *Handler {
	return &Handler{log: log, scorer: scorer}
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := h.log.WithFields(logrus.Fields{
		"request_id": requestID(req),
		"path":       req.Path,
	})

	body, err := decodeRequest(req)
	if err != nil {
		log.WithError(err).Warn("rejected request")
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	scorer := h.scorer
	switch body.Scorer {
	case "":
	case config.ScorerDistance:
		scorer = urlregex.DistanceScore
	case config.ScorerSimilarity:
		scorer = urlregex.SimilarityScore
	default:
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unsupported scorer: %q", body.Scorer)})
	}

	in := urlregex.NewInducer(urlregex.WithScorer(scorer), urlregex.WithLogger(log))
	in.Learn(body.URLs)

	pattern, err := in.Pattern()
	if err != nil {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	stats := in.Stats()
	log.WithFields(logrus.Fields{
		"learned": stats.LearnedCount,
		"pattern": pattern,
	}).Info("pattern built")

	return jsonResponse(http.StatusOK, buildResponse{Pattern: pattern, Stats: stats})
}

func decodeRequest(req events.APIGatewayProxyRequest) (*buildRequest, error) {
	raw := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, fmt.Errorf("decode body: %w", err)
		}
		raw = decoded
	}

	var body buildRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("malformed request body: %w", err)
	}
	if len(body.URLs) == 0 {
		return nil, errors.New("urls must not be empty")
	}
	return &body, nil
}

func requestID(req events.APIGatewayProxyRequest) string {
	if id := req.RequestContext.RequestID; id != "" {
		return id
	}
	return uuid.NewString()
}

func jsonResponse(status int, v interface{}) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("encode response: %w", err)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}
