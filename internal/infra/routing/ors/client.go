// Package ors implements the RouteProvider contract against the
// OpenRouteService directions API.
package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"fretex/config"
	"fretex/internal/domain/service"
)

const defaultTimeout = 12 * time.Second

// ORS error codes for unroutable requests.
const (
	codeRouteNotFound     = 2009
	codePointNotFound     = 2010
	codeNoRoutableSegment = 2099
)

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an OpenRouteService directions client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.RouteProvider, error) {
	if cfg.Routing == nil || cfg.Routing.BaseURL == "" {
		return nil, errors.New("routing base URL must be configured")
	}

	timeout := cfg.Routing.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL:    cfg.Routing.BaseURL,
		apiKey:     cfg.Routing.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry   geojson.Geometry `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ComputeRoute calls the directions API and decodes the GeoJSON response.
func (c *client) ComputeRoute(ctx context.Context, profile string, waypoints []orb.Point) (*service.Route, error) {
	if len(waypoints) < 2 {
		return nil, errors.New("at least two waypoints are required")
	}

	coords := make([][]float64, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = []float64{wp.Lon(), wp.Lat()}
	}

	body, err := json.Marshal(directionsRequest{Coordinates: coords})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read directions response")
	}

	var decoded directionsResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, errors.Wrap(err, "decode directions response")
	}

	if decoded.Error != nil {
		switch decoded.Error.Code {
		case codeRouteNotFound, codePointNotFound, codeNoRoutableSegment:
			return nil, service.ErrNoRoute
		default:
			return nil, errors.Errorf("directions error %d: %s", decoded.Error.Code, decoded.Error.Message)
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("directions returned status %d", resp.StatusCode)
	}

	if len(decoded.Features) == 0 {
		return nil, service.ErrNoRoute
	}

	line, ok := decoded.Features[0].Geometry.Geometry().(orb.LineString)
	if !ok || len(line) < 2 {
		return nil, errors.New("directions response has no usable geometry")
	}

	summary := decoded.Features[0].Properties.Summary

	c.logger.DebugContext(ctx, "route computed",
		slog.String("profile", profile),
		slog.Float64("distance_m", summary.Distance),
		slog.Float64("duration_s", summary.Duration),
		slog.Duration("elapsed", time.Since(start)))

	return &service.Route{
		Geometry:  line,
		DistanceM: summary.Distance,
		DurationS: summary.Duration,
	}, nil
}
