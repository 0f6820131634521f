package ors

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fretex/config"
	"fretex/internal/domain/service"
)

func newTestClient(t *testing.T, baseURL string) service.RouteProvider {
	t.Helper()

	cfg := &config.Config{
		Routing: &config.RoutingConfig{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Timeout: 2 * time.Second,
		},
	}

	provider, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return provider
}

func directionsPayload() map[string]any {
	return map[string]any{
		"features": []map[string]any{
			{
				"geometry": map[string]any{
					"type":        "LineString",
					"coordinates": [][]float64{{-46.63, -23.55}, {-45.9, -23.2}, {-43.17, -22.9}},
				},
				"properties": map[string]any{
					"summary": map[string]any{
						"distance": 431000.0,
						"duration": 19500.0,
					},
				},
			},
		},
	}
}

func TestComputeRoute(t *testing.T) {
	waypoints := []orb.Point{{-46.63, -23.55}, {-43.17, -22.9}}

	t.Run("decodes a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v2/directions/driving-car/geojson", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("Authorization"))

			var body struct {
				Coordinates [][]float64 `json:"coordinates"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Len(t, body.Coordinates, 2)

			json.NewEncoder(w).Encode(directionsPayload())
		}))
		defer server.Close()

		provider := newTestClient(t, server.URL)
		route, err := provider.ComputeRoute(context.Background(), "driving-car", waypoints)
		require.NoError(t, err)

		assert.Len(t, route.Geometry, 3)
		assert.InDelta(t, 431000.0, route.DistanceM, 0.1)
		assert.InDelta(t, 19500.0, route.DurationS, 0.1)
	})

	t.Run("maps unroutable pair to ErrNoRoute", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": 2009, "message": "route could not be found"},
			})
		}))
		defer server.Close()

		provider := newTestClient(t, server.URL)
		_, err := provider.ComputeRoute(context.Background(), "driving-car", waypoints)
		assert.ErrorIs(t, err, service.ErrNoRoute)
	})

	t.Run("surfaces provider errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": 2003, "message": "access denied"},
			})
		}))
		defer server.Close()

		provider := newTestClient(t, server.URL)
		_, err := provider.ComputeRoute(context.Background(), "driving-car", waypoints)
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrNoRoute)
	})

	t.Run("times out against a hanging server", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		cfg := &config.Config{
			Routing: &config.RoutingConfig{
				BaseURL: server.URL,
				Timeout: 50 * time.Millisecond,
			},
		}
		provider, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)

		_, err = provider.ComputeRoute(context.Background(), "driving-car", waypoints)
		assert.Error(t, err)
	})

	t.Run("rejects fewer than two waypoints", func(t *testing.T) {
		provider := newTestClient(t, "http://unused.invalid")
		_, err := provider.ComputeRoute(context.Background(), "driving-car", waypoints[:1])
		assert.Error(t, err)
	})
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
