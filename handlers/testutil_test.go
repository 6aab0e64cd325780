package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"ferry-pricing-api/config"
	"ferry-pricing-api/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

// testStore wraps a cache with no Redis client, so every read is a miss and
// every write is a no-op.
func testStore() *services.PredictionStore {
	return services.NewPredictionStore(&services.CacheService{})
}

// redisStore wraps an embedded Redis so tests can observe stored documents.
func redisStore(t *testing.T) *services.PredictionStore {
	t.Helper()
	srv := miniredis.RunT(t)
	port, err := strconv.Atoi(srv.Port())
	if err != nil {
		t.Fatalf("miniredis port %q: %v", srv.Port(), err)
	}
	cache, err := services.NewCacheService(config.RedisConfig{Host: srv.Host(), Port: port})
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	return services.NewPredictionStore(cache)
}

func testGenerator() *services.SyntheticGenerator {
	return services.NewSyntheticGeneratorAt(fixedNow)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return resp
}
