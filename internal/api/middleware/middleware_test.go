package middleware

import (
	"Marketplace/internal/pkg/consts"
	"Marketplace/internal/pkg/logger"
	"Marketplace/internal/pkg/metrics"
	"Marketplace/internal/pkg/security"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code int `json:"code"`
	Data struct {
		UserID uint64   `json:"userId"`
		Roles  []string `json:"roles"`
	} `json:"data"`
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *security.TokenValidator, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	validator := security.NewTokenValidator("test-secret")

	r := gin.New()
	r.GET("/me", AuthMiddleware(validator, rdb), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 200, "data": gin.H{
			"userId": c.GetUint64("user_id"),
			"roles":  c.GetStringSlice("roles"),
		}})
	})
	r.GET("/dashboard", AuthMiddleware(validator, rdb), CheckRoles(consts.RoleProducer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 200})
	})
	return r, validator, mr
}

func doRequest(r http.Handler, method, path, token string) envelope {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body envelope
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

func TestAuthMiddleware(t *testing.T) {
	r, validator, mr := setupAuthRouter(t)

	token, err := validator.GenerateToken(42, []string{consts.RoleUser})
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, 401, doRequest(r, http.MethodGet, "/me", "").Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		assert.Equal(t, 401, doRequest(r, http.MethodGet, "/me", "not-a-jwt").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		body := doRequest(r, http.MethodGet, "/me", token)
		assert.Equal(t, 200, body.Code)
		assert.Equal(t, uint64(42), body.Data.UserID)
		assert.Equal(t, []string{consts.RoleUser}, body.Data.Roles)
	})

	t.Run("revoked token", func(t *testing.T) {
		signature, err := security.ExtractSignature(token)
		require.NoError(t, err)
		require.NoError(t, mr.Set(consts.RevokedTokenKey+signature, "1"))

		assert.Equal(t, 401, doRequest(r, http.MethodGet, "/me", token).Code)
	})
}

func TestCheckRoles(t *testing.T) {
	r, validator, _ := setupAuthRouter(t)

	userToken, err := validator.GenerateToken(1, []string{consts.RoleUser})
	require.NoError(t, err)
	producerToken, err := validator.GenerateToken(2, []string{consts.RoleUser, consts.RoleProducer})
	require.NoError(t, err)

	assert.Equal(t, 403, doRequest(r, http.MethodGet, "/dashboard", userToken).Code)
	assert.Equal(t, 200, doRequest(r, http.MethodGet, "/dashboard", producerToken).Code)

	adminToken, err := validator.GenerateToken(3, []string{consts.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 200, doRequest(r, http.MethodGet, "/dashboard", adminToken).Code)
}

func TestTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		traceID, _ := c.Request.Context().Value(logger.TraceIDKey).(string)
		c.String(http.StatusOK, traceID)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceHeader, "upstream-trace")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "upstream-trace", w.Body.String())
	assert.Equal(t, "upstream-trace", w.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceHeader, strings.Repeat("x", 100))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Len(t, w.Body.String(), 36)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewMetrics(prometheus.NewRegistry())

	r := gin.New()
	r.Use(MetricsMiddleware(m))
	r.GET("/api/bookmarks/:post_id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, path := range []string{"/api/bookmarks/1", "/api/bookmarks/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/bookmarks/:post_id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestAuditMiddleware_KeepsRequestBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		c.String(http.StatusOK, string(body))
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"reason":"spam"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, `{"reason":"spam"}`, w.Body.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc"))
	long := strings.Repeat("a", auditBodyLimit+10)
	assert.Len(t, truncate(long), auditBodyLimit+3)
}
