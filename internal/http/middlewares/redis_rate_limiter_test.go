package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func matchCommand(name string) gomock.Matcher {
	return mock.MatchFn(func(cmd []string) bool {
		return len(cmd) > 0 && cmd[0] == name
	}, name)
}

func doLimitedRequest(t *testing.T, mw echo.MiddlewareFunc) int {
	t.Helper()

	e := echo.New()
	e.Use(mw)
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRedisRateLimiterAllowsFirstHitAndSetsExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	client.EXPECT().
		Do(gomock.Any(), matchCommand("INCR")).
		Return(mock.Result(mock.RedisInt64(1)))
	client.EXPECT().
		Do(gomock.Any(), matchCommand("EXPIRE")).
		Return(mock.Result(mock.RedisInt64(1)))

	code := doLimitedRequest(t, RedisRateLimiter(client, 2, time.Minute))
	assert.Equal(t, http.StatusOK, code)
}

func TestRedisRateLimiterBlocksOverLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	// the window already holds more hits than the limit; no expiry is
	// set on a non-first hit
	client.EXPECT().
		Do(gomock.Any(), matchCommand("INCR")).
		Return(mock.Result(mock.RedisInt64(3)))

	code := doLimitedRequest(t, RedisRateLimiter(client, 2, time.Minute))
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestRedisRateLimiterFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	client.EXPECT().
		Do(gomock.Any(), matchCommand("INCR")).
		Return(mock.ErrorResult(errors.New("redis unreachable")))

	code := doLimitedRequest(t, RedisRateLimiter(client, 2, time.Minute))
	assert.Equal(t, http.StatusOK, code)
}
