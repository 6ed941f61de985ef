package query_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/shared/query"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func ctxFor(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestDate(t *testing.T) {
	d, err := query.Date(ctxFor("/x"), "date", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", d.String())

	d, err = query.Date(ctxFor("/x?date=2024-02-29"), "date", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	c := ctxFor("/sessions/2025-01-02")
	c.Params = gin.Params{{Key: "date", Value: "2025-01-02"}}
	d, err = query.Date(c, "date", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", d.String())

	_, err = query.Date(ctxFor("/x?date=2025-02-30"), "date", now)
	assert.ErrorIs(t, err, query.ErrInvalidDate)
}

func TestPeriod(t *testing.T) {
	m, y, err := query.Period(ctxFor("/x"), now)
	require.NoError(t, err)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 2025, y)

	m, y, err = query.Period(ctxFor("/x?month=12&year=2024"), now)
	require.NoError(t, err)
	assert.Equal(t, time.December, m)
	assert.Equal(t, 2024, y)

	_, _, err = query.Period(ctxFor("/x?month=0"), now)
	assert.ErrorIs(t, err, query.ErrInvalidMonth)
	_, _, err = query.Period(ctxFor("/x?year=abc"), now)
	assert.ErrorIs(t, err, query.ErrInvalidYear)
}

func TestLimit(t *testing.T) {
	n, err := query.Limit(ctxFor("/x"), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = query.Limit(ctxFor("/x?limit=0"), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = query.Limit(ctxFor("/x?limit=-1"), 5)
	assert.ErrorIs(t, err, query.ErrInvalidLimit)
}
