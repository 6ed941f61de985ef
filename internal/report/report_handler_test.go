package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	attendanceerrors "github.com/vivek068790/Employee-Register-App/internal/attendance/errors"
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/export"
	"github.com/vivek068790/Employee-Register-App/internal/report"
	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct {
	report.Service

	RecentFn  func(ctx context.Context, limit int) []domain.AttendanceSession
	SessionFn func(ctx context.Context, date domain.Date) (domain.AttendanceSession, error)
	ExportFn  func(ctx context.Context, date domain.Date) (export.File, error)
	MonthlyFn func(ctx context.Context, month time.Month, year int) report.MonthlyStats
}

func (f *fakeReportService) Recent(ctx context.Context, limit int) []domain.AttendanceSession {
	return f.RecentFn(ctx, limit)
}
func (f *fakeReportService) Session(ctx context.Context, date domain.Date) (domain.AttendanceSession, error) {
	return f.SessionFn(ctx, date)
}
func (f *fakeReportService) ExportSession(ctx context.Context, date domain.Date) (export.File, error) {
	return f.ExportFn(ctx, date)
}
func (f *fakeReportService) Monthly(ctx context.Context, month time.Month, year int) report.MonthlyStats {
	return f.MonthlyFn(ctx, month, year)
}

func setupRouter(svc report.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	report.RegisterRoutes(r.Group("/api/v1"), report.NewHandler(svc))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestReportHandler_GetSession(t *testing.T) {
	svc := &fakeReportService{
		SessionFn: func(ctx context.Context, date domain.Date) (domain.AttendanceSession, error) {
			if date.String() == "2025-03-05" {
				return domain.AttendanceSession{Date: date, TotalEmployees: 4, PresentCount: 1}, nil
			}
			return domain.AttendanceSession{}, attendanceerrors.ErrSessionNotFound
		},
	}
	r := setupRouter(svc)

	w := get(r, "/api/v1/sessions/2025-03-05")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalEmployees":4`)

	w = get(r, "/api/v1/sessions/2025-03-06")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/api/v1/sessions/05-03-2025")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_GetRecent(t *testing.T) {
	svc := &fakeReportService{
		RecentFn: func(ctx context.Context, limit int) []domain.AttendanceSession {
			assert.Equal(t, 3, limit)
			return []domain.AttendanceSession{}
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/sessions/recent?limit=3").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/sessions/recent?limit=-1").Code)
}

func TestReportHandler_ExportSession(t *testing.T) {
	svc := &fakeReportService{
		ExportFn: func(ctx context.Context, date domain.Date) (export.File, error) {
			return export.File{Name: "attendance-" + date.String() + ".csv", ContentType: export.ContentTypeCSV, Body: []byte("Name,Employee ID\n")}, nil
		},
	}
	w := get(setupRouter(svc), "/api/v1/sessions/2025-03-05/export")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance-2025-03-05.csv")
	assert.Equal(t, "Name,Employee ID\n", w.Body.String())
}

func TestReportHandler_GetMonthly(t *testing.T) {
	svc := &fakeReportService{
		MonthlyFn: func(ctx context.Context, month time.Month, year int) report.MonthlyStats {
			return report.MonthlyStats{Month: month, Year: year, AverageAttendance: 50}
		},
	}
	r := setupRouter(svc)

	w := get(r, "/api/v1/stats/monthly?month=3&year=2025")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"averageAttendance":50`)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/stats/monthly?month=13").Code)
}
