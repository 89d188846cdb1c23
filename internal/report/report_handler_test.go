package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	SubmitFn            func(ctx context.Context, employeeID string, req SubmitReportRequest) (ReportResponse, error)
	ListMineFn          func(ctx context.Context, employeeID string) ([]ReportResponse, error)
	ListForSupervisorFn func(ctx context.Context, employeeID, rawDate string) ([]ReportResponse, error)
}

func (f *fakeService) Submit(ctx context.Context, employeeID string, req SubmitReportRequest) (ReportResponse, error) {
	return f.SubmitFn(ctx, employeeID, req)
}
func (f *fakeService) ListMine(ctx context.Context, employeeID string) ([]ReportResponse, error) {
	return f.ListMineFn(ctx, employeeID)
}
func (f *fakeService) ListForSupervisor(ctx context.Context, employeeID, rawDate string) ([]ReportResponse, error) {
	return f.ListForSupervisorFn(ctx, employeeID, rawDate)
}

func TestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{SubmitFn: func(_ context.Context, employeeID string, req SubmitReportRequest) (ReportResponse, error) {
		assert.Equal(t, "emp-1", employeeID)
		return ReportResponse{ID: "r-1", Summary: req.Summary}, nil
	}}
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(`{"summary":"done"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("employee_id", "emp-1")

	h.Submit(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Submit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListForSupervisor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{ListForSupervisorFn: func(_ context.Context, _ string, rawDate string) ([]ReportResponse, error) {
		assert.Equal(t, "2024-06-03", rawDate)
		return []ReportResponse{{ID: "r-1"}}, nil
	}}
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/reports?date=2024-06-03", nil)

	h.ListForSupervisor(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"r-1"`)
}
