package supervisor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leaveflow/internal/supervisor"
	supervisorerrors "go-leaveflow/internal/supervisor/errors"
	supervisorMock "go-leaveflow/internal/supervisor/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSupervisorHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := supervisorMock.NewMockService(ctrl)
		h := supervisor.NewHandler(svc)

		empID := uuid.New().String()
		svc.EXPECT().
			Create(gomock.Any(), supervisor.CreateSupervisorRequest{EmployeeID: empID, Department: "IT"}).
			DoAndReturn(func(_ context.Context, req supervisor.CreateSupervisorRequest) (supervisor.SupervisorResponse, error) {
				return supervisor.SupervisorResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID, Department: req.Department}, nil
			})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/supervisors",
			strings.NewReader(`{"employee_id":"`+empID+`","department":"IT"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), empID)
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := supervisor.NewHandler(supervisorMock.NewMockService(ctrl))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/supervisors", strings.NewReader(`{"employee_id":"nope"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSupervisorHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := supervisorMock.NewMockService(ctrl)
	h := supervisor.NewHandler(svc)

	svc.EXPECT().Delete(gomock.Any(), "missing").Return(supervisorerrors.ErrSupervisorNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/supervisors/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SUPERVISOR_NOT_FOUND")
}
