package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// jobServiceMock is a testify mock of services.JobService.
type jobServiceMock struct {
	mock.Mock
}

func (m *jobServiceMock) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *jobServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*models.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobWithCompany), args.Error(1)
}

func (m *jobServiceMock) ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobWithCompany), args.Error(1)
}

func (m *jobServiceMock) ListCompanyJobs(ctx context.Context, callerID uuid.UUID, req *dto.ListCompanyJobsRequest) ([]models.JobWithApplicationCount, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobWithApplicationCount), args.Error(1)
}

func (m *jobServiceMock) Update(ctx context.Context, callerID uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *jobServiceMock) UpdateStatus(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID, status models.JobStatus) (*models.Job, error) {
	args := m.Called(ctx, callerID, jobID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func newJobsRouter(svc services.JobService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewJobHandler(svc, validator.New())
	router.GET("/jobs", handler.ListJobs)
	router.GET("/jobs/mine", func(c *gin.Context) { c.Set("userID", userID) }, handler.ListMyJobs)
	return router
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJobHandler_ListJobs_QueryValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"Negative Limit", "?limit=-1"},
		{"Zero Limit", "?limit=0"},
		{"Oversized Limit", "?limit=500"},
		{"Negative Offset", "?offset=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(jobServiceMock)
			router := newJobsRouter(svc, uuid.New())

			w := getPath(t, router, "/jobs"+tt.query)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "ListActive", mock.Anything, mock.Anything)
		})
	}
}

func TestJobHandler_ListJobs_DefaultPagination(t *testing.T) {
	svc := new(jobServiceMock)
	svc.On("ListActive", mock.Anything, mock.MatchedBy(func(req *dto.ListJobsRequest) bool {
		return req.Limit == 20 && req.Offset == 0
	})).Return([]models.JobWithCompany{}, nil).Once()

	router := newJobsRouter(svc, uuid.New())
	w := getPath(t, router, "/jobs")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestJobHandler_ListMyJobs_QueryValidation(t *testing.T) {
	t.Run("Negative Limit Never Reaches The Service", func(t *testing.T) {
		svc := new(jobServiceMock)
		router := newJobsRouter(svc, uuid.New())

		w := getPath(t, router, "/jobs/mine?limit=-1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ListCompanyJobs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Status Filter Is Rejected", func(t *testing.T) {
		svc := new(jobServiceMock)
		router := newJobsRouter(svc, uuid.New())

		w := getPath(t, router, "/jobs/mine?status=archived")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ListCompanyJobs", mock.Anything, mock.Anything, mock.Anything)
	})
}
