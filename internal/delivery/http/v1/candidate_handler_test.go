package v1_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "go-candidate-intake/internal/delivery/http/v1"
	"go-candidate-intake/internal/domain"
	"go-candidate-intake/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCandidateUsecase struct {
	mock.Mock
}

func (m *MockCandidateUsecase) AddCandidate(ctx context.Context, data *domain.CandidateSubmission) (*domain.Candidate, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func setupRouter(uc domain.CandidateUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/v1")
	v1.NewCandidateHandler(group, uc)
	return r
}

func TestAddCandidateHandler_Created(t *testing.T) {
	uc := new(MockCandidateUsecase)
	uc.On("AddCandidate", mock.Anything, mock.MatchedBy(func(d *domain.CandidateSubmission) bool {
		return d.Email == "john@example.com"
	})).Return(&domain.Candidate{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com"}, nil)
	router := setupRouter(uc)

	body := `{"firstName":"John","lastName":"Doe","email":"john@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/candidates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Candidate added successfully")
	assert.Contains(t, w.Body.String(), `"id":1`)
}

func TestAddCandidateHandler_RejectionIsAlways400(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"validation failure", apperror.BadRequest("Invalid email")},
		{"duplicate email", apperror.Conflict("The email already exists in the database")},
		{"store failure", apperror.Unavailable("No se pudo conectar con la base de datos. Por favor, asegúrese de que el servidor de base de datos esté en ejecución.")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := new(MockCandidateUsecase)
			uc.On("AddCandidate", mock.Anything, mock.Anything).Return(nil, tc.err)
			router := setupRouter(uc)

			req := httptest.NewRequest(http.MethodPost, "/v1/candidates", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Error adding candidate")
			assert.Contains(t, w.Body.String(), tc.err.Error())
		})
	}
}

func TestGetCandidateHandler_InvalidID(t *testing.T) {
	uc := new(MockCandidateUsecase)
	router := setupRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/candidates/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid candidate ID")
	uc.AssertNotCalled(t, "GetCandidate", mock.Anything, mock.Anything)
}

func TestGetCandidateHandler_NotFound(t *testing.T) {
	uc := new(MockCandidateUsecase)
	uc.On("GetCandidate", mock.Anything, int64(999)).
		Return(nil, apperror.NotFound("Candidate not found"))
	router := setupRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/candidates/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Candidate not found")
}

func TestGetCandidateHandler_LookupFailureIs500(t *testing.T) {
	uc := new(MockCandidateUsecase)
	uc.On("GetCandidate", mock.Anything, int64(7)).
		Return(nil, apperror.Persistence(errors.New("Failed to fetch candidate data: boom")))
	router := setupRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/candidates/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error retrieving candidate")
	assert.Contains(t, w.Body.String(), "Failed to fetch candidate data: boom")
}

func TestGetCandidateHandler_ReturnsProfile(t *testing.T) {
	uc := new(MockCandidateUsecase)
	uc.On("GetCandidate", mock.Anything, int64(1)).Return(&domain.CandidateProfile{
		Candidate:      domain.Candidate{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		Education:      []domain.Education{},
		WorkExperience: []domain.WorkExperience{},
		Resumes:        []domain.Resume{},
	}, nil)
	router := setupRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/candidates/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"education":[]`)
	assert.Contains(t, w.Body.String(), `"workExperience":[]`)
	assert.Contains(t, w.Body.String(), `"resumes":[]`)
}
