package user

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kanishkPamecha/Movies/internal/api/auth"
	"github.com/kanishkPamecha/Movies/internal/types"
)

// MockUserService is a mock implementation of the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserProfile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserService) UpdateUserProfile(ctx context.Context, userID uuid.UUID, params types.UpdateProfileParams) (*types.User, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]types.PublicUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PublicUser), args.Error(1)
}

func authedRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID.String())
	return req.WithContext(ctx)
}

func TestGetUserProfileHandler(t *testing.T) {
	logger := slog.Default()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockUserService)
		h := NewHandlerImpl(mockSvc, logger)
		stored := &types.User{
			ID:           userID,
			Username:     "ann",
			Email:        "a@x.com",
			PasswordHash: "$2a$10$secret",
		}
		mockSvc.On("GetUserProfile", mock.Anything, userID).Return(stored, nil)

		rr := httptest.NewRecorder()
		h.GetUserProfile(rr, authedRequest(http.MethodGet, "/users/profile", "", userID))

		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["_id"])
		assert.Equal(t, "ann", body["username"])
		assert.NotContains(t, rr.Body.String(), "secret")
		mockSvc.AssertExpectations(t)
	})

	t.Run("NoIdentityInContext", func(t *testing.T) {
		mockSvc := new(MockUserService)
		h := NewHandlerImpl(mockSvc, logger)

		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		rr := httptest.NewRecorder()
		h.GetUserProfile(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockSvc.AssertNotCalled(t, "GetUserProfile")
	})
}

func TestUpdateUserProfileHandler(t *testing.T) {
	logger := slog.Default()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockUserService)
		h := NewHandlerImpl(mockSvc, logger)
		updated := &types.User{ID: userID, Username: "ann", Email: "new@x.com"}
		mockSvc.On("UpdateUserProfile", mock.Anything, userID,
			types.UpdateProfileParams{Email: strPtr("new@x.com")}).Return(updated, nil)

		rr := httptest.NewRecorder()
		h.UpdateUserProfile(rr, authedRequest(http.MethodPut, "/users/profile",
			`{"email":"new@x.com"}`, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "new@x.com")
		mockSvc.AssertExpectations(t)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		mockSvc := new(MockUserService)
		h := NewHandlerImpl(mockSvc, logger)
		mockSvc.On("UpdateUserProfile", mock.Anything, userID, mock.Anything).
			Return(nil, types.ErrConflict)

		rr := httptest.NewRecorder()
		h.UpdateUserProfile(rr, authedRequest(http.MethodPut, "/users/profile",
			`{"email":"taken@x.com"}`, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListUsersHandler(t *testing.T) {
	logger := slog.Default()
	mockSvc := new(MockUserService)
	h := NewHandlerImpl(mockSvc, logger)

	listed := []types.PublicUser{
		{ID: uuid.New(), Username: "ann", Email: "a@x.com", IsAdmin: true},
		{ID: uuid.New(), Username: "bob", Email: "b@x.com"},
	}
	mockSvc.On("ListUsers", mock.Anything).Return(listed, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body []types.PublicUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.True(t, body[0].IsAdmin)
	assert.Equal(t, "bob", body[1].Username)
	mockSvc.AssertExpectations(t)
}
