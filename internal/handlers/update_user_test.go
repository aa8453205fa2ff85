package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/sbilibin2017/users-crud/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedKey  string
	}{
		{
			name:   "name only",
			target: "/users/1",
			body:   `{"name":"alicia"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(1), models.UserUpdate{Name: strPtr("alicia")}).
					Return(&models.User{ID: 1, Name: "alicia", Email: "alice@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedKey:  `"name":"alicia"`,
		},
		{
			name:   "null is treated as absent",
			target: "/users/1",
			body:   `{"name":null,"email":"new@example.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(1), models.UserUpdate{Email: strPtr("new@example.com")}).
					Return(&models.User{ID: 1, Name: "alice", Email: "new@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedKey:  `"email":"new@example.com"`,
		},
		{
			name:   "email taken",
			target: "/users/1",
			body:   `{"email":"bob@example.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode: http.StatusBadRequest,
			expectedKey:  `"detail":"Email already registered"`,
		},
		{
			name:   "not found",
			target: "/users/2",
			body:   `{"name":"x"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(2), gomock.Any()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedKey:  `"detail":"User not found"`,
		},
		{
			name:         "invalid id",
			target:       "/users/x",
			body:         `{"name":"x"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedKey:  `"detail"`,
		},
		{
			name:         "invalid json",
			target:       "/users/1",
			body:         `{`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedKey:  `"detail":"Invalid request body"`,
		},
		{
			name:         "email too long",
			target:       "/users/1",
			body:         `{"email":"` + string(make101()) + `"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedKey:  `email failed on 'max=100'`,
		},
		{
			name:   "service error",
			target: "/users/1",
			body:   `{"name":"x"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedKey:  `"detail":"Internal server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(NewUpdateUserHandler(mockSvc), http.MethodPut, "/users/{id}", tt.target, tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedKey)
		})
	}
}
