package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/sbilibin2017/users-crud/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateUserHandler(t *testing.T) {
	ts := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"name":"john","email":"john@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					CreateUser(gomock.Any(), "john", "john@example.com").
					Return(&models.User{ID: 1, Name: "john", Email: "john@example.com", CreatedAt: ts, UpdatedAt: ts}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"name":"john","email":"john@example.com","created_at":"2025-05-01T10:00:00Z","updated_at":"2025-05-01T10:00:00Z"}`,
		},
		{
			name: "email already registered",
			body: `{"name":"alice","email":"alice@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					CreateUser(gomock.Any(), "alice", "alice@example.com").
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Email already registered"}`,
		},
		{
			name: "internal server error",
			body: `{"name":"bob","email":"bob@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					CreateUser(gomock.Any(), "bob", "bob@example.com").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"Invalid request body"}`,
		},
		{
			name:         "missing email",
			body:         `{"name":"bob"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"email failed on 'required'"}`,
		},
		{
			name:         "empty name",
			body:         `{"name":"","email":"bob@example.com"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"name failed on 'required'"}`,
		},
		{
			name:         "name too long",
			body:         `{"name":"` + string(make101()) + `","email":"bob@example.com"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"name failed on 'max=100'"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(NewCreateUserHandler(mockSvc), http.MethodPost, "/users/", "/users/", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func make101() []byte {
	b := make([]byte, 101)
	for i := range b {
		b[i] = 'a'
	}
	return b
}
