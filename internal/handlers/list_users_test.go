package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "defaults",
			target: "/users/",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any(), 0, 100).Return([]models.User{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  3,
		},
		{
			name:   "explicit page",
			target: "/users/?skip=0&limit=2",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any(), 0, 2).Return([]models.User{{ID: 1}, {ID: 2}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "out of range page is empty array",
			target: "/users/?skip=5&limit=2",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any(), 5, 2).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "negative skip",
			target:       "/users/?skip=-1",
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "non numeric limit",
			target:       "/users/?limit=ten",
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "service error",
			target: "/users/",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any(), 0, 100).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockUserLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(NewListUsersHandler(mockSvc), http.MethodGet, "/users/", tt.target, "")
			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode != http.StatusOK {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Detail)
				return
			}

			var users []models.User
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
			assert.NotNil(t, users, "empty page must encode as []")
			assert.Len(t, users, tt.expectedLen)
		})
	}
}
