package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUserUpdate_Apply(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	base := User{ID: 7, Name: "alice", Email: "alice@example.com", CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name   string
		update UserUpdate
		want   User
	}{
		{
			name:   "empty update keeps everything",
			update: UserUpdate{},
			want:   base,
		},
		{
			name:   "name only",
			update: UserUpdate{Name: strPtr("alicia")},
			want:   User{ID: 7, Name: "alicia", Email: "alice@example.com", CreatedAt: now, UpdatedAt: now},
		},
		{
			name:   "email only",
			update: UserUpdate{Email: strPtr("a@example.com")},
			want:   User{ID: 7, Name: "alice", Email: "a@example.com", CreatedAt: now, UpdatedAt: now},
		},
		{
			name:   "both fields",
			update: UserUpdate{Name: strPtr("bob"), Email: strPtr("bob@example.com")},
			want:   User{ID: 7, Name: "bob", Email: "bob@example.com", CreatedAt: now, UpdatedAt: now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.update.Apply(base)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "alice", base.Name, "original record must not be mutated")
		})
	}
}

func TestUserUpdate_ChangesEmail(t *testing.T) {
	assert.False(t, UserUpdate{}.ChangesEmail("a@example.com"))
	assert.False(t, UserUpdate{Email: strPtr("a@example.com")}.ChangesEmail("a@example.com"))
	assert.True(t, UserUpdate{Email: strPtr("b@example.com")}.ChangesEmail("a@example.com"))
}
