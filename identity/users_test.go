package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		id := uuid.New()
		user, err := NewUser(UserConfig{ID: id, Username: "maze_runner", PlainPassword: "correct-horse-battery-staple"})
		require.NoError(t, err)

		assert.Equal(t, id, user.ID)
		assert.Equal(t, "maze_runner", user.Username)
		assert.Equal(t, DefaultRating, user.Rating)
		assert.NotEqual(t, "correct-horse-battery-staple", user.PasswordHash)
		assert.True(t, user.VerifyPassword("correct-horse-battery-staple"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "short username", username: "ab", password: "correct-horse-battery-staple", wantErr: ErrUsernameTooShort},
		{name: "long username", username: "a_really_long_username_here", password: "correct-horse-battery-staple", wantErr: ErrUsernameTooLong},
		{name: "bad characters", username: "maze runner!", password: "correct-horse-battery-staple", wantErr: ErrInvalidUsername},
		{name: "weak password", username: "maze_runner", password: "password", wantErr: ErrWeakPassword},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: test.username, PlainPassword: test.password})
			assert.ErrorIs(t, err, test.wantErr)
		})
	}
}
