package service

import (
	"testing"

	"lostfound/database/model"

	"github.com/stretchr/testify/assert"
)

func TestCheckUserSeededAccounts(t *testing.T) {
	setupDB(t)
	s := UserService{}

	alice := s.CheckUser("alice", "password123")
	if assert.NotNil(t, alice) {
		assert.Equal(t, model.RoleUser, alice.Role)
	}

	staff := s.CheckUser("staff", "adminpass")
	if assert.NotNil(t, staff) {
		assert.Equal(t, model.RoleStaff, staff.Role)
	}
}

func TestCheckUserRejectsBadCredentials(t *testing.T) {
	setupDB(t)
	s := UserService{}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "nope"},
		{"unknown user", "bob", "password123"},
		{"crossed credentials", "alice", "adminpass"},
		{"empty password", "alice", ""},
		{"empty username", "", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, s.CheckUser(tt.username, tt.password))
		})
	}
}
