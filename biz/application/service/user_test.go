package service

import (
	"context"
	"testing"

	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureDefaultAdminUsesConfiguredPassword(t *testing.T) {
	mapper := &fakeUserMapper{}
	svc := &UserService{UserMapper: mapper}

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "hunter2"))

	require.Len(t, mapper.inserted, 1)
	u := mapper.inserted[0]
	assert.Equal(t, consts.DefaultAdminName, u.Username)
	assert.Equal(t, consts.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")))
}

// An empty configured secret seeds a random password instead of an account
// nobody can ever sign in to.
func TestEnsureDefaultAdminGeneratesPasswordWhenUnset(t *testing.T) {
	mapper := &fakeUserMapper{}
	svc := &UserService{UserMapper: mapper}

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), ""))

	require.Len(t, mapper.inserted, 1)
	u := mapper.inserted[0]
	assert.NotEmpty(t, u.PasswordHash)
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("")),
		"the seeded account must not accept an empty password")
}

func TestEnsureDefaultAdminSkipsPopulatedCollection(t *testing.T) {
	mapper := &fakeUserMapper{count: 3}
	svc := &UserService{UserMapper: mapper}

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "hunter2"))
	assert.Empty(t, mapper.inserted)
}

func TestEnsureDefaultAdminSkipsExistingAdmin(t *testing.T) {
	mapper := &fakeUserMapper{
		byName: map[string]*user.User{consts.DefaultAdminName: {Username: consts.DefaultAdminName}},
	}
	svc := &UserService{UserMapper: mapper}

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "hunter2"))
	assert.Empty(t, mapper.inserted)
}
