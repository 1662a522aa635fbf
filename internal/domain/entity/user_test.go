package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUserValidation(t *testing.T) {
	u, err := NewUser("  jane  ", " Jane@Example.com ", "hash", RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "jane", u.Username)
	require.Equal(t, "jane@example.com", u.Email)
	require.True(t, u.IsActive)
	require.Nil(t, u.LastLogin)

	_, err = NewUser("ab", "jane@example.com", "hash", RoleAdmin)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = NewUser("jane", "not-an-email", "hash", RoleAdmin)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = NewUser("jane", "jane@example.com", "", RoleAdmin)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = NewUser("jane", "jane@example.com", "hash", Role("owner"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestTouchLastLogin(t *testing.T) {
	u, err := NewUser("jane", "jane@example.com", "hash", RoleAdmin)
	require.NoError(t, err)
	u.TouchLastLogin()
	require.NotNil(t, u.LastLogin)
}

func TestRoleAtLeast(t *testing.T) {
	require.True(t, RoleAdmin.AtLeast(RoleAdmin))
	require.True(t, RoleSuperadmin.AtLeast(RoleAdmin))
	require.True(t, RoleSuperadmin.AtLeast(RoleSuperadmin))
	require.False(t, RoleAdmin.AtLeast(RoleSuperadmin))
	require.False(t, Role("guest").AtLeast(RoleAdmin))
	require.False(t, Role("guest").Valid())
}
