package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

func newAuth(t *testing.T) (*services.AuthService, *repos.UserRepo) {
	t.Helper()
	db := memdb(t)
	users := repos.NewUserRepo(db)
	return &services.AuthService{Users: users}, users
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newAuth(t)

	u, err := auth.Register("alice", "s3cretpass", domain.RoleStaff)
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, u.Role)
	require.NotContains(t, u.Hash, "s3cretpass")
	require.True(t, strings.HasPrefix(u.Hash, "$2"))

	got, err := auth.Login("sid-1", "alice", "s3cretpass")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	cur, err := auth.CurrentUser("sid-1")
	require.NoError(t, err)
	require.Equal(t, u.ID, cur.ID)

	// wrong password and unknown name fail the same way
	_, err = auth.Login("sid-2", "alice", "wrongpass1")
	require.ErrorIs(t, err, services.ErrBadCreds)
	_, err = auth.Login("sid-2", "nobody", "s3cretpass")
	require.ErrorIs(t, err, services.ErrBadCreds)

	require.NoError(t, auth.Logout("sid-1"))
	_, err = auth.CurrentUser("sid-1")
	require.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Register("", "s3cretpass", "")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = auth.Register("bob", "", "")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = auth.Register("bob", "s3cretpass", "superuser")
	require.ErrorIs(t, err, domain.ErrValidation)

	// empty role defaults to staff
	u, err := auth.Register("bob", "s3cretpass", "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, u.Role)

	// duplicate name (case-insensitive) is refused
	_, err = auth.Register("Bob", "an0therpass", domain.RoleAdmin)
	require.ErrorIs(t, err, domain.ErrValidation)

	admin, err := auth.Register("carol", "s3cretpass", domain.RoleAdmin)
	require.NoError(t, err)
	require.True(t, admin.IsAdmin())
}
