package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

const goodPassword = "Secret123"

func register(t *testing.T, svc *AuthService, username, role string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), models.RegisterInput{
		Username: username,
		Password: goodPassword,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Secret123", true},
		{"too short", "Sec123", false},
		{"no digit", "SecretPass", false},
		{"no upper", "secret123", false},
		{"no lower", "SECRET123", false},
		{"too long for bcrypt", "Aa1" + string(make([]byte, 70)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperror.IsValidation(err))
			}
		})
	}
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	store, client := newTestStore()
	svc := newTestAuthService(store)

	first := register(t, svc, "owner", "viewer")
	assert.Equal(t, models.RoleAdmin, first.Role)

	second := register(t, svc, "clerk", "")
	assert.Equal(t, models.RoleAgent, second.Role)

	third := register(t, svc, "auditor", "viewer")
	assert.Equal(t, models.RoleViewer, third.Role)

	rows := client.Rows(models.SheetUsers)
	require.Len(t, rows, 4)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rows[1][2]), []byte(goodPassword)))
	assert.NotEqual(t, goodPassword, rows[1][2])
}

func TestRegisterRejects(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	svc := newTestAuthService(store)
	register(t, svc, "owner", "")

	_, err := svc.Register(ctx, models.RegisterInput{Username: "owner", Password: goodPassword})
	require.Error(t, err)
	assert.Equal(t, "Username already exists", apperror.MessageOf(err))

	_, err = svc.Register(ctx, models.RegisterInput{Username: "weak", Password: "password"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Register(ctx, models.RegisterInput{Username: "   ", Password: goodPassword})
	assert.True(t, apperror.IsValidation(err))

	assert.Len(t, client.Rows(models.SheetUsers), 2)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	svc := newTestAuthService(store)
	user := register(t, svc, "owner", "")

	result, err := svc.Login(ctx, "owner", goodPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "2024-03-14T09:30:00.000Z", result.User.LastLogin)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "2024-03-14T09:30:00.000Z", client.Rows(models.SheetUsers)[1][6])

	claims, err := svc.JWT.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginTrimsUsername(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := newTestAuthService(store)
	user := register(t, svc, "  alice ", "")
	assert.Equal(t, "alice", user.Username)

	for _, name := range []string{"alice", "alice ", "\talice"} {
		result, err := svc.Login(ctx, name, goodPassword)
		require.NoError(t, err, name)
		assert.Equal(t, user.ID, result.User.ID)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := newTestAuthService(store)
	register(t, svc, "owner", "")

	_, wrongPassword := svc.Login(ctx, "owner", "Wrong1234")
	_, unknownUser := svc.Login(ctx, "nobody", goodPassword)

	assert.Equal(t, wrongPassword, unknownUser)
	assert.True(t, apperror.IsAuth(wrongPassword))
	assert.Equal(t, "Invalid credentials", apperror.MessageOf(unknownUser))
}

func TestLoginSurvivesLastLoginFailure(t *testing.T) {
	store, client := newTestStore()
	svc := newTestAuthService(store)
	register(t, svc, "owner", "")
	client.FailNext(sheetstore.OpUpdate, errors.New("quota exceeded"))

	result, err := svc.Login(context.Background(), "owner", goodPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "", result.User.LastLogin)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := newTestAuthService(store)
	register(t, svc, "owner", "")
	clerk := register(t, svc, "clerk", "agent")

	updated, err := svc.UpdateUser(ctx, clerk.ID, models.UpdateUserInput{
		FullName: "Clerk One",
		Password: "NewSecret9",
		Role:     "viewer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Clerk One", updated.FullName)
	assert.Equal(t, models.RoleViewer, updated.Role)

	_, err = svc.Login(ctx, "clerk", goodPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "clerk", "NewSecret9")
	assert.NoError(t, err)

	_, err = svc.UpdateUser(ctx, clerk.ID, models.UpdateUserInput{Password: "short"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.UpdateUser(ctx, "missing", models.UpdateUserInput{FullName: "x"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteUserKeepsLastAdmin(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := newTestAuthService(store)
	owner := register(t, svc, "owner", "")
	clerk := register(t, svc, "clerk", "agent")

	err := svc.DeleteUser(ctx, owner.ID)
	assert.Equal(t, "Cannot delete the last admin user", apperror.MessageOf(err))

	second := register(t, svc, "boss", "admin")
	require.NoError(t, svc.DeleteUser(ctx, owner.ID))
	assert.Error(t, svc.DeleteUser(ctx, second.ID))

	require.NoError(t, svc.DeleteUser(ctx, clerk.ID))
	assert.True(t, apperror.IsNotFound(svc.DeleteUser(ctx, clerk.ID)))

	count, err := svc.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := newTestAuthService(store)

	created, err := svc.EnsureAdmin(ctx, "admin", goodPassword)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin2", goodPassword)
	require.NoError(t, err)
	assert.False(t, created)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "Administrator", users[0].FullName)
}
