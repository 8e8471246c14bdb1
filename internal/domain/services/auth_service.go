package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
	"github.com/NotMomex/my-store-crm/pkg/utils"
)

// ErrInvalidCredentials is returned for an unknown user and for a wrong
// password alike
var ErrInvalidCredentials = apperror.Auth("Invalid credentials")

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// InterfaceAuthService user account service interface
type InterfaceAuthService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CountUsers(ctx context.Context) (int, error)
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	UpdateUser(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

// LoginResult is the token and the authenticated user
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// AuthService manages the Users sheet
type AuthService struct {
	Store *sheetstore.Store
	JWT   InterfaceJWTService
	cost  int
	now   func() time.Time
}

// NewAuthService creates an auth service hashing with bcrypt's default cost
func NewAuthService(store *sheetstore.Store, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		Store: store,
		JWT:   jwtService,
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
	}
}

// ValidatePassword enforces the password policy: at least eight characters
// with a digit, a lowercase and an uppercase letter
func ValidatePassword(password string) error {
	var digit, lower, upper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}
	if len([]rune(password)) < MinPasswordLength || !digit || !lower || !upper {
		return apperror.Validation("Password must be at least 8 characters and contain a digit, a lowercase and an uppercase letter")
	}
	if len(password) > 72 {
		return apperror.Validation("Password must be at most 72 bytes")
	}
	return nil
}

// 1 GetAllUsers lists every user, password hashes excluded from JSON
func (s *AuthService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetUsers)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, models.UserFromRecord(r))
	}
	return users, nil
}

// 2 GetUser returns one user
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	rec, err := s.Store.FindRow(ctx, models.SheetUsers, id)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	user := models.UserFromRecord(rec)
	return &user, nil
}

// 3 CountUsers returns the number of user rows
func (s *AuthService) CountUsers(ctx context.Context) (int, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetUsers)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// 4 Register creates a user. The first user ever is always an admin;
// afterwards an unrecognized or empty role falls back to agent.
func (s *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, apperror.Validation("Username is required")
	}

	users, err := s.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return nil, apperror.Validation("Username already exists")
		}
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	role := models.RoleAgent
	if len(users) == 0 {
		role = models.RoleAdmin
	} else if r, ok := models.ParseRole(in.Role); ok {
		role = r
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:        sheetstore.GenerateID(),
		Username:  username,
		Password:  hash,
		Role:      role,
		FullName:  in.FullName,
		Email:     in.Email,
		CreatedAt: models.FormatTimestamp(s.now()),
	}
	if err := s.Store.AppendRow(ctx, models.SheetUsers, user.Record()); err != nil {
		return nil, err
	}
	Logger.Info("registered user %s with role %s", user.Username, user.Role)
	return &user, nil
}

// 5 Login checks the credentials and issues a token. Recording LastLogin is
// best effort and never fails the login.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	users, err := s.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	var user *models.User
	for i := range users {
		if users[i].Username == username {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	lastLogin := models.FormatTimestamp(s.now())
	if err := s.Store.PatchRow(ctx, models.SheetUsers, user.ID, sheetstore.Record{"LastLogin": lastLogin}); err != nil {
		Logger.Warning("record last login of %s failed: %v", user.Username, err)
	} else {
		user.LastLogin = lastLogin
	}

	token, err := s.JWT.GenerateToken(*user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: *user}, nil
}

// 6 UpdateUser applies the supplied profile fields. A new password is
// re-validated and re-hashed; an unrecognized role is ignored. Whether the
// caller may change the role is decided by the caller.
func (s *AuthService) UpdateUser(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		if err := ValidatePassword(in.Password); err != nil {
			return nil, err
		}
		hash, err := s.hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if r, ok := models.ParseRole(in.Role); ok {
		user.Role = r
	}

	if err := s.Store.PatchRow(ctx, models.SheetUsers, id, user.Record()); err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}

// 7 DeleteUser removes a user unless it is the last admin
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	users, err := s.GetAllUsers(ctx)
	if err != nil {
		return err
	}
	var target *models.User
	admins := 0
	for i := range users {
		if users[i].ID == id {
			target = &users[i]
		}
		if users[i].Role == models.RoleAdmin {
			admins++
		}
	}
	if target == nil {
		return apperror.NotFound("User not found")
	}
	if target.Role == models.RoleAdmin && admins <= 1 {
		return apperror.Validation("Cannot delete the last admin user")
	}
	return notFoundAs(s.Store.DeleteRow(ctx, models.SheetUsers, id), "User not found")
}

// 8 EnsureAdmin registers an admin when the Users sheet is empty.
// It reports whether a user was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if _, err := s.Register(ctx, models.RegisterInput{
		Username: username,
		Password: password,
		Role:     string(models.RoleAdmin),
		FullName: "Administrator",
	}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) hash(password string) (string, error) {
	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		Logger.Error("hash password failed: %v", err)
		return "", &apperror.Error{Kind: apperror.KindUnknown, Message: "failed to hash password", Err: err}
	}
	return hash, nil
}
