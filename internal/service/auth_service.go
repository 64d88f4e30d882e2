package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/RoyceAzure/lab/sellnow/internal/security"
	"github.com/RoyceAzure/lab/sellnow/internal/serr"
	"github.com/RoyceAzure/lab/sellnow/internal/validator"
	"gorm.io/gorm"
)

type IAuthService interface {
	Register(ctx context.Context, email, username, fullName, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	StartSession(sess *session.Session, user *model.User) error
	IsAuthenticated(sess *session.Session) bool
	CurrentUser(ctx context.Context, sess *session.Session) (*model.User, error)
	Logout(sess *session.Session)
}

type AuthService struct {
	userRepo db.IUserRepository
}

func NewAuthService(userRepo db.IUserRepository) IAuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register 註冊新用戶
// 格式錯誤採累積模式一次回傳, email衝突檢查先於username
func (s *AuthService) Register(ctx context.Context, email, username, fullName, password string) (*model.User, error) {
	v := validator.New()
	v.ValidateEmail(email)
	v.ValidateUsername(username)
	v.ValidatePassword(password)
	if v.HasErrors() {
		return nil, serr.NewFields(serr.ValidationCode, v.Errors())
	}

	emailExists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, serr.Wrap(serr.PersistenceCode, "failed to check email", err)
	}
	if emailExists {
		return nil, serr.NewField(serr.ConflictCode, "email", "Email already registered")
	}

	usernameExists, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, serr.Wrap(serr.PersistenceCode, "failed to check username", err)
	}
	if usernameExists {
		return nil, serr.NewField(serr.ConflictCode, "username", "Username already taken")
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, serr.Wrap(serr.InternalErrorCode, "failed to hash password", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: hashed,
	}
	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, serr.Wrap(serr.PersistenceCode, "registration failed", err)
	}

	// 以db狀態為準, 重新查詢
	return s.userRepo.GetUserByID(ctx, created.UserID)
}

// Login 帳密登入
// 查無用戶與密碼錯誤回同一個訊息, 避免帳號枚舉
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, serr.NewField(serr.ValidationCode, "general", "Email and password required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, serr.NewField(serr.AuthCode, "general", "Invalid email or password")
		}
		return nil, serr.Wrap(serr.PersistenceCode, "failed to query user", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, serr.NewField(serr.AuthCode, "general", "Invalid email or password")
	}

	return user, nil
}

// StartSession 登入成功後寫入身份資訊
func (s *AuthService) StartSession(sess *session.Session, user *model.User) error {
	if err := sess.Set(constants.SessionUserIDKey, user.UserID); err != nil {
		return err
	}
	if err := sess.Set(constants.SessionUsernameKey, user.Username); err != nil {
		return err
	}
	return sess.Set(constants.SessionEmailKey, user.Email)
}

func (s *AuthService) IsAuthenticated(sess *session.Session) bool {
	return sess.Has(constants.SessionUserIDKey)
}

// CurrentUser 每次重新查db, 不做快取
func (s *AuthService) CurrentUser(ctx context.Context, sess *session.Session) (*model.User, error) {
	if !s.IsAuthenticated(sess) {
		return nil, serr.New(serr.AuthCode, "not authenticated")
	}
	return s.userRepo.GetUserByID(ctx, sess.GetUint(constants.SessionUserIDKey))
}

// Logout 銷毀整個session, cart與csrf token一併失效
func (s *AuthService) Logout(sess *session.Session) {
	sess.Destroy()
}
