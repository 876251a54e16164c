package service

import (
	"context"
	"errors"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/user"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/google/uuid"
	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	SignUp(ctx context.Context, req *assistant.SignUpReq) (*assistant.SignUpResp, error)
	SignIn(ctx context.Context, req *assistant.SignInReq) (*assistant.SignInResp, error)
	GetUserInfo(ctx context.Context, req *assistant.GetUserInfoReq) (*assistant.GetUserInfoResp, error)
	EnsureDefaultAdmin(ctx context.Context, password string) error
}

type UserService struct {
	UserMapper user.IMongoMapper
	Limiter    *LoginLimiter
}

var UserServiceSet = wire.NewSet(
	NewLoginLimiter,
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignUp creates an account. Only admins may provision new logins.
func (s *UserService) SignUp(ctx context.Context, req *assistant.SignUpReq) (*assistant.SignUpResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	if _, err := s.UserMapper.FindOneByUsername(ctx, req.Username); err == nil {
		return nil, consts.ErrRepeatedSignUp
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, consts.ErrSignUp
	}

	u := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		StudentID:    req.StudentId,
	}
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		log.Error("insert user failed: %v", err)
		return nil, consts.ErrSignUp
	}

	return &assistant.SignUpResp{Id: u.ID.Hex()}, nil
}

// SignIn verifies the password and issues a session token. A locked-out
// account is rejected before the password is even checked.
func (s *UserService) SignIn(ctx context.Context, req *assistant.SignInReq) (*assistant.SignInResp, error) {
	if s.Limiter.IsLockedOut(req.Username) {
		remaining := s.Limiter.Remaining(req.Username)
		log.CtxInfo(ctx, "sign in rejected, account locked: %s (%.0fs remaining)",
			req.Username, remaining.Seconds())
		return nil, consts.ErrAccountLockedFor(remaining)
	}

	u, err := s.UserMapper.FindOneByUsername(ctx, req.Username)
	if err != nil {
		s.Limiter.RecordFailure(req.Username)
		return nil, consts.ErrSignIn
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.Limiter.RecordFailure(req.Username)
		return nil, consts.ErrSignIn
	}
	s.Limiter.Clear(req.Username)

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Username, u.Role)
	if err != nil {
		log.Error("generate token failed: %v", err)
		return nil, consts.ErrSignIn
	}

	return &assistant.SignInResp{
		Id:           u.ID.Hex(),
		Username:     u.Username,
		Role:         u.Role,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
	}, nil
}

func (s *UserService) GetUserInfo(ctx context.Context, req *assistant.GetUserInfoReq) (*assistant.GetUserInfoResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &assistant.GetUserInfoResp{
		Id:        u.ID.Hex(),
		Username:  u.Username,
		Role:      u.Role,
		StudentId: u.StudentID,
	}, nil
}

// EnsureDefaultAdmin seeds the admin account on an empty user collection.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context, password string) error {
	count, err := s.UserMapper.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if _, err := s.UserMapper.FindOneByUsername(ctx, consts.DefaultAdminName); !errors.Is(err, consts.ErrNotFound) {
		return nil
	}

	generated := false
	if password == "" {
		password = uuid.New().String()
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &user.User{
		Username:     consts.DefaultAdminName,
		PasswordHash: string(hash),
		Role:         consts.RoleAdmin,
	}
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		return err
	}
	if generated {
		// printed once on first run, there is no other way to recover it
		log.Info("seeded default admin account with generated password: %s", password)
	} else {
		log.Info("seeded default admin account")
	}
	return nil
}
