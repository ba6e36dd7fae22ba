package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notely/config"
	"notely/dao"
	"notely/models"
	"notely/pkg/jwt"
	"notely/pkg/log"
	"notely/pkg/response"
	"notely/pkg/snowflake"
	"notely/pkg/validate"
	"notely/types"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type AuthService struct {
	users *dao.Users
	conf  *config.Config
	http  *resty.Client
}

func NewAuthService(users *dao.Users, conf *config.Config) *AuthService {
	return &AuthService{
		users: users,
		conf:  conf,
		http:  resty.New().SetTimeout(10 * time.Second),
	}
}

// Register 注册新用户，用户与档案同事务写入
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	if err := validate.Username(req.Username); err != nil {
		return nil, err
	}
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(req.Password); err != nil {
		return nil, err
	}

	if exists, err := s.users.ExistsUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, validate.NewFieldError("username", "username_taken", "this username is already taken")
	}
	if exists, err := s.users.ExistsEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, validate.NewFieldError("email", "email_taken", "this email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	profile := &models.Profile{ID: snowflake.GenID()}
	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		// 并发注册撞唯一索引时按占用处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validate.NewFieldError("username", "username_taken", "this username is already taken")
		}
		return nil, err
	}

	log.L.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return &types.RegisterResponse{UserID: user.ID, Username: user.Username}, nil
}

// Login 用户名密码登录，签发 access/refresh 令牌对
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.Unauthorized("invalid username or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, response.Unauthorized("invalid username or password")
	}
	return s.issueTokens(user.ID, user.Username)
}

// Refresh 用 refresh 令牌换新令牌对
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	claims, err := jwt.ParseToken([]byte(s.conf.Jwt.Secret), TokenTypeRefresh, refreshToken)
	if err != nil {
		return nil, response.Unauthorized("invalid refresh token")
	}
	if _, err := s.users.FindById(ctx, claims.UserID); err != nil {
		return nil, response.Unauthorized("invalid refresh token")
	}
	return s.issueTokens(claims.UserID, claims.Username)
}

func (s *AuthService) issueTokens(userID int64, username string) (*types.TokenResponse, error) {
	secret := []byte(s.conf.Jwt.Secret)
	accessExpire := time.Duration(s.conf.Jwt.AccessExpire) * time.Second

	access, err := jwt.GenerateToken(secret, userID, username, TokenTypeAccess, accessExpire)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, userID, username, TokenTypeRefresh,
		time.Duration(s.conf.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.conf.Jwt.AccessExpire,
	}, nil
}

// BindExternal 拉取 OAuth 提供方的用户信息并绑定到当前账号
func (s *AuthService) BindExternal(ctx context.Context, userID int64, accessToken string) (*types.OAuthBindResponse, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "OAuth "+accessToken).
		Get(s.conf.OAuth.UserInfoURL)
	if err != nil {
		return nil, response.NewError(502, "failed to reach identity provider")
	}
	if resp.StatusCode() != 200 {
		return nil, response.Unauthorized("identity provider rejected the token")
	}

	body := resp.Body()
	externalID := gjson.GetBytes(body, "id").String()
	if externalID == "" {
		return nil, response.NewError(502, "identity provider returned no subject id")
	}

	// 外部身份已绑定到其他账号则拒绝
	if profile, err := s.users.FindByExternalID(ctx, externalID); err == nil && profile.UserID != userID {
		return nil, validate.NewFieldError("external_id", "external_id_taken",
			"this external account is already linked to another user")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.users.BindExternal(ctx, userID, externalID, body); err != nil {
		return nil, err
	}
	log.L.Info("external identity linked",
		zap.Int64("user_id", userID), zap.String("external_id", externalID))
	return &types.OAuthBindResponse{ExternalID: externalID}, nil
}
