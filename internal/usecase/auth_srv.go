package usecase

import (
	"context"
	"time"

	"asset-registry/internal/data/entity"
	"asset-registry/internal/data/repository"
	"asset-registry/internal/dto/request"
	"asset-registry/internal/dto/response"
	"asset-registry/pkg/database"
	"asset-registry/pkg/token"
	"asset-registry/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, *response.TokenResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	Logout(ctx context.Context, identity Identity, jti uuid.UUID) error
	Profile(ctx context.Context, identity Identity) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	txm    database.TxManager
	tokens *token.Manager
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	txm database.TxManager,
	tokens *token.Manager,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		txm:    txm,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, *response.TokenResponse, error) {
	// 1. Field-level validation
	errs := utils.ValidateStruct(req)
	if len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, nil, NewValidationError(errs)
	}

	// 2. Hash password before entering the transaction
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, nil, err
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Description:  req.Description,
		Role:         entity.RoleFromInt(*req.Role),
	}

	// 3. Uniqueness checks and insert share one transaction, so a duplicate
	// registration racing this one fails at commit instead of half-persisting.
	err = s.txm.WithinTransaction(ctx, func(tx pgx.Tx) error {
		users := s.repo.User.WithTx(tx)

		dupes := make(map[string]string)

		existing, err := users.FindByUsername(ctx, req.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			dupes["username"] = "The username has already been taken"
		}

		existing, err = users.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			dupes["email"] = "The email has already been taken"
		}

		existing, err = users.FindByPhone(ctx, req.Phone)
		if err != nil {
			return err
		}
		if existing != nil {
			dupes["no_hp"] = "The no_hp has already been taken"
		}

		if len(dupes) > 0 {
			return NewValidationError(dupes)
		}

		return users.Create(ctx, user)
	})
	if err != nil {
		if _, ok := err.(*ValidationError); !ok {
			s.log.Error("Failed to register user", zap.Error(err), zap.String("username", req.Username))
		}
		return nil, nil, err
	}

	// 4. Auto login after register
	issued, err := s.tokens.Issue(user.ID, int(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return response.UserToResponse(user), tokenToResponse(issued), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// 2. Find user by username
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return nil, err
	}

	// 3. Same failure for unknown user and wrong password
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Issue token
	issued, err := s.tokens.Issue(user.ID, int(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return tokenToResponse(issued), nil
}

// Logout blacklists the presented token by jti. The expiry recorded here is
// an upper bound on the token's real lifetime, used only for blacklist cleanup.
func (s *authService) Logout(ctx context.Context, identity Identity, jti uuid.UUID) error {
	revoked := &entity.RevokedToken{
		JTI:       jti,
		UserID:    identity.UserID,
		ExpiresAt: time.Now().Add(s.tokens.TTL()),
		RevokedAt: time.Now(),
	}

	if err := s.repo.RevokedToken.Revoke(ctx, revoked); err != nil {
		s.log.Error("Failed to revoke token",
			zap.Error(err), zap.String("jti", jti.String()))
		return err
	}

	s.log.Info("User logged out",
		zap.String("user_id", identity.UserID.String()),
		zap.String("jti", jti.String()))
	return nil
}

func (s *authService) Profile(ctx context.Context, identity Identity) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, identity.UserID)
	if err != nil {
		s.log.Error("Failed to load profile",
			zap.Error(err), zap.String("user_id", identity.UserID.String()))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	return response.UserToResponse(user), nil
}

func tokenToResponse(issued *token.Issued) *response.TokenResponse {
	return &response.TokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   issued.ExpiresIn,
	}
}
