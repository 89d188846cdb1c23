package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	autherrors "go-leaveflow/internal/auth/errors"
	"go-leaveflow/internal/employee"
	"go-leaveflow/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Login(ctx context.Context, username, password string) (accessToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
	SetStaff(ctx context.Context, userID string, isStaff bool) (AuthResponse, error)
	EnsureHRAdmin(ctx context.Context, seed HRAdminSeed) (created bool, err error)
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	ledger       employee.Ledger
	token        TokenConfig
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, ledger employee.Ledger, token TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if token.TTL <= 0 {
		token.TTL = 8 * time.Hour
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		ledger:       ledger,
		token:        token,
		now:          time.Now,
		logger:       l,
	}
}

// Signup registers a regular employee.
func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	username := strings.TrimSpace(req.Username)

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return AuthResponse{}, err
	}
	if taken {
		log.Info("signup rejected, username taken", zap.String("username", username))
		return AuthResponse{}, autherrors.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
	}
	emp := &employee.Employee{
		ID:         uuid.New(),
		UserID:     user.ID,
		FullName:   user.FullName(),
		Email:      user.Email,
		Department: strings.TrimSpace(req.Department),
		Position:   strings.TrimSpace(req.Position),
		Role:       employee.RoleEmployee,
		Version:    1,
	}
	if err := s.createAccount(ctx, user, emp); err != nil {
		return AuthResponse{}, err
	}

	log.Info("signup success", zap.String("user_id", user.ID.String()), zap.String("department", emp.Department))
	return mapToResponse(user, emp), nil
}

// EnsureHRAdmin seeds the first HR account: a staff login whose employee
// profile has the HR role and sits in the HR department. An existing username
// is left untouched, so it is safe to call on every start.
func (s *service) EnsureHRAdmin(ctx context.Context, seed HRAdminSeed) (bool, error) {
	username := strings.TrimSpace(seed.Username)
	if username == "" {
		return false, nil
	}

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if taken {
		s.logger.Debug("hr bootstrap skipped, user exists", zap.String("username", username))
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(seed.Email),
		FirstName:    username,
		IsStaff:      true,
		IsActive:     true,
	}
	emp := &employee.Employee{
		ID:         uuid.New(),
		UserID:     user.ID,
		FullName:   user.FullName(),
		Email:      user.Email,
		Department: seed.Department,
		Position:   "HR Administrator",
		Role:       employee.RoleHR,
		Version:    1,
	}
	if err := s.createAccount(ctx, user, emp); err != nil {
		if errors.Is(err, autherrors.ErrUsernameTaken) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info("hr account bootstrapped",
		zap.String("user_id", user.ID.String()),
		zap.String("department", emp.Department),
	)
	return true, nil
}

// createAccount inserts the login and the employee profile together; neither
// exists if either insert fails.
func (s *service) createAccount(ctx context.Context, user *User, emp *employee.Employee) error {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("account begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return autherrors.ErrUsernameTaken
		}
		log.Error("create user failed", zap.Error(err))
		return err
	}

	s.ledger.Open(emp)
	if err := s.employeeRepo.WithTx(tx).Create(ctx, emp); err != nil {
		log.Error("create employee failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("account commit failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, AuthResponse, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	emp, err := s.employeeRepo.FindByUserID(ctx, user.ID.String())
	if err != nil {
		s.logger.Warn("login without employee profile", zap.String("user_id", user.ID.String()), zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user, emp)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, mapToResponse(user, emp), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}
	emp, err := s.employeeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}
	return mapToResponse(user, emp), nil
}

// SetStaff toggles the staff flag read by the HR gate. Authenticated requests
// re-read it, so the change applies on the user's next request.
func (s *service) SetStaff(ctx context.Context, userID string, isStaff bool) (AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidUserID
	}

	if err := s.repo.SetStaff(ctx, userID, isStaff); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("staff flag updated",
		zap.String("user_id", userID),
		zap.Bool("is_staff", isStaff),
	)
	return s.GetMe(ctx, userID)
}

func (s *service) generateToken(user *User, emp *employee.Employee) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"employee_id": emp.ID.String(),
		"role":        emp.Role,
		"is_staff":    user.IsStaff,
		"department":  emp.Department,
		"exp":         s.now().Add(s.token.TTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.token.Secret))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(u *User, e *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		EmployeeID: e.ID.String(),
		Username:   u.Username,
		FullName:   e.FullName,
		Email:      u.Email,
		Department: e.Department,
		Role:       e.Role,
		IsStaff:    u.IsStaff,
	}
}
