package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/muchiri-dev/dermacare_backend/config"
	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entuser "github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	entsession "github.com/muchiri-dev/dermacare_backend/internal/repo/usersession"
	patientsvc "github.com/muchiri-dev/dermacare_backend/internal/service/patient"
	"github.com/muchiri-dev/dermacare_backend/pkg/authorize"
	"github.com/muchiri-dev/dermacare_backend/pkg/crypto"
	"github.com/muchiri-dev/dermacare_backend/pkg/email"
	pasetotoken "github.com/muchiri-dev/dermacare_backend/pkg/paseto"
	"github.com/muchiri-dev/dermacare_backend/pkg/phone"
	"github.com/muchiri-dev/dermacare_backend/pkg/util/otp"
	"github.com/muchiri-dev/dermacare_backend/pkg/util/password"
)

const maxOTPAttempts = 5

// redisKeyResetOTP returns the Redis key for the password-reset code hash.
func redisKeyResetOTP(email string) string { return "otp:reset:" + email }

// redisKeyResetAttempts returns the Redis key for the reset attempt counter.
func redisKeyResetAttempts(email string) string { return "otp:reset:attempts:" + email }

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string // optional; normalised to E.164
	UserType  string // patient (default), doctor, staff, admin
}

type LoginRequest struct {
	Email    string
	Password string
}

type ResetPasswordRequest struct {
	Email       string
	Code        string
	NewPassword string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*repo.User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db       *repo.Client
	rdb      *redis.Client
	mailer   *email.Client
	paseto   *pasetotoken.Manager
	authz    authorize.IAuthorization
	patients patientsvc.Service
	cfg      *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	patients patientsvc.Service,
	cfg *config.Config,
) Service {
	return &authService{
		db:       db,
		rdb:      rdb,
		mailer:   mailer,
		paseto:   paseto,
		authz:    authz,
		patients: patients,
		cfg:      cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

// Register creates a login account. Patient accounts also get a patient
// record so they can book appointments straight away.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*repo.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	userType := entuser.UserType(req.UserType)
	if req.UserType == "" {
		userType = entuser.UserTypePatient
	}

	var phoneE164 *string
	if req.Phone != "" {
		normalized, err := phone.Normalize(req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		phoneE164 = &normalized
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetUserType(userType)
	if req.FirstName != "" {
		q = q.SetFirstName(req.FirstName)
	}
	if req.LastName != "" {
		q = q.SetLastName(req.LastName)
	}
	if phoneE164 != nil {
		q = q.SetNillablePhone(phoneE164)
	}

	u, err := q.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := authorize.AssignUserSelfRole(ctx, s.authz, u.ID.String()); err != nil {
		return nil, fmt.Errorf("assign self role: %w", err)
	}
	if err := authorize.AssignClinicRoleForUserType(ctx, s.authz, u.ID.String(), string(userType)); err != nil {
		return nil, fmt.Errorf("assign clinic role: %w", err)
	}

	if userType == entuser.UserTypePatient {
		if _, err := s.patients.Create(ctx, patientsvc.CreateRequest{UserID: u.ID}); err != nil {
			return nil, fmt.Errorf("bootstrap patient record: %w", err)
		}
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}
	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(*u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.db.User.UpdateOne(u).
		SetLastLoginAt(time.Now()).
		Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	s.db.UserSession.Update().
		Where(entsession.SessionID(claims.SessionID.String())).
		SetLastUsedAt(time.Now()).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in DB (best-effort; not critical path)
	s.db.UserSession.Update().
		Where(entsession.SessionID(sessionID.String()), entsession.RevokedAtIsNil()).
		SetRevokedAt(time.Now()).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------------

// RequestPasswordReset emails a one-time code. The response never reveals
// whether the address exists.
func (s *authService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	exists, err := s.db.User.Query().
		Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if !exists {
		return nil
	}

	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate reset code: %w", err)
	}

	otpTTL := time.Duration(s.cfg.Authentication.OTPTTLMinutes) * time.Minute
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}

	if err := s.rdb.Set(ctx, redisKeyResetOTP(emailAddr), otp.Hash(code), otpTTL).Err(); err != nil {
		return fmt.Errorf("store reset code: %w", err)
	}
	s.rdb.Set(ctx, redisKeyResetAttempts(emailAddr), "0", otpTTL+5*time.Minute)

	m := email.BuildPasswordResetOTPEmail(emailAddr, code, int(otpTTL.Minutes()))
	if err := s.mailer.Send(ctx, m); err != nil {
		// Log but don't fail — the code can be re-requested
		slog.Warn("failed to send password reset email", "email", emailAddr, "error", err)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Code = strings.TrimSpace(req.Code)

	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	otpHash, err := s.rdb.Get(ctx, redisKeyResetOTP(req.Email)).Result()
	if err == redis.Nil {
		return ErrOTPExpired
	}
	if err != nil {
		return fmt.Errorf("redis get reset code: %w", err)
	}

	attempts, _ := s.rdb.Get(ctx, redisKeyResetAttempts(req.Email)).Int()
	if attempts >= maxOTPAttempts {
		return ErrOTPMaxAttempts
	}

	if err := otp.Verify(otpHash, req.Code); err != nil {
		s.rdb.Incr(ctx, redisKeyResetAttempts(req.Email))
		return ErrOTPInvalid
	}

	s.rdb.Del(ctx, redisKeyResetOTP(req.Email), redisKeyResetAttempts(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	passHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.db.User.UpdateOne(u).SetPasswordHash(passHash).Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.revokeAllSessions(ctx, u.ID)
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.PasswordHash == nil {
		return ErrInvalidCredentials
	}
	if err := password.Verify(*u.PasswordHash, oldPassword); err != nil {
		return ErrInvalidCredentials
	}

	passHash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.db.User.UpdateOne(u).SetPasswordHash(passHash).Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())
	role := string(u.UserType)

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	expiresAt := time.Now().Add(refreshTTL)
	refreshHash := crypto.Hash(refresh) // SHA-256 of refresh token
	s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(refreshHash).
		SetExpiresAt(expiresAt).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) revokeAllSessions(ctx context.Context, userID uuid.UUID) {
	sessions, err := s.db.UserSession.Query().
		Where(entsession.UserID(userID), entsession.RevokedAtIsNil()).
		All(ctx)
	if err != nil {
		slog.Warn("failed to list sessions for revocation", "user_id", userID, "error", err)
		return
	}

	now := time.Now()
	for _, sess := range sessions {
		s.rdb.Del(ctx, redisKeySession(sess.SessionID))
		s.db.UserSession.UpdateOne(sess).SetRevokedAt(now).Save(ctx)
	}
}
