package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/crypto"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/MKhiriev/cuide-me/internal/validators"
	"github.com/MKhiriev/cuide-me/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are bcrypt hashes; tokens are HS256 JWTs whose subject is the
// professional's email.
type authService struct {
	professionalRepository store.ProfessionalRepository
	hasher                 crypto.PasswordHasher
	validator              validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with token parameters
// from cfg. All state is read-only after construction.
func NewAuthService(professionalRepository store.ProfessionalRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		professionalRepository: professionalRepository,
		hasher:                 hasher,
		validator:              validator,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		logger:                 logger,
	}
}

// Register creates a professional account.
//
// Returns the persisted professional or:
//   - ErrInvalidDataProvided if the email or password is invalid.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Professional, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Warn().Err(err).Str("email", credentials.Email).Msg("invalid registration data")
		return models.Professional{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hashed, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		return models.Professional{}, fmt.Errorf("error hashing password: %w", err)
	}

	professional, err := a.professionalRepository.CreateProfessional(ctx, models.Professional{
		Email:          credentials.Email,
		HashedPassword: hashed,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("professional creation ended with error")
		return models.Professional{}, fmt.Errorf("professional creation ended with error: %w", err)
	}

	return professional, nil
}

// Login authenticates a professional. An unknown email and a wrong
// password both return ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Professional, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return models.Professional{}, ErrWrongCredentials
	}

	professional, err := a.professionalRepository.FindProfessionalByEmail(ctx, email)
	if errors.Is(err, store.ErrProfessionalNotFound) {
		log.Info().Str("email", email).Msg("login with unknown email")
		return models.Professional{}, ErrWrongCredentials
	}
	if err != nil {
		return models.Professional{}, fmt.Errorf("professional search by email failed: %w", err)
	}

	if err = a.hasher.Compare(professional.HashedPassword, credentials.Password); err != nil {
		log.Info().Int64("id", professional.ID).Msg("wrong password")
		return models.Professional{}, ErrWrongCredentials
	}

	return professional, nil
}

// CreateToken issues a signed JWT for the given professional.
func (a *authService) CreateToken(ctx context.Context, professional models.Professional) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, professional.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the signature, issuer and expiry of tokenString.
// Any failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Professional, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Professional{}, err
	}

	email, err := token.GetEmail()
	if err != nil {
		return models.Professional{}, ErrTokenIsExpiredOrInvalid
	}

	professional, err := a.professionalRepository.FindProfessionalByEmail(ctx, email)
	if errors.Is(err, store.ErrProfessionalNotFound) {
		return models.Professional{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Professional{}, fmt.Errorf("professional search by email failed: %w", err)
	}

	return professional, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
