package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// sessionClaims is the token payload: {"user":{"id":"<uuid>"}} plus optional iat/exp.
type sessionClaims struct {
	User sessionUser `json:"user"`
	jwt.RegisteredClaims
}

type sessionUser struct {
	ID string `json:"id"`
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration // Zero issues tokens without iat/exp.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	var ttl time.Duration
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a session token for userID.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	claims := sessionClaims{
		User: sessionUser{ID: userID.String()},
	}
	if s.ttl > 0 {
		issuedAt := s.now()
		claims.IssuedAt = jwt.NewNumericDate(issuedAt)
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify parses the token, checks its HS256 signature and expiry, and returns the embedded user id.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errors.Wrap(service.ErrInvalidToken, "empty token")
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	userID, err := uuid.Parse(claims.User.ID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, errors.Wrap(service.ErrInvalidToken, "user id claim missing or malformed")
	}

	return userID, nil
}
