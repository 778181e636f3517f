package http

import (
	"errors"
	"time"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type tokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTTokenService signs HS256 tokens. A zero lifetime means the token
// carries no exp claim and stays valid until the secret changes.
type JWTTokenService struct {
	secretKey []byte
	lifetime  time.Duration
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, durationStr string, logger ports.LoggerPort) *JWTTokenService {
	var lifetime time.Duration
	if durationStr != "" {
		duration, err := time.ParseDuration(durationStr)
		if err != nil || duration < 0 {
			logger.Error("Invalid token duration, issuing permanent tokens", map[string]interface{}{
				"duration": durationStr,
			})
		} else {
			lifetime = duration
		}
	}

	return &JWTTokenService{
		secretKey: []byte(secretKey),
		lifetime:  lifetime,
		logger:    logger,
	}
}

func (j *JWTTokenService) Lifetime() time.Duration {
	return j.lifetime
}

func (j *JWTTokenService) CreateToken(user *domain.User) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		j.logger.Error("Failed to generate uuid", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID.Hex(),
			"method":  "Create token",
		})
		return "", err
	}

	issuedAt := time.Now()
	claims := tokenClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       id.String(),
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	if j.lifetime > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(j.lifetime))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *JWTTokenService) VerifyToken(token string) (domain.TokenPayload, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		j.logger.Warn("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return domain.TokenPayload{}, err
	}

	if claims.UserID == "" {
		return domain.TokenPayload{}, errors.New("invalid userId claim")
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return domain.TokenPayload{}, errors.New("invalid parse id")
	}

	payload := domain.TokenPayload{
		ID:     id,
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		payload.ExpiresAt = &exp
	}

	return payload, nil
}

var _ ports.TokenService = (*JWTTokenService)(nil)
