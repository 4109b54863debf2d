package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/VitaminP8/blogery/api"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 24 * time.Hour
)

// GenerateTokenPair выдает пару access/refresh токенов для пользователя
func GenerateTokenPair(userID uint, username string) (*api.TokenPair, error) {
	access, err := signToken(userID, username, TokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := signToken(userID, username, TokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &api.TokenPair{Access: access, Refresh: refresh}, nil
}

// GenerateAccessToken выдает новый access токен (используется при refresh)
func GenerateAccessToken(userID uint, username string) (string, error) {
	return signToken(userID, username, TokenTypeAccess, accessTokenTTL)
}

func signToken(userID uint, username, tokenType string, ttl time.Duration) (string, error) {
	// достаем из .env jwtSecret
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set in environment")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID,
		"username":   username,
		"token_type": tokenType,
		"exp":        time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает его claims
func ParseToken(tokenStr string) (jwt.MapClaims, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is not set in environment")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token is invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// TokenSubject достает user_id и token_type из claims
func TokenSubject(claims jwt.MapClaims) (uint, string, error) {
	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("user_id claim is missing")
	}

	tokenType, ok := claims["token_type"].(string)
	if !ok {
		return 0, "", errors.New("token_type claim is missing")
	}

	return uint(idFloat), tokenType, nil
}
