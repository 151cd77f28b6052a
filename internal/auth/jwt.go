package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateToken issues a 24h HS256 token for the identity.
func GenerateToken(id *Identity) (string, error) {
	if id == nil || id.ID == "" {
		return "", errors.New("empty identity passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"userID": id.ID,
		"name":   id.Name,
		"email":  id.Email,
		"role":   id.Role,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken checks signature and expiry and returns the embedded
// identity.
func ValidateToken(tokenString string) (*Identity, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	id := &Identity{}
	id.ID, _ = claims["userID"].(string)
	id.Name, _ = claims["name"].(string)
	id.Email, _ = claims["email"].(string)
	id.Role, _ = claims["role"].(string)

	if id.ID == "" || id.Role == "" {
		return nil, errors.New("invalid token claims")
	}
	return id, nil
}
