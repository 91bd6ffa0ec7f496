package utils

import (
    "time"

    "github.com/golang-jwt/jwt/v5"
)

func GenerateJWT(userID uint, email, secret string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "userId": userID,
        "email":  email,
        "exp":    time.Now().Add(time.Hour * 72).Unix(),
    })

    return token.SignedString([]byte(secret))
}
