package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type actorKey struct{}

// ParseToken verifies an HS256 token and returns the actor in its claims.
func ParseToken(tokenStr, secret string) (models.Actor, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.Actor{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Actor{}, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return models.Actor{}, errors.New("invalid user_id in token")
	}
	role, _ := claims["role"].(string)

	return models.Actor{ID: int64(userID), Role: models.Role(role)}, nil
}

func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(models.Actor)
	return actor, ok
}
