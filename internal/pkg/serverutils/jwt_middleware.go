// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/tokenstore"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware parses the bearer token and stores user_id, role and jti in
// the request locals. Revocation is checked against the token store when one
// is provided (logout writes the jti there).
func JwtMiddleware(store tokenstore.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		if jti, ok := claims["jti"].(string); ok {
			if store != nil {
				revoked, err := store.IsRevoked(ctx.UserContext(), jti)
				if err == nil && revoked {
					return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token revoked"})
				}
			}
			ctx.Locals("jti", jti)
		}
		if exp, ok := claims["exp"].(float64); ok {
			ctx.Locals("exp", int64(exp))
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("role", claims["role"])
		return ctx.Next()
	}
}

// RequireRole guards a route group to a single role. Must run after
// JwtMiddleware so the role local is populated.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actual, _ := ctx.Locals("role").(string)
		if actual != role {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
		}
		return ctx.Next()
	}
}
