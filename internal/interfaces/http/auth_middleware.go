package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/application/identity"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/pkg/jwt"
)

// LocalUserID key de Locals con el ID del usuario autenticado.
const LocalUserID = "user_id"

// AuthConfig validación de los tokens de la API. Issuer vacío no se verifica.
type AuthConfig struct {
	Secret string
	Issuer string
}

// bearerToken extrae el token del header; code != "" indica el rechazo.
func bearerToken(header string) (token, code string) {
	if header == "" {
		return "", "MISSING_TOKEN"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", "INVALID_TOKEN"
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", "MISSING_TOKEN"
	}
	return token, ""
}

// AuthMiddleware valida el Bearer Token y deja al usuario en Locals y en el UserContext,
// de donde lo toman los casos de uso para sellar movimientos y auditoría.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	var opts []gojwt.ParserOption
	if cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(cfg.Issuer))
	}
	return func(c *fiber.Ctx) error {
		token, code := bearerToken(c.Get(fiber.HeaderAuthorization))
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: "se requiere Authorization: Bearer <token>"})
		}
		claims, err := jwt.Parse(cfg.Secret, token, opts...)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.SetUserContext(identity.WithUser(c.UserContext(), entity.User{ID: claims.UserID, Name: claims.UserName}))
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}
