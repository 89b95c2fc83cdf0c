package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/pkg/config"
	"github.com/jhoicas/amazonia/pkg/jwt"
)

// operatorSubject subject de los tokens emitidos (la consola tiene un solo operador).
const operatorSubject = "operador"

// AuthHandler login del operador.
type AuthHandler struct {
	cfg config.JWTConfig
	now func() time.Time
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg, now: time.Now}
}

// Login godoc
// @Summary      Iniciar sesión del operador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Password == "" {
		return badRequest(c, "VALIDATION", "password es requerido")
	}
	if !h.cfg.Enabled() || h.cfg.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.PasswordHash), []byte(in.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}

	expiresAt := h.now().Add(time.Duration(h.cfg.Expiration) * time.Minute)
	token, err := jwt.Generate(h.cfg.Secret, operatorSubject, h.cfg.Issuer, h.cfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo emitir el token"})
	}
	return c.JSON(dto.LoginResponse{Token: token, ExpiresAt: expiresAt.UTC()})
}
