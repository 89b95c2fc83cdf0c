package dto

import "time"

// LoginRequest contraseña del operador.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token JWT del operador.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
