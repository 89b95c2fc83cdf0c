package rest

import (
	"errors"
	"fmt"
)

// RequestError el backend respondió con un status fuera de 2xx.
type RequestError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// NetworkError falla de transporte (DNS, conexión rechazada, timeout, contexto cancelado).
type NetworkError struct {
	Method string
	URL    string
	Cause  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// IsBackendError indica si err proviene del backend (red o respuesta no exitosa).
func IsBackendError(err error) bool {
	var re *RequestError
	var ne *NetworkError
	return errors.As(err, &re) || errors.As(err, &ne)
}

// IsNotFound indica si el backend respondió 404.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == 404
}
