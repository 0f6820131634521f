// Package errors defines the business error taxonomy exposed on the wire.
// Every AppError carries an HTTP status, a stable machine-readable code and
// a user-facing message in pt-BR, the product's market language.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the contract every business error satisfies. The HTTP layer
// renders these directly; anything else is treated as an internal error.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() map[string]any
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   map[string]any
	cause     error
}

// NewBaseError creates a new business error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.errorCode, e.message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.errorCode, e.message)
}

// HTTPCode returns the HTTP status this error maps to.
func (e *BaseError) HTTPCode() int { return e.httpCode }

// ErrorCode returns the stable machine-readable code.
func (e *BaseError) ErrorCode() string { return e.errorCode }

// Message returns the user-facing message.
func (e *BaseError) Message() string { return e.message }

// Details returns supplementary key-value context, may be nil.
func (e *BaseError) Details() map[string]any { return e.details }

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *BaseError) Unwrap() error { return e.cause }

// WithDetails returns a copy of the error with the given details attached.
func (e *BaseError) WithDetails(details map[string]any) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithCause returns a copy of the error wrapping an underlying cause.
// The cause is for logs only and never rendered to clients.
func (e *BaseError) WithCause(cause error) *BaseError {
	clone := *e
	clone.cause = cause

	return &clone
}

// Not-found errors.
var (
	ErrFreightNotFound      = NewBaseError(http.StatusNotFound, "FREIGHT_NOT_FOUND", "Frete não encontrado")
	ErrTripNotFound         = NewBaseError(http.StatusNotFound, "TRIP_NOT_FOUND", "Viagem não encontrada")
	ErrMatchRequestNotFound = NewBaseError(http.StatusNotFound, "MATCH_REQUEST_NOT_FOUND", "Solicitação não encontrada")
)

// Validation and geometry errors.
var (
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Dados inválidos")
	ErrInvalidGeometry  = NewBaseError(http.StatusBadRequest, "INVALID_GEOMETRY", "Coordenadas inválidas")
)

// Matching and routing errors.
var (
	// ErrRouteNotReady signals the trip has no computed route yet. Clients
	// should retry after the route computation finishes.
	ErrRouteNotReady          = NewBaseError(http.StatusUnprocessableEntity, "ROUTE_NOT_READY", "A rota da viagem ainda não está disponível")
	ErrRouteComputationFailed = NewBaseError(http.StatusBadGateway, "ROUTE_COMPUTATION_FAILED", "Não foi possível calcular a rota. Tente novamente")
)

// Lifecycle errors.
var (
	ErrFreightUnavailable      = NewBaseError(http.StatusConflict, "FREIGHT_UNAVAILABLE", "Este frete não está mais disponível")
	ErrTripUnavailable         = NewBaseError(http.StatusConflict, "TRIP_UNAVAILABLE", "Esta viagem não está mais ativa")
	ErrInvalidStateTransition  = NewBaseError(http.StatusConflict, "INVALID_STATE_TRANSITION", "Esta solicitação já foi finalizada")
	ErrRequestNotAccepted      = NewBaseError(http.StatusConflict, "REQUEST_NOT_ACCEPTED", "Os contatos ficam disponíveis após a aceitação da solicitação")
	ErrDuplicatePendingRequest = NewBaseError(http.StatusConflict, "DUPLICATE_PENDING_REQUEST", "Já existe uma solicitação pendente para este frete")
)

// Access errors.
var (
	ErrUnauthorized       = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Autenticação necessária")
	ErrOwnershipViolation = NewBaseError(http.StatusForbidden, "OWNERSHIP_VIOLATION", "Você não tem permissão para acessar este recurso")
)

// Infrastructure errors.
var (
	ErrDatabaseExecute = NewBaseError(http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED", "Erro interno. Tente novamente mais tarde")
	ErrInternal        = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
)
