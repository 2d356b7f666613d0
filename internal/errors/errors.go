package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrBadRequest          = NewAppError("BAD_REQUEST", "Requisição inválida", http.StatusBadRequest)
	ErrDatabase            = NewAppError("DATABASE_ERROR", "Erro ao executar operação no banco de dados", http.StatusInternalServerError)
	ErrTransactionNotFound = NewAppError("TRANSACTION_NOT_FOUND", "Transação não encontrada", http.StatusNotFound)
	ErrMissingPeriod       = NewAppError("MISSING_PERIOD", "Você deve enviar uma data de início e fim.", http.StatusBadRequest)
	ErrInvalidPeriod       = NewAppError("INVALID_PERIOD", "Datas de início e fim devem estar em formato ISO 8601.", http.StatusBadRequest)
)

// AppError carrega o código exposto ao cliente, o status HTTP e a causa original.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails e WithError devolvem cópias; os erros sentinela nunca são alterados.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func (e *AppError) clone() *AppError {
	clone := *e
	clone.Details = make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	return &clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsClientError indica falhas causadas pela entrada do cliente (4xx exceto not found).
func IsClientError(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return false
	}
	return appErr.StatusCode >= 400 && appErr.StatusCode < 500 && appErr.StatusCode != http.StatusNotFound
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return NewAppError("REQUEST_CANCELED", "Requisição cancelada pelo cliente", http.StatusRequestTimeout).WithError(err)
	}

	return NewAppError("UNKNOWN_ERROR", "Erro desconhecido", http.StatusInternalServerError).WithError(err)
}

func NewDatabaseError(err error) *AppError {
	return ErrDatabase.WithError(err)
}

func NewValidationError(field, message string) *AppError {
	return NewFieldsValidationError([]map[string]string{{"field": field, "message": message}})
}

// NewFieldsValidationError agrupa várias falhas de validação em um único erro.
func NewFieldsValidationError(fieldErrors []map[string]string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Erro de validação nos campos",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

// ParseValidationErrors traduz os erros do binding do gin; corpo malformado vira BAD_REQUEST.
func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translateFieldName(fieldErr.Field()),
			"message": translateValidationError(fieldErr),
		})
	}

	return NewFieldsValidationError(fieldErrors)
}

var fieldNames = map[string]string{
	"title":      "título",
	"amount":     "valor",
	"type":       "tipo",
	"category":   "categoria",
	"telegramid": "telegram",
	"nameuser":   "usuário",
}

func translateFieldName(field string) string {
	if translated, ok := fieldNames[strings.ToLower(field)]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s é obrigatório", fieldName)
	}
	return fmt.Sprintf("Validação '%s' falhou para %s", fe.Tag(), fieldName)
}
