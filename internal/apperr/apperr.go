// Package apperr define os erros de negócio da API como valores com um
// discriminante de tipo (Kind). A camada HTTP é o único lugar que traduz
// Kind para status code.
package apperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindInvalidID
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func InvalidID(message string) *Error {
	return &Error{Kind: KindInvalidID, Code: "invalid_id", Message: message}
}

func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

func Forbidden(code, message string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func Internal(code, message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: code, Message: message, Err: err}
}

// From normaliza qualquer erro em *Error. Erros não tipados viram Internal,
// sem vazar detalhe para o cliente.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("internal_error", "Erro interno do servidor.", err)
}

// Is reporta se err é um *Error com o Kind dado.
func Is(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
