package server

import "github.com/go-playground/validator/v10"

type RequestValidator struct {
	validate *validator.Validate
}

// NewValidator создает валидатор запросов на базе go-playground/validator.
func NewValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate запускает проверку структуры по тегам.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
