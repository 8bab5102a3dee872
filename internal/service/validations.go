package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("printable", func(fl validator.FieldLevel) bool {
			for _, char := range fl.Field().String() {
				// Names end up as JSON keys and single CLI lines
				if !unicode.IsPrint(char) {
					return false
				}
			}
			return true
		})
	})
}

type RegisterRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type CategoryNameRequest struct {
	Name string `validate:"required,printable"`
}
