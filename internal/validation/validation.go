// Package validation checks request shapes before any store access and
// reports every violated field, in declaration order, as apperror details.
//
// Messages come from the `msg` struct tag: "tag=message;tag=message", where
// the tag "*" is the fallback for any rule without its own entry.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/go-playground/validator/v10"
)

const InvalidDataMessage = "Dados inválidos"

const idMessage = "ID deve ser um número inteiro maior que 0"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// maxbytes bounds the encoded length of a string, not its rune count.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
	return v
}

// Normalizer is implemented by inputs that trim or otherwise clean their
// fields before the rules run.
type Normalizer interface {
	Normalize()
}

// Struct returns the ordered list of rule violations for s.
func Struct(s any) []apperror.FieldError {
	if n, ok := s.(Normalizer); ok {
		n.Normalize()
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperror.FieldError{{Field: "body", Message: InvalidDataMessage}}
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	details := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperror.FieldError{
			Field:   fe.Field(),
			Message: message(t, fe),
		})
	}
	return details
}

// Order sorts details by the declaration order of their field in s. Fields
// s does not declare, like the path id or the raw body, sort first.
func Order(s any, details []apperror.FieldError) []apperror.FieldError {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	pos := map[string]int{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
			if name != "" && name != "-" {
				pos[name] = i
			}
		}
	}
	rank := func(field string) int {
		if i, ok := pos[field]; ok {
			return i
		}
		return -1
	}
	slices.SortStableFunc(details, func(a, b apperror.FieldError) int {
		return rank(a.Field) - rank(b.Field)
	})
	return details
}

// Validate is Struct folded into the failure type handlers return.
func Validate(s any) error {
	if details := Struct(s); len(details) > 0 {
		return apperror.InvalidInput(InvalidDataMessage, details...)
	}
	return nil
}

// ParseID parses an identifier path parameter: an integer >= 1.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.InvalidInput(InvalidDataMessage, apperror.FieldError{Field: "id", Message: idMessage})
	}
	return id, nil
}

func message(t reflect.Type, fe validator.FieldError) string {
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if msg := lookup(sf.Tag.Get("msg"), fe.Tag()); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("Valor inválido para o campo %s", fe.Field())
}

func lookup(tag, rule string) string {
	var fallback string
	for _, entry := range strings.Split(tag, ";") {
		key, msg, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case rule:
			return msg
		case "*":
			fallback = msg
		}
	}
	return fallback
}
