package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fekuna/estoque-api/internal/apperror"
	"github.com/fekuna/estoque-api/internal/validation"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// Page is the list envelope shared by every collection endpoint.
type Page[T any] struct {
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	Data       []T `json:"data"`
}

func NewPage[T any](items []T, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{PageSize: len(items), TotalCount: total, Data: items}
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON reads the request body into dst. An empty body leaves dst
// untouched so the validation rules report the missing fields.
func DecodeJSON(r *http.Request, dst any) error {
	mismatch, err := decode(r, dst)
	if err != nil {
		return err
	}
	if mismatch != nil {
		return mismatch
	}
	return nil
}

// Bind decodes the body into dst and runs its validation rules. A JSON type
// mismatch is reported next to the rule violations of the other fields, and
// extra details (such as a bad path id) join the same list.
func Bind(r *http.Request, dst any, extra ...apperror.FieldError) error {
	mismatch, err := decode(r, dst)
	if err != nil {
		appErr := apperror.From(err)
		appErr.Details = append(append([]apperror.FieldError{}, extra...), appErr.Details...)
		return appErr
	}

	details := append([]apperror.FieldError{}, extra...)
	var cause error
	if mismatch != nil {
		cause = mismatch.Err
		details = append(details, mismatch.Details...)
	}
	for _, d := range validation.Struct(dst) {
		if mismatch != nil && d.Field == mismatch.Details[0].Field {
			continue
		}
		details = append(details, d)
	}
	if len(details) == 0 {
		return nil
	}

	return &apperror.Error{
		Kind:    apperror.KindInvalidInput,
		Message: validation.InvalidDataMessage,
		Details: validation.Order(dst, details),
		Err:     cause,
	}
}

// BindWithID parses the {id} route variable and binds the body, reporting
// the violations of both in one failure.
func BindWithID(r *http.Request, dst any) (int64, error) {
	id, err := PathID(r)
	var extra []apperror.FieldError
	if err != nil {
		extra = apperror.From(err).Details
	}
	if err := Bind(r, dst, extra...); err != nil {
		return 0, err
	}
	return id, nil
}

// decode returns the type mismatch separately from a fatal decode failure:
// after a mismatch encoding/json keeps filling the remaining fields.
func decode(r *http.Request, dst any) (*apperror.Error, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &apperror.Error{
			Kind:    apperror.KindInvalidInput,
			Message: validation.InvalidDataMessage,
			Details: []apperror.FieldError{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("Valor inválido para o campo %s", typeErr.Field),
			}},
			Err: err,
		}, nil
	}

	return nil, &apperror.Error{
		Kind:    apperror.KindInvalidInput,
		Message: validation.InvalidDataMessage,
		Details: []apperror.FieldError{{Field: "body", Message: "JSON malformado"}},
		Err:     err,
	}
}

// PathID returns the validated {id} route variable.
func PathID(r *http.Request) (int64, error) {
	return validation.ParseID(mux.Vars(r)["id"])
}
