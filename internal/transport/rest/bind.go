package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"

	"github.com/dingla0/TranslationTracker/internal/domain"
)

const maxBodyBytes = 1 << 20

// errBadJSON marks a body that could not be decoded at all.
var errBadJSON = errors.New("invalid request body")

type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	validatorOnce sync.Once
	validatorInst *requestValidator
)

// getValidator returns the shared validator with English messages keyed by
// json field names.
func getValidator() *requestValidator {
	validatorOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		validatorInst = &requestValidator{validate: v, trans: trans}
	})
	return validatorInst
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// validateStruct runs struct tags and converts failures to a domain
// validation error so handlers share one error path.
func validateStruct(v any) error {
	rv := getValidator()
	err := rv.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fe.Translate(rv.trans)})
	}
	return domain.NewValidationErrors(fields)
}

// decodeJSON reads a single JSON object into T, rejecting unknown fields and
// trailing data, then validates it.
func decodeJSON[T any](r *http.Request) (T, error) {
	var dst T

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		return dst, fmt.Errorf("%w: %v", errBadJSON, err)
	}
	if dec.More() {
		return dst, fmt.Errorf("%w: unexpected trailing data", errBadJSON)
	}

	if err := validateStruct(dst); err != nil {
		return dst, err
	}
	return dst, nil
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

// queryReader collects query-string parse failures so a handler can report
// them all at once.
type queryReader struct {
	values url.Values
	errs   []domain.FieldError
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{values: r.URL.Query()}
}

func (q *queryReader) get(key string) string {
	if vs := q.values[key]; len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

func (q *queryReader) strPtr(key string) *string {
	if _, ok := q.values[key]; !ok {
		return nil
	}
	v := q.get(key)
	return &v
}

func (q *queryReader) intOr(key string, def int) int {
	raw := q.get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return def
	}
	return n
}

func (q *queryReader) intPtr(key string) *int {
	raw := q.get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be an integer"})
		return nil
	}
	return &n
}

func (q *queryReader) uuidPtr(key string) *uuid.UUID {
	raw := q.get(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be a valid UUID"})
		return nil
	}
	return &id
}

func (q *queryReader) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}
