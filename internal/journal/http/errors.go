package http

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/journal/internal/journal/service"
	"github.com/aussiebroadwan/journal/internal/journal/store"
	"github.com/aussiebroadwan/journal/pkg/httpx"
	"github.com/aussiebroadwan/journal/pkg/journalsdk"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest reads and validates a JSON body into v. On failure the 400
// has already been written and false is returned.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		journalsdk.ErrValidation.WithDescription(err.Error()).WriteError(w)
		return false
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			slogx.FromContext(r.Context()).Error("request validation failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
			return false
		}

		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		journalsdk.ErrValidation.WithDetails(details).WriteError(w)
		return false
	}

	return true
}

// writeServiceError maps a service or store error onto the API error
// vocabulary. Anything unrecognised becomes a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		journalsdk.ErrValidation.WriteError(w)
	case errors.Is(err, service.ErrAlreadyExists):
		journalsdk.ErrAlreadyExists.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		journalsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		journalsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrTokenExpired), errors.Is(err, service.ErrInvalidToken):
		writeAuthnError(w, r, err)
	case errors.Is(err, store.ErrStorageUnavailable):
		// Operators page on this attribute.
		log.Error("storage unavailable",
			slog.String("alert", journalsdk.ErrorCodeStorageUnavailable),
			slog.Any("err", err),
		)
		w.Header().Set("Retry-After", "1")
		journalsdk.ErrStorageUnavailable.WriteError(w)
	default:
		log.Error("unhandled service error", slog.Any("err", err))
		journalsdk.ErrServerError.WriteError(w)
	}
}

// writeAuthnError renders a rejected bearer token. Expired tokens are told
// apart so clients know to log in again.
func writeAuthnError(w http.ResponseWriter, _ *http.Request, err error) {
	apiErr := journalsdk.ErrInvalidToken
	if errors.Is(err, service.ErrTokenExpired) {
		apiErr = journalsdk.ErrTokenExpired
	}
	httpx.WriteBearerChallenge(w, apiErr.Code, apiErr.Description)
	apiErr.WriteError(w)
}
