package oauth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// AuthorizationRequest holds the values of a single sign-in attempt.
type AuthorizationRequest struct {
	ClientID    string   `validate:"required"`
	RedirectURI string   `validate:"required,url"`
	Scopes      []string `validate:"min=1,dive,required"`
	// State is round-tripped through the provider untouched.
	// See State for the structured form used by this package.
	State string `validate:"required"`
}

// Validate reports whether all fields are set and well formed.
// BuildAuthorizationURL does not call it.
func (r AuthorizationRequest) Validate() error {
	return validateStruct(r)
}

// TokenRequest holds the values of a single authorization code exchange.
type TokenRequest struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	Code         string `validate:"required"`
	RedirectURI  string `validate:"required,url"`
}

// Validate reports whether all fields are set and well formed.
// BuildTokenURL does not call it.
func (r TokenRequest) Validate() error {
	return validateStruct(r)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validateStruct(v any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidRequest, err)
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrInvalidRequest)
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag()))
	}
	return errors.Join(errs...)
}
