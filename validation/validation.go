// Package validation holds the field rules shared by every service and the
// name normalization that defines scoped uniqueness.
package validation

import (
	"errors"
	"net/url"
	"reflect"
	"strings"
	"unicode"

	"restaurant-management-api/apperr"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

var customMessages = map[string]string{
	"strongpassword": "{0} must include at least 1 uppercase letter, 1 lowercase letter, and 1 number",
	"phone":          "{0} must be a valid phone number",
	"httpurl":        "{0} must be a valid HTTP/HTTPS URL",
	"bcryptmax":      "{0} must be at most 72 bytes long",
}

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	locale := en.New()
	trans, _ = ut.New(locale, locale).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}

	mustRegister("strongpassword", strongPassword)
	mustRegister("phone", phoneNumber)
	mustRegister("httpurl", httpURL)
	mustRegister("bcryptmax", bcryptMax)
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
	msg := customMessages[tag]
	err := validate.RegisterTranslation(tag, trans,
		func(u ut.Translator) error { return u.Add(tag, msg, true) },
		func(u ut.Translator, fe validator.FieldError) string {
			t, _ := u.T(tag, fe.Field())
			return t
		})
	if err != nil {
		panic(err)
	}
}

// Struct validates s against its `validate` tags. Failures come back as an
// *apperr.Error: MISSING_FIELD when any required field is absent, otherwise
// VALIDATION_FAILED.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Internal(err, "validation failed")
	}

	code := apperr.CodeValidationFailed
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			code = apperr.CodeMissingField
		}
		msgs = append(msgs, fe.Translate(trans))
	}
	return apperr.New(code, "%s", strings.Join(msgs, "; "))
}

// StrongPassword reports whether p has at least 6 characters with one
// uppercase letter, one lowercase letter and one digit.
func StrongPassword(p string) bool {
	if len([]rune(p)) < 6 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func strongPassword(fl validator.FieldLevel) bool {
	return StrongPassword(fl.Field().String())
}

// bcryptMax counts bytes, not runes: the limit is bcrypt's.
func bcryptMax(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

// Phone accepts an optional leading '+', digits, spaces, dashes, dots and
// parentheses, with 7 to 15 digits in total.
func Phone(s string) bool {
	s = strings.TrimSpace(s)
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}

func phoneNumber(fl validator.FieldLevel) bool {
	return Phone(fl.Field().String())
}

// HTTPURL reports whether s is an absolute http or https URL with a host.
func HTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func httpURL(fl validator.FieldLevel) bool {
	return HTTPURL(fl.Field().String())
}

// NormalizeName removes every whitespace character and lowercases the rest.
// Category and item names are compared and stored in this form.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
