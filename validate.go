package atoship

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	schemaValidate *validator.Validate
	schemaOnce     sync.Once
)

// getValidator returns the singleton validator instance, configured to use
// json tag names in error messages and extended with the SDK's custom
// format checks.
func getValidator() *validator.Validate {
	schemaOnce.Do(func() {
		schemaValidate = validator.New(validator.WithRequiredStructEnabled())

		schemaValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		if err := schemaValidate.RegisterValidation("phone", validPhone); err != nil {
			panic(err)
		}

		schemaValidate.RegisterStructValidation(addressStructLevel, Address{})
		schemaValidate.RegisterStructValidation(orderRequestStructLevel, CreateOrderRequest{})
	})
	return schemaValidate
}

// ValidateStruct checks a payload against its schema tags. It returns nil
// for a valid payload and a *ValidationError mapping field paths to ordered
// violation messages otherwise. Pure apart from the returned error: the
// payload is never modified.
func ValidateStruct(payload any) error {
	err := getValidator().Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		vErr := &ValidationError{}
		vErr.add("payload", "validation failed: "+err.Error())
		return vErr
	}

	vErr := &ValidationError{}
	for _, fe := range fieldErrors {
		vErr.add(fieldPath(fe), formatViolation(fe))
	}
	return vErr
}

// fieldPath strips the outermost struct name from the namespace, leaving
// paths like "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// formatViolation creates a human-readable message per validation tag.
func formatViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "phone":
		return "must be a valid phone number (10-15 digits)"
	case "postalcode":
		return "is not a valid postal code for the declared country"
	default:
		return "is invalid"
	}
}

var phoneDigits = regexp.MustCompile(`\D`)

// validPhone accepts 10 to 15 digits after stripping formatting characters.
func validPhone(fl validator.FieldLevel) bool {
	digits := phoneDigits.ReplaceAllString(fl.Field().String(), "")
	return len(digits) >= 10 && len(digits) <= 15
}

// Per-country postal code patterns. Countries without an entry fall back to
// a permissive alphanumeric pattern.
var (
	postalMu       sync.RWMutex
	postalPatterns = map[string]*regexp.Regexp{
		"US": regexp.MustCompile(`^\d{5}(-\d{4})?$`),
		"CA": regexp.MustCompile(`^[A-Z]\d[A-Z]\s?\d[A-Z]\d$`),
		"GB": regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2}$`),
	}
	postalDefault = regexp.MustCompile(`^[A-Z0-9\s-]{3,10}$`)
)

// RegisterPostalPattern installs or replaces the postal code pattern for a
// country code. Patterns are matched against trimmed, upper-cased input.
func RegisterPostalPattern(country string, pattern *regexp.Regexp) {
	postalMu.Lock()
	defer postalMu.Unlock()
	postalPatterns[strings.ToUpper(country)] = pattern
}

// ValidPostalCode reports whether a postal code matches the format for the
// given country, falling back to a permissive pattern for unrecognized
// countries.
func ValidPostalCode(postalCode, country string) bool {
	code := strings.ToUpper(strings.TrimSpace(postalCode))
	postalMu.RLock()
	pattern, ok := postalPatterns[strings.ToUpper(strings.TrimSpace(country))]
	postalMu.RUnlock()
	if !ok {
		pattern = postalDefault
	}
	return pattern.MatchString(code)
}

func addressStructLevel(sl validator.StructLevel) {
	addr := sl.Current().Interface().(Address)
	if addr.PostalCode != "" && !ValidPostalCode(addr.PostalCode, addr.Country) {
		sl.ReportError(addr.PostalCode, "postalCode", "PostalCode", "postalcode", "")
	}
}

func orderRequestStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)
	if req.RecipientPostalCode != "" && !ValidPostalCode(req.RecipientPostalCode, req.RecipientCountry) {
		sl.ReportError(req.RecipientPostalCode, "recipientPostalCode", "RecipientPostalCode", "postalcode", "")
	}
}

// validateBody runs schema validation on a request body when it is a struct
// or a pointer to one. Raw maps and pre-encoded payloads pass through.
func validateBody(body any) error {
	if body == nil {
		return nil
	}
	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return ValidateStruct(v.Interface())
}
