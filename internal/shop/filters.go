package shop

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Filters narrows the enriched catalog. Nil fields impose no constraint.
type Filters struct {
	MinPrice      *float64 `json:"minPrice" validate:"omitnil,gt=0"`
	MaxPrice      *float64 `json:"maxPrice" validate:"omitnil,gt=0"`
	MinPopularity *float64 `json:"minPopularity" validate:"omitnil,gte=0,lte=1"`
}

// Issue is a single field-level validation failure.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every filter violation at once. Invalid fields are
// reported, never clamped or dropped.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Message)
	}
	return "invalid filters: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json tag names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(Filters)
		if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
			sl.ReportError(f.MinPrice, "minPrice", "MinPrice", "pricebounds", "")
		}
	}, Filters{})
	return v
}

// Validate bounds-checks the filter fields and the minPrice/maxPrice
// relation. On failure it returns a *ValidationError listing every violation.
func (f Filters) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Issues: make([]Issue, 0, len(verrs))}
	for _, fe := range verrs {
		out.Issues = append(out.Issues, Issue{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "pricebounds":
		return "minPrice must be less than or equal to maxPrice"
	default:
		return "is invalid"
	}
}

// matches applies the predicates in order, short-circuiting on the first
// failure. Popularity is checked against the raw score, the price bounds
// against the computed price.
func (f Filters) matches(popularityScore, price float64) bool {
	if f.MinPopularity != nil && popularityScore < *f.MinPopularity {
		return false
	}
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}
