package validators

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/RicardoPBJ/Vemynd-Store/internal/models"
)

// minReleaseDate is the floor for product release dates; a valid product
// was released strictly after this instant.
var minReleaseDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// FieldError is a single field-level violation. Field carries the JSON
// name of the offending attribute for client-side mapping.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// messages maps an offending field to its fixed violation message.
var messages = map[string]string{
	"name":              "O campo 'Name' é obrigatório.",
	"price":             "O campo 'Price' deve ser maior que zero.",
	"releaseDate":       "A data de lançamento deve ser após 01/01/2000.",
	"weight":            "O campo 'Weight' deve ser maior que zero.",
	"displayResolution": "Se o produto for touchscreen, o campo 'DisplayResolution' deve ser informado.",
	"brand":             "Produtos com preço acima de 10.000 devem ter a marca informada.",
	"imageUrl":          "Se informado, o campo 'ImageUrl' deve conter uma URL válida.",
}

// ProductValidator checks a candidate product against the catalog rules.
// It is stateless after construction and safe for concurrent use.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a validator with all product rules registered.
func NewProductValidator() *ProductValidator {
	v := validator.New()

	// Report fields by their JSON name so clients can map violations back
	// onto the payload they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(productCrossFieldRules, models.Product{})

	return &ProductValidator{validate: v}
}

// productCrossFieldRules covers the rules a single struct tag cannot express:
// the release-date floor and the two conditional requirements.
func productCrossFieldRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(models.Product)

	if !p.ReleaseDate.After(minReleaseDate) {
		sl.ReportError(p.ReleaseDate, "releaseDate", "ReleaseDate", "release_date_min", "")
	}
	if p.IsTouchscreen && p.DisplayResolution == "" {
		sl.ReportError(p.DisplayResolution, "displayResolution", "DisplayResolution", "required_if_touchscreen", "")
	}
	if p.Price > 10000 && p.Brand == "" {
		sl.ReportError(p.Brand, "brand", "Brand", "required_above_price_cap", "")
	}
}

// Validate evaluates every rule independently and returns all violations.
// An empty slice means the product is valid. Validate never touches storage.
func (pv *ProductValidator) Validate(product models.Product) []FieldError {
	err := pv.validate.Struct(product)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator only returns InvalidValidationError for non-struct
		// input, which cannot happen with a models.Product argument.
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	violations := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		msg, ok := messages[e.Field()]
		if !ok {
			msg = "O campo '" + e.StructField() + "' é inválido."
		}
		violations = append(violations, FieldError{Field: e.Field(), Message: msg})
	}
	return violations
}
