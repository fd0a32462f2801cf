package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validator wraps the go-playground validator with the domain's custom tags.
// Only the first failing field is reported, as a *domain.ValidationError.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// Default returns the shared validator instance
func Default() *Validator {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New creates a validator with the custom rules registered
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
		return domain.Frequency(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("income_source_type", func(fl validator.FieldLevel) bool {
		return domain.IncomeSourceType(fl.Field().String()).IsValid()
	})

	// amounts are compared as numbers by gt/lte
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate trims every string field of the struct pointed to by i, then validates it.
// It satisfies echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	trimStrings(reflect.ValueOf(i))

	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return domain.NewValidationError(fe.Field(), message(fe))
	}
	return domain.NewValidationError("", err.Error())
}

func trimStrings(v reflect.Value) {
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}

// overrides holds messages that read better than the generated ones
var overrides = map[string]string{
	"icon.required":   "Please select an icon",
	"icon.max":        "Icon is too long",
	"color.required":  "Must be a valid hex color",
	"color.hexcolor6": "Must be a valid hex color",
	"amount.gt":       "Amount must be greater than 0",
	"amount.lte":      "Amount is too large",
	"month.min":       "Month must be between 1 and 12",
	"month.max":       "Month must be between 1 and 12",
	"year.min":        "Year must be between 2000 and 2100",
	"year.max":        "Year must be between 2000 and 2100",
}

func message(fe validator.FieldError) string {
	if msg, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s characters or less", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "datetime":
		return label + " must be a valid date (YYYY-MM-DD)"
	case "uuid", "oneof", "payment_method", "frequency", "income_source_type":
		return "Invalid " + strings.ToLower(label)
	}
	return label + " is invalid"
}

// humanize turns a json field name like "paymentMethod" into "Payment method"
func humanize(field string) string {
	field = strings.TrimSuffix(field, "Id")
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
