package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/Tamirosss/app-server/internal/model"
)

// Validator is the shared validator instance for JSON-body endpoints.
var Validator *validator.Validate

// Trans translates validation errors into client-facing messages.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// Report field names by their json tag so messages match the wire.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
}

// NewValidationErrorResponse folds validator errors into one AppError.
func NewValidationErrorResponse(errs validator.ValidationErrors) error {
	var fields []string
	var messages []string
	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}
	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
