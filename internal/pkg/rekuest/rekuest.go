// Package rekuest validates incoming requests and turns violations into
// translated dterr errors.
package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/raidlog/droptracker/internal/pkg/dterr"
)

var Validate = NewValidator()

// domainTags are rendered with the same message as `oneof`, naming the field.
var domainTags = []string{"raid", "item", "chest", "honors"}

func init() {
	entr, _ := UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	jatr, _ := UT.GetTranslator("ja")
	if err := jaTranslations.RegisterDefaultTranslations(Validate, jatr); err != nil {
		log.Warn().Err(err).Str("locale", "ja").Msg("could not register translation")
	}

	translators := map[string]ut.Translator{
		"en": entr,
		"ja": jatr,
	}

	for l, t := range translators {
		for _, tag := range domainTags {
			err := Validate.RegisterTranslation(tag, t, func(ut ut.Translator) error {
				return nil
			}, func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T("oneof", fe.Field(), "["+fe.Tag()+" name]")
				return t
			})
			if err != nil {
				log.Warn().Err(err).Str("locale", l).Str("tag", tag).Msg("could not register translation")
			}
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}
	return trans
}

func validateStruct(ctx *fiber.Ctx, s any) ([]*ErrorResponse, error) {
	err := Validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, errors.Wrap(err, "unable to validate request")
	}
	return translate(TranslatorFromCtx(ctx), ve), nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write the unmarshalled body
// to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return dterr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

// ValidQuery is ValidBody for the query string.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return dterr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	violations, err := validateStruct(ctx, dest)
	if err != nil {
		return err
	}
	if violations != nil {
		return dterr.NewInvalidViolations(violations)
	}

	return nil
}
