package middlewares

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/raidlog/droptracker/internal/pkg/rekuest"
)

// InjectI18n picks the violation message translator matching the request's Accept-Language header.
func InjectI18n() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		set := func(trans ut.Translator) error {
			c.Locals(rekuest.LocalsKeyTranslator, trans)
			return c.Next()
		}

		tags, _, err := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		if err != nil {
			return set(rekuest.UT.GetFallback())
		}

		langs := make([]string, 0, len(tags))
		for _, tag := range tags {
			base, _ := tag.Base()
			langs = append(langs, strings.ToLower(base.String()))
		}

		trans, _ := rekuest.UT.FindTranslator(langs...)
		return set(trans)
	}
}
