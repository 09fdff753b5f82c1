package rekuest

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"
)

// UT holds the locales violation messages are translated into. English is the fallback.
var UT = ut.New(en.New(), en.New(), ja.New())

// LocalsKeyTranslator is the fiber.Ctx locals key the request translator is stored under.
const LocalsKeyTranslator = "T"

func TranslatorFromCtx(c *fiber.Ctx) ut.Translator {
	if trans, ok := c.Locals(LocalsKeyTranslator).(ut.Translator); ok {
		return trans
	}
	return UT.GetFallback()
}
