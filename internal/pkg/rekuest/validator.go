package rekuest

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/model"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("raid", raid)
	validate.RegisterValidation("item", item)
	validate.RegisterValidation("chest", chest)
	validate.RegisterValidation("honors", honors)
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})

	return validate
}

func jsonTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// raid accepts loggable raids only.
func raid(fl validator.FieldLevel) bool {
	r, err := model.ParseRaid(fl.Field().String())
	return err == nil && r.Loggable()
}

func item(fl validator.FieldLevel) bool {
	_, err := model.ParseItem(fl.Field().String())
	return err == nil
}

func chest(fl validator.FieldLevel) bool {
	_, err := model.ParseChestType(fl.Field().String())
	return err == nil
}

// honors accepts an empty value as well, meaning no tier was reported.
func honors(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := model.ParseHonors(val)
	return err == nil
}

func nullStringValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.String); ok {
		return valuer.String
	}

	return nil
}
