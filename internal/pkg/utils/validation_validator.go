package utils

import (
	"reflect"
	"regexp"
	"strings"

	"barangay-health-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate         *validator.Validate
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("bcrypt_password", validateBcryptPassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateUserRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, r := range constvars.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// bcrypt refuses input longer than 72 bytes; max= counts runes, not bytes.
func validateBcryptPassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= constvars.BcryptMaxPasswordBytes
}
