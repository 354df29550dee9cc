package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct tags on a request DTO and maps violations
// to a 400 with the first offending field named.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("%s is %s", first.Field(), first.Tag()))
	}

	return fiber.NewError(fiber.StatusBadRequest, "invalid request")
}
