package serverutils

import (
	"fmt"
	"strings"

	"doc-wizard-be/internal/dto"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a request DTO against its validate tags and wraps
// failures in the ValidationError type the error middleware maps to 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, v := range verrs {
				fields = append(fields, fmt.Sprintf("%s is %s", strings.ToLower(v.Field()), v.Tag()))
			}
			return &dto.ValidationError{Message: "Invalid request: " + strings.Join(fields, ", ")}
		}
		return &dto.ValidationError{Message: "Invalid request"}
	}
	return nil
}
