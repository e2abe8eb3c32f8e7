package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorsMap mengubah validator.ValidationErrors jadi map field → pesan.
// Nama field memakai namespace tanpa nama struct akar, mis. "semesters[0].year".
func ValidationErrorsMap(err error) (map[string][]string, bool) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		out[key] = append(out[key], validationMessage(fe))
	}
	return out, true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "min", "gte":
		return "minimal " + fe.Param()
	case "max", "lte":
		return "maksimal " + fe.Param()
	case "gt":
		return "harus lebih dari " + fe.Param()
	default:
		return fe.Tag()
	}
}
