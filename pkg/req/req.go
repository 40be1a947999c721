package req

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode читает JSON из тела запроса и проверяет теги validate
func Decode[T any](body io.ReadCloser) (T, error) {
	defer body.Close()

	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}
	if err := validate.Struct(payload); err != nil {
		return payload, err
	}

	return payload, nil
}
