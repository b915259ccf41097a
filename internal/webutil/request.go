package webutil

import (
	"encoding/json"
	"net/http"

	"github.com/Tamirosss/app-server/internal/model"
)

// DecodeJSONBody decodes the request body into dst.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}
