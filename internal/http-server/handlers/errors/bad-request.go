package errors

import (
	"github.com/go-chi/render"
	"net/http"
	"statica/internal/lib/api/response"
)

// BadRequest writes the error envelope for a request body that could not be decoded
// or failed validation.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error(message))
}
