package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workledger/workledger-backend-go/internal/handler/http/response"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

// idParam reads the {id} path parameter. A value that is not a record id is
// answered with notFound and reported as absent.
func idParam(w http.ResponseWriter, r *http.Request, notFound error) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, notFound)
		return "", false
	}
	return id, true
}
