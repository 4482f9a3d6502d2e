package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/salvodev/portfolio-backend/errs"
)

// decodeInput reads and unmarshals the single JSON input object of a mutation
func decodeInput(r *http.Request, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if len(bodyBytes) == 0 {
		return errs.NewBadRequestError("missing request body")
	}
	if err := json.Unmarshal(bodyBytes, dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}
