package response

import (
	"errors"

	"github.com/jackc/pgconn"
)

// ErrorResponse is the JSON error envelope. Details and hint are passed
// through for admin visibility when the store reports them.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func ErrorWithDetails(msg, details string) ErrorResponse {
	return ErrorResponse{Error: msg, Details: details}
}

// FromStoreError surfaces a storage failure. Postgres errors carry their
// message and hint into the envelope.
func FromStoreError(err error) ErrorResponse {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ErrorResponse{
			Error:   "store error",
			Details: pgErr.Message,
			Hint:    pgErr.Hint,
		}
	}
	return ErrorResponse{
		Error:   "store error",
		Details: err.Error(),
	}
}
