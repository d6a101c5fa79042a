package v1

import (
	"errors"
	"net/http"

	"github.com/LongVariable/Ziskup/internal/repository"
	"github.com/LongVariable/Ziskup/internal/storage"
)

type httpError struct {
	Error string `json:"error" example:"the month is not a valid calendar month"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, storage.ErrStorage) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, repository.ErrCategoryUnknown) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthParameterInvalid = errors.New("the month must be specified as YYYY-MM or the literal string 'template'")
	errRangeInvalid          = errors.New("the 'from' month must not be after the 'to' month")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
