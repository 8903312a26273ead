package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ITINERARY_BACK-END/internal/dto"
)

const maxRequestBody = 1 << 20

var validate = validator.New()

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a dto.ErrorResponse with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// DecodeJSONRequest decodes and validates a JSON body into dst. On failure it
// writes a 400 response and returns the error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		msg := "Request body must be valid JSON"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", msg)
		return err
	}

	if err := validate.Struct(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", describeValidation(err))
		return err
	}
	return nil
}

// describeValidation lists the failing JSON fields.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func init() {
	// Report JSON names instead of Go field names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
