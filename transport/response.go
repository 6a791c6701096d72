package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	validatorx "github.com/muhammadheryan/heating-backoffice/utils/validator"
	"go.uber.org/zap"
)

type successResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeSuccessStatus(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeSuccessStatus(w, http.StatusCreated, data)
}

func writeSuccessStatus(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError maps a CustomError to its HTTP status; anything else is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

// decodeAndValidate reads a JSON body into req and runs its validate tags.
func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid JSON body")
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		var fieldErrs gpvalidator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
				fmt.Sprintf("field %s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}
