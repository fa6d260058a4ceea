package api

import "github.com/bitmark-inc/momentum-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: store.ErrAccountNotFound.Error(),
		1102: "profile service unavailable",

		1200: "fitness data source unavailable",
		1201: "invalid date format",

		1300: store.ErrSubscriptionNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound      = errorJSON(1101)
	errorProfileUnavailable   = errorJSON(1102)
	errorFitnessUnavailable   = errorJSON(1200)
	errorInvalidDateFormat    = errorJSON(1201)
	errorSubscriptionNotFound = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
