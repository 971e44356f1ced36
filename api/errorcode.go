package api

import "github.com/fruitshare/fruitshare-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),

		1200: store.ErrPropertyNotFound.Error(),
		1201: "property location does not match your current position",
		1202: "a verified property is required before creating listings",

		1300: store.ErrListingNotFound.Error(),
		1301: store.ErrListingNotActive.Error(),
		1302: store.ErrListingNotOwned.Error(),
		1303: "address not found, please check and retry",

		1400: store.ErrRequestNotFound.Error(),
		1401: store.ErrDuplicateRequest.Error(),
		1402: store.ErrSelfRequest.Error(),
		1403: store.ErrTransitionForbidden.Error(),
		1404: store.ErrInvalidTransition.Error(),
		1405: store.ErrIncompleteCompletion.Error(),

		1500: store.ErrThreadForbidden.Error(),
		1501: store.ErrEmptyMessage.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorPropertyNotFound = errorJSON(1200)
	errorPropertyTooFar   = errorJSON(1201)
	errorPropertyRequired = errorJSON(1202)

	errorListingNotFound  = errorJSON(1300)
	errorListingNotActive = errorJSON(1301)
	errorListingNotOwned  = errorJSON(1302)
	errorAddressNotFound  = errorJSON(1303)

	errorRequestNotFound      = errorJSON(1400)
	errorDuplicateRequest     = errorJSON(1401)
	errorSelfRequest          = errorJSON(1402)
	errorTransitionForbidden  = errorJSON(1403)
	errorInvalidTransition    = errorJSON(1404)
	errorIncompleteCompletion = errorJSON(1405)

	errorThreadForbidden = errorJSON(1500)
	errorEmptyMessage    = errorJSON(1501)
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
