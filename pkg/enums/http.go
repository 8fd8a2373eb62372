package enums

import (
	"fmt"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// HTTPStatus mirrors the standard HTTP status codes. HTTPStatusNone is
// the sentinel for "no status assigned yet".
type HTTPStatus int

const (
	HTTPStatusNone HTTPStatus = -1

	// 1xx Informational
	HTTPStatusContinue           HTTPStatus = 100
	HTTPStatusSwitchingProtocols HTTPStatus = 101
	HTTPStatusProcessing         HTTPStatus = 102

	// 2xx Success
	HTTPStatusOK                          HTTPStatus = 200
	HTTPStatusCreated                     HTTPStatus = 201
	HTTPStatusAccepted                    HTTPStatus = 202
	HTTPStatusNonAuthoritativeInformation HTTPStatus = 203
	HTTPStatusNoContent                   HTTPStatus = 204
	HTTPStatusResetContent                HTTPStatus = 205
	HTTPStatusPartialContent              HTTPStatus = 206
	HTTPStatusMultiStatus                 HTTPStatus = 207
	HTTPStatusAlreadyReported             HTTPStatus = 208
	HTTPStatusIMUsed                      HTTPStatus = 226

	// 3xx Redirection
	HTTPStatusMultipleChoices   HTTPStatus = 300
	HTTPStatusMovedPermanently  HTTPStatus = 301
	HTTPStatusFound             HTTPStatus = 302
	HTTPStatusSeeOther          HTTPStatus = 303
	HTTPStatusNotModified       HTTPStatus = 304
	HTTPStatusUseProxy          HTTPStatus = 305
	HTTPStatusTemporaryRedirect HTTPStatus = 307

	// 4xx Client Error
	HTTPStatusBadRequest                   HTTPStatus = 400
	HTTPStatusUnauthorized                 HTTPStatus = 401
	HTTPStatusPaymentRequired              HTTPStatus = 402
	HTTPStatusForbidden                    HTTPStatus = 403
	HTTPStatusNotFound                     HTTPStatus = 404
	HTTPStatusMethodNotAllowed             HTTPStatus = 405
	HTTPStatusNotAcceptable                HTTPStatus = 406
	HTTPStatusProxyAuthenticationRequired  HTTPStatus = 407
	HTTPStatusRequestTimeout               HTTPStatus = 408
	HTTPStatusConflict                     HTTPStatus = 409
	HTTPStatusGone                         HTTPStatus = 410
	HTTPStatusLengthRequired               HTTPStatus = 411
	HTTPStatusPreconditionFailed           HTTPStatus = 412
	HTTPStatusRequestEntityTooLarge        HTTPStatus = 413
	HTTPStatusRequestURITooLong            HTTPStatus = 414
	HTTPStatusUnsupportedMediaType         HTTPStatus = 415
	HTTPStatusRequestedRangeNotSatisfiable HTTPStatus = 416
	HTTPStatusExpectationFailed            HTTPStatus = 417
	HTTPStatusUnprocessableEntity          HTTPStatus = 422
	HTTPStatusLocked                       HTTPStatus = 423
	HTTPStatusFailedDependency             HTTPStatus = 424
	HTTPStatusUpgradeRequired              HTTPStatus = 426

	// 5xx Server Error
	HTTPStatusInternalServerError     HTTPStatus = 500
	HTTPStatusNotImplemented          HTTPStatus = 501
	HTTPStatusBadGateway              HTTPStatus = 502
	HTTPStatusServiceUnavailable      HTTPStatus = 503
	HTTPStatusGatewayTimeout          HTTPStatus = 504
	HTTPStatusHTTPVersionNotSupported HTTPStatus = 505
	HTTPStatusVariantAlsoNegotiates   HTTPStatus = 506
	HTTPStatusInsufficientStorage     HTTPStatus = 507
	HTTPStatusBandwidthLimitExceeded  HTTPStatus = 509
	HTTPStatusNotExtended             HTTPStatus = 510
)

var httpStatusReasons = map[HTTPStatus]string{
	HTTPStatusNone:                         "None",
	HTTPStatusContinue:                     "Continue",
	HTTPStatusSwitchingProtocols:           "Switching Protocols",
	HTTPStatusProcessing:                   "Processing",
	HTTPStatusOK:                           "OK",
	HTTPStatusCreated:                      "Created",
	HTTPStatusAccepted:                     "Accepted",
	HTTPStatusNonAuthoritativeInformation:  "Non-Authoritative Information",
	HTTPStatusNoContent:                    "No Content",
	HTTPStatusResetContent:                 "Reset Content",
	HTTPStatusPartialContent:               "Partial Content",
	HTTPStatusMultiStatus:                  "Multi-Status",
	HTTPStatusAlreadyReported:              "Already Reported",
	HTTPStatusIMUsed:                       "IM Used",
	HTTPStatusMultipleChoices:              "Multiple Choices",
	HTTPStatusMovedPermanently:             "Moved Permanently",
	HTTPStatusFound:                        "Found",
	HTTPStatusSeeOther:                     "See Other",
	HTTPStatusNotModified:                  "Not Modified",
	HTTPStatusUseProxy:                     "Use Proxy",
	HTTPStatusTemporaryRedirect:            "Temporary Redirect",
	HTTPStatusBadRequest:                   "Bad Request",
	HTTPStatusUnauthorized:                 "Unauthorized",
	HTTPStatusPaymentRequired:              "Payment Required",
	HTTPStatusForbidden:                    "Forbidden",
	HTTPStatusNotFound:                     "Not Found",
	HTTPStatusMethodNotAllowed:             "Method Not Allowed",
	HTTPStatusNotAcceptable:                "Not Acceptable",
	HTTPStatusProxyAuthenticationRequired:  "Proxy Authentication Required",
	HTTPStatusRequestTimeout:               "Request Timeout",
	HTTPStatusConflict:                     "Conflict",
	HTTPStatusGone:                         "Gone",
	HTTPStatusLengthRequired:               "Length Required",
	HTTPStatusPreconditionFailed:           "Precondition Failed",
	HTTPStatusRequestEntityTooLarge:        "Request Entity Too Large",
	HTTPStatusRequestURITooLong:            "Request-URI Too Long",
	HTTPStatusUnsupportedMediaType:         "Unsupported Media Type",
	HTTPStatusRequestedRangeNotSatisfiable: "Requested Range Not Satisfiable",
	HTTPStatusExpectationFailed:            "Expectation Failed",
	HTTPStatusUnprocessableEntity:          "Unprocessable Entity",
	HTTPStatusLocked:                       "Locked",
	HTTPStatusFailedDependency:             "Failed Dependency",
	HTTPStatusUpgradeRequired:              "Upgrade Required",
	HTTPStatusInternalServerError:          "Internal Server Error",
	HTTPStatusNotImplemented:               "Not Implemented",
	HTTPStatusBadGateway:                   "Bad Gateway",
	HTTPStatusServiceUnavailable:           "Service Unavailable",
	HTTPStatusGatewayTimeout:               "Gateway Timeout",
	HTTPStatusHTTPVersionNotSupported:      "HTTP Version Not Supported",
	HTTPStatusVariantAlsoNegotiates:        "Variant Also Negotiates",
	HTTPStatusInsufficientStorage:          "Insufficient Storage",
	HTTPStatusBandwidthLimitExceeded:       "Bandwidth Limit Exceeded",
	HTTPStatusNotExtended:                  "Not Extended",
}

// String returns the standard reason phrase of the status.
func (s HTTPStatus) String() string {
	if reason, ok := httpStatusReasons[s]; ok {
		return reason
	}
	return fmt.Sprintf("HTTPStatus(%d)", int(s))
}

// HTTPMethod is one of the verbs accepted by the REST layer. The
// numeric values are part of the plugin ABI and are frozen.
type HTTPMethod int

const (
	HTTPMethodGet    HTTPMethod = 0
	HTTPMethodPost   HTTPMethod = 1
	HTTPMethodDelete HTTPMethod = 2
	HTTPMethodPut    HTTPMethod = 3
)

func (m HTTPMethod) String() string {
	switch m {
	case HTTPMethodGet:
		return "GET"
	case HTTPMethodPost:
		return "POST"
	case HTTPMethodDelete:
		return "DELETE"
	case HTTPMethodPut:
		return "PUT"
	default:
		return fmt.Sprintf("HTTPMethod(%d)", int(m))
	}
}

// ParseHTTPMethod parses an HTTP verb. The verbs are exact uppercase
// tokens, so "get" is rejected.
func ParseHTTPMethod(s string) (HTTPMethod, error) {
	switch s {
	case "GET":
		return HTTPMethodGet, nil
	case "POST":
		return HTTPMethodPost, nil
	case "DELETE":
		return HTTPMethodDelete, nil
	case "PUT":
		return HTTPMethodPut, nil
	default:
		return HTTPMethodGet, errors.NewParameterOutOfRange(
			fmt.Sprintf("unsupported HTTP method: %q", s))
	}
}

// HTTPCompression identifies the content encoding negotiated with an
// HTTP client.
type HTTPCompression int

const (
	HTTPCompressionNone HTTPCompression = iota
	HTTPCompressionDeflate
	HTTPCompressionGzip
)

func (c HTTPCompression) String() string {
	switch c {
	case HTTPCompressionNone:
		return "None"
	case HTTPCompressionDeflate:
		return "Deflate"
	case HTTPCompressionGzip:
		return "Gzip"
	default:
		return fmt.Sprintf("HTTPCompression(%d)", int(c))
	}
}

// ConvertErrorCodeToHTTPStatus maps an error code to the HTTP status
// reported by the REST layer. The mapping is total: any code outside
// the classified set, including plugin-defined codes, degrades to 500.
func ConvertErrorCodeToHTTPStatus(code errors.Code) HTTPStatus {
	switch code {
	case errors.CodeSuccess:
		return HTTPStatusOK

	case errors.CodeParameterOutOfRange,
		errors.CodeBadParameterType,
		errors.CodeBadRequest,
		errors.CodeUriSyntax,
		errors.CodeBadFileFormat,
		errors.CodeEmptyRequest:
		return HTTPStatusBadRequest

	case errors.CodeUnauthorized:
		return HTTPStatusUnauthorized

	case errors.CodeReadOnly:
		return HTTPStatusForbidden

	case errors.CodeInexistentItem,
		errors.CodeUnknownResource,
		errors.CodeInexistentFile,
		errors.CodeInexistentTag,
		errors.CodeUnknownDicomTag:
		return HTTPStatusNotFound

	case errors.CodeNotAcceptable:
		return HTTPStatusNotAcceptable

	case errors.CodeTimeout:
		return HTTPStatusRequestTimeout

	case errors.CodeNotEnoughMemory,
		errors.CodeFullStorage:
		return HTTPStatusInsufficientStorage

	default:
		return HTTPStatusInternalServerError
	}
}
