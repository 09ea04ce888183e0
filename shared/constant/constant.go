package constant

import (
	"time"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID               = "id"
	RequestParamKind             = "kind"
	RequestParamCheckIn          = "check_in"
	RequestParamCheckOut         = "check_out"
	RequestParamExcludeBookingID = "exclude_booking_id"
)

// Resource names exposed by the remote data service. They double as the
// record kinds the back office edits.
const (
	ResourceGuest   = "persona"
	ResourceRoom    = "habitacion"
	ResourceBooking = "reserva"
)

const (
	// EnvelopeField wraps every collection returned by the remote service.
	EnvelopeField = "respuesta"
)

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = time.RFC3339
	HoursPerDay     = 24
)

const (
	NoticeLoadFailed      = "failed to load data"
	NoticeOperationFailed = "failed to process the operation"
	NoticeDeleteFailed    = "failed to delete the item"
	NoticeOperationDone   = "operation completed successfully"
	NoticeDeleteDone      = "item deleted successfully"
	NoticeNotAvailable    = "N/A"
)

const (
	OtelServiceScopeName    = "service"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelRepositoryScopeName = "repository"

	OtelResourceAttributeKey = "remote.resource"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
