package response

import (
	"encoding/json"
	"net/http"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Notice is a failed action as reported to the front desk. Error is the text to
// show; Detail is the underlying cause.
type Notice struct {
	Error  *string `json:"error,omitempty"`
	Detail *string `json:"detail,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithNotice sends a failed action with the user-facing text: the remote service's own message when it sent one, fallback otherwise
func WithNotice(writer http.ResponseWriter, err error, fallback string) {
	withNotice(writer, failure.GetCode(err), failure.Notice(err, fallback), err.Error())
}

// WithLoadFailure sends a failed load or reload. The text is always the generic one.
func WithLoadFailure(writer http.ResponseWriter, err error) {
	withNotice(writer, failure.GetCode(err), constant.NoticeLoadFailed, err.Error())
}

func withNotice(writer http.ResponseWriter, code int, notice, detail string) {
	response(writer, code, Notice{Error: &notice, Detail: &detail})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
