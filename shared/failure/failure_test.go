package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestInternalError_Nil(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestRemote(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		message    string
		wantCode   int
		wantRemote bool
	}{
		{
			name:       "client error with message",
			code:       http.StatusUnprocessableEntity,
			message:    "habitacion ocupada",
			wantCode:   http.StatusUnprocessableEntity,
			wantRemote: true,
		},
		{
			name:       "server error without message",
			code:       http.StatusInternalServerError,
			message:    "",
			wantCode:   http.StatusInternalServerError,
			wantRemote: false,
		},
		{
			name:       "non error status is mapped to bad gateway",
			code:       http.StatusOK,
			message:    "odd",
			wantCode:   http.StatusBadGateway,
			wantRemote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := failure.Remote(tt.code, tt.message).(*failure.Failure)
			if !ok {
				t.Fatal("expected *failure.Failure")
			}

			if f.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, f.Code)
			}

			if f.Remote != tt.wantRemote {
				t.Errorf("expected remote %v, got %v", tt.wantRemote, f.Remote)
			}
		})
	}
}

func TestNotice(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "remote message wins",
			err:      failure.Remote(http.StatusBadRequest, "documento duplicado"),
			expected: "documento duplicado",
		},
		{
			name:     "wrapped remote message wins",
			err:      fmt.Errorf("failed to create guest: %w", failure.Remote(http.StatusBadRequest, "documento duplicado")),
			expected: "documento duplicado",
		},
		{
			name:     "local failure uses fallback",
			err:      failure.Unavailable("connection refused"),
			expected: "fallback",
		},
		{
			name:     "plain error uses fallback",
			err:      errors.New("boom"),
			expected: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.Notice(tt.err, "fallback"); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped conflict",
			input:    fmt.Errorf("submit: %w", failure.Conflict("busy")),
			expected: http.StatusConflict,
		},
		{
			name:     "not found",
			input:    failure.NotFound("room not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "unavailable",
			input:    failure.Unavailable("down"),
			expected: http.StatusBadGateway,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
