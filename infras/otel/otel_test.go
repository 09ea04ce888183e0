package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/otel"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hotel-test"

	o := otel.New(cfg)

	ctx, scope := o.NewScope(context.Background(), "service", "service.Test")
	defer scope.End()

	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{
			"text":  "value",
			"flag":  true,
			"count": 3,
			"list":  []string{"a", "b"},
			"other": 1.5,
		})
		scope.AddEvent("event")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("boom"))
	})
}
