package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper wraps the PostHog client so callers can enqueue
// events without checking initialization state everywhere.
type PosthogClientWrapper struct {
	client posthog.Client
	logger *slog.Logger
}

// NewPosthogClient initializes a PostHog client if an API key is provided.
// With an empty key the wrapper is returned uninitialized and all calls
// become no-ops.
func NewPosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	wrapper := &PosthogClientWrapper{logger: logger}
	if apiKey == "" {
		logger.Info("PostHog API key not set, analytics disabled")
		return wrapper
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{
		Endpoint: "https://us.i.posthog.com",
	})
	if err != nil {
		logger.Error("Failed to initialize PostHog client", "error", err)
		return wrapper
	}

	wrapper.client = client
	logger.Info("PostHog client initialized")
	return wrapper
}

// IsInitialized reports whether events will actually be sent.
func (p *PosthogClientWrapper) IsInitialized() bool {
	return p != nil && p.client != nil
}

// Enqueue sends a capture event for the given user. Errors are logged and
// otherwise ignored, analytics never block the request path.
func (p *PosthogClientWrapper) Enqueue(distinctID, event string, properties map[string]any) {
	if !p.IsInitialized() {
		return
	}

	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}

	if err := p.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		p.logger.Error("Failed to enqueue PostHog event", "event", event, "error", err)
	}
}

// Close flushes and shuts down the underlying client.
func (p *PosthogClientWrapper) Close() {
	if !p.IsInitialized() {
		return
	}
	if err := p.client.Close(); err != nil {
		p.logger.Error("Failed to close PostHog client", "error", err)
	}
}
