package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vasuli-app/vasuli/pkg/logger"
)

// LogRoundTripper propagates the request id to the backend and logs every
// outgoing exchange.
type LogRoundTripper struct {
	Transport http.RoundTripper
}

func NewLogRoundTripper(transport http.RoundTripper) *LogRoundTripper {
	return &LogRoundTripper{Transport: transport}
}

func (l *LogRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s %s", r.Method, r.URL.Redacted(), resp.Status))

	return resp, nil
}
