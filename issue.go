package sesscookie

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// IssuedEvent is the span event recorded by WriteContext.
const IssuedEvent = "session.cookie.issued"

// Write derives the cookie for value and adds it to the response headers.
func (p Policy) Write(w http.ResponseWriter, value string) *http.Cookie {
	cookie := p.Cookie(value)
	http.SetCookie(w, cookie)
	return cookie
}

// WriteContext is Write plus an IssuedEvent on the span carried by ctx.
// The cookie value is not recorded.
func (p Policy) WriteContext(ctx context.Context, w http.ResponseWriter, value string) *http.Cookie {
	cookie := p.Write(w, value)

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return cookie
	}

	attrs := []attribute.KeyValue{
		attribute.String("cookie.name", cookie.Name),
		attribute.Bool("cookie.secure", cookie.Secure),
		attribute.Bool("cookie.http_only", cookie.HttpOnly),
	}
	if cookie.Path != "" {
		attrs = append(attrs, attribute.String("cookie.path", cookie.Path))
	}
	if cookie.Domain != "" {
		attrs = append(attrs, attribute.String("cookie.domain", cookie.Domain))
	}
	if !cookie.Expires.IsZero() {
		attrs = append(attrs, attribute.Int64("cookie.expires", cookie.Expires.Unix()))
	}
	span.AddEvent(IssuedEvent, trace.WithAttributes(attrs...))
	return cookie
}

// Clear adds a removal cookie for p to the response headers.
func (p Policy) Clear(w http.ResponseWriter) {
	http.SetCookie(w, p.Expired())
}
