package httpclients

import (
	"context"
	"time"

	"resty.dev/v3"

	"catalog-api/internal/infrastructure/logger"
)

type RequestID struct{}
type HTTPClientStartsAt struct{}

// NewClient builds a resty client with request latency logging. Every
// outbound scrape and API pull goes through one of these so the logs carry a
// uniform shape per client name.
func NewClient(clientName string, timeout time.Duration) *resty.Client {
	client := resty.New().SetTimeout(timeout)
	client.AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
		ctx := context.WithValue(r.Context(), HTTPClientStartsAt{}, time.Now())
		r.SetContext(ctx)
		return nil
	})
	client.AddResponseMiddleware(func(c *resty.Client, r *resty.Response) error {
		log := logger.GetLogger()
		startTime, _ := r.Request.Context().Value(HTTPClientStartsAt{}).(time.Time)
		latency := time.Since(startTime)

		requestIDStr := ""
		if reqID, ok := r.Request.Context().Value(RequestID{}).(string); ok {
			requestIDStr = reqID
		}

		log.Debug().
			Str("request_id", requestIDStr).
			Str("client", clientName).
			Int("status", r.StatusCode()).
			Str("method", r.Request.RawRequest.Method).
			Str("path", r.Request.RawRequest.URL.Path).
			Str("query", r.Request.RawRequest.URL.RawQuery).
			Dur("latency", latency).
			Msg("HTTP client request")
		return nil
	})
	return client
}
