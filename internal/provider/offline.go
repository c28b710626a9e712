package provider

import "context"

// unavailableClient fails every call with a fixed reason.
type unavailableClient struct {
	reason error
}

// Unavailable returns a Client whose calls always fail with the given
// reason. Used when no credential is configured, so the estimator's
// fallback policy still produces a renderable result instead of the
// process refusing to start.
func Unavailable(reason error) Client {
	return unavailableClient{reason: reason}
}

func (c unavailableClient) Estimate(ctx context.Context, req Request) (*Payload, error) {
	return nil, c.reason
}
