package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// AdapterError carries the status metadata of a failed generation call so
// callers can tell quota pressure and provider outages apart from hard
// rejections.
type AdapterError struct {
	Status    int
	Temporary bool
	Err       error
}

func (e *AdapterError) Error() string {
	if e == nil {
		return "adapter error"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("adapter error (status=%d)", e.Status)
}

func (e *AdapterError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// retryableStatus covers rate limiting and provider-side failures. The
// free-tier models behind OpenRouter throttle aggressively, so 429 is the
// common case here.
func retryableStatus(status int) bool {
	return status == 429 || (status >= 500 && status <= 599)
}

// IsTransient reports whether a generation failure was a passing condition
// (timeout, rate limit, provider outage) rather than a hard rejection such
// as a bad request or an invalid key. The fallback always runs either way;
// this classifies the failure for the logs.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var adapterErr *AdapterError
	if errors.As(err, &adapterErr) {
		return adapterErr.Temporary || retryableStatus(adapterErr.Status)
	}
	return false
}
