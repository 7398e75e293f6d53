package httpc

import (
	"context"
)

// Transport performs exactly one HTTP exchange per Send and returns the raw
// response body or an error.
type Transport interface {
	Send(ctx context.Context, req *RequestSt) ([]byte, error)
}

// TransportFunc adapts a plain function to Transport.
type TransportFunc func(ctx context.Context, req *RequestSt) ([]byte, error)

func (f TransportFunc) Send(ctx context.Context, req *RequestSt) ([]byte, error) {
	return f(ctx, req)
}
