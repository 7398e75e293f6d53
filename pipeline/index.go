// Package pipeline chains endpoint lookup, request assembly, a single
// transport call and response decoding.
//
// Every call builds its own request and receives its own result; St holds
// only configuration and is safe for concurrent use.
package pipeline

import (
	"context"

	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/apicTypes"
	"github.com/rendau/apic/assembler"
	"github.com/rendau/apic/decoder"
	"github.com/rendau/apic/endpoint"
	"github.com/rendau/apic/executor"
)

type St struct {
	transport httpc.Transport
	registry  *endpoint.Registry
}

// New panics if transport is nil. A nil registry means endpoint.Default().
func New(transport httpc.Transport, registry *endpoint.Registry) *St {
	if transport == nil {
		panic("pipeline: nil transport")
	}

	if registry == nil {
		registry = endpoint.Default()
	}

	return &St{
		transport: transport,
		registry:  registry,
	}
}

func (p *St) Registry() *endpoint.Registry {
	return p.registry
}

type Result[T any] struct {
	Value T
	Err   error
}

// Do performs the call described by id and decodes the response into T.
func Do[T any](ctx context.Context, p *St, id endpoint.Id, params apicTypes.Params) (T, error) {
	return DoWith[T](ctx, p, id, params, decoder.Decode[T])
}

// DoWith is like Do with an explicit decoder.
func DoWith[T any](ctx context.Context, p *St, id endpoint.Id, params apicTypes.Params, dec decoder.Func[T]) (T, error) {
	var zero T

	raw, err := p.send(ctx, id, params)
	if err != nil {
		return zero, err
	}

	res, err := dec(raw)
	if err != nil {
		return zero, err
	}

	return res, nil
}

// Raw performs the call and returns the undecoded response body.
func (p *St) Raw(ctx context.Context, id endpoint.Id, params apicTypes.Params) ([]byte, error) {
	return p.send(ctx, id, params)
}

func (p *St) send(ctx context.Context, id endpoint.Id, params apicTypes.Params) ([]byte, error) {
	ep, err := p.registry.Get(id)
	if err != nil {
		return nil, err
	}

	req, err := assembler.Assemble(ep, params)
	if err != nil {
		return nil, err
	}

	return p.transport.Send(ctx, req)
}

// Async runs Do on a new goroutine. The returned channel receives exactly
// one Result, sent from within exec unless exec rejects it.
func Async[T any](ctx context.Context, p *St, id endpoint.Id, params apicTypes.Params, exec executor.Executor) <-chan Result[T] {
	ch := make(chan Result[T], 1)

	Go(ctx, p, id, params, exec, func(v T, err error) {
		ch <- Result[T]{Value: v, Err: err}
		close(ch)
	})

	return ch
}

// Go runs Do on a new goroutine and calls cb exactly once, on exec.
// When exec rejects the completion (a stopped queue), cb runs on the
// finishing goroutine instead.
func Go[T any](ctx context.Context, p *St, id endpoint.Id, params apicTypes.Params, exec executor.Executor, cb func(T, error)) {
	if exec == nil {
		exec = executor.Inline{}
	}

	go func() {
		v, err := Do[T](ctx, p, id, params)

		if !exec.Execute(func() { cb(v, err) }) {
			cb(v, err)
		}
	}()
}
