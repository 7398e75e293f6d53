package mock

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/adapters/logger"
	"github.com/rendau/apic/apicErrs"
)

const (
	ErrPageNotFound = apicErrs.Err("page_not_found")
)

type St struct {
	lg logger.Lite

	requests  []*RequestSt
	responses map[string]ResponseSt
	err       error
	mu        sync.Mutex
}

type RequestSt struct {
	EndpointName string
	Method       string
	Path         string
	Url          string
	Raw          []byte
}

type ResponseSt struct {
	Obj any
	Raw []byte
	Err error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []*RequestSt{},
		responses: map[string]ResponseSt{},
	}
}

func Key(method, path string) string {
	return method + " " + path
}

func (c *St) SetResponses(responses map[string]ResponseSt) {
	c.mu.Lock()
	c.responses = map[string]ResponseSt{}
	c.mu.Unlock()

	for k, v := range responses {
		c.SetResponse(k, v)
	}
}

// SetResponse registers a canned response for key, see Key.
func (c *St) SetResponse(key string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(response.Raw) == 0 && response.Obj != nil {
		var err error

		response.Raw, err = json.Marshal(response.Obj)
		if err != nil {
			c.lg.Errorw("Fail to marshal json", err)
		}
	}

	c.responses[key] = response
}

// SetError makes every Send fail with err. A nil err turns it off.
func (c *St) SetError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = err
}

func (c *St) Send(ctx context.Context, req *httpc.RequestSt) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	request := &RequestSt{
		EndpointName: req.EndpointName,
		Method:       req.Method,
		Url:          req.UrlString(),
		Raw:          append([]byte(nil), req.Body...),
	}
	if req.Url != nil {
		request.Path = req.Url.Path
	}

	c.requests = append(c.requests, request)

	if c.err != nil {
		return nil, c.err
	}

	if err := ctx.Err(); err != nil {
		return nil, apicErrs.ErrWithCause{Err: apicErrs.Transport, Cause: err}
	}

	response, ok := c.responses[Key(request.Method, request.Path)]
	if !ok {
		c.lg.Infow("Httpc-mock, path not found", "method", request.Method, "path", request.Path)
		return nil, ErrPageNotFound
	}

	if response.Err != nil {
		return nil, response.Err
	}

	// callers own the returned slice
	return append([]byte(nil), response.Raw...), nil
}

func (c *St) SendCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.requests)
}

func (c *St) GetRequests() []*RequestSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*RequestSt, len(c.requests))

	copy(result, c.requests)

	return result
}

func (c *St) GetRequest(key string, obj any) (*RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if Key(req.Method, req.Path) != key {
			continue
		}

		if len(req.Raw) > 0 && obj != nil {
			err := json.Unmarshal(req.Raw, obj)
			if err != nil {
				c.lg.Errorw("Fail to unmarshal json", err)
				return nil, false
			}
		}

		return req, true
	}

	return nil, false
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []*RequestSt{}
	c.responses = map[string]ResponseSt{}
	c.err = nil
}
