// Package assembler turns an endpoint and its call parameters into an
// outbound request. It does no I/O.
package assembler

import (
	"encoding/json"
	"net/url"

	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/apicErrs"
	"github.com/rendau/apic/apicTypes"
	"github.com/rendau/apic/endpoint"
)

func Assemble(ep *endpoint.St, params apicTypes.Params) (*httpc.RequestSt, error) {
	req := &httpc.RequestSt{
		EndpointName: ep.Name(),
		Method:       ep.Method(),
		Url:          ep.Url(),
		Headers:      ep.Headers(),
	}

	if req.Headers.Get("Accept") == "" {
		req.Headers.Set("Accept", httpc.ContentTypeJson)
	}

	switch ep.Encoding() {
	case endpoint.EncodingJson:
		if params == nil {
			break
		}

		for k, v := range params {
			if !v.IsValid() {
				return nil, apicErrs.ErrWithDesc{Err: apicErrs.BadJson, Desc: "invalid value for key " + k}
			}
		}

		body, err := json.Marshal(params)
		if err != nil {
			return nil, apicErrs.ErrWithCause{Err: apicErrs.BadJson, Cause: err}
		}

		req.Body = body

		if req.Headers.Get("Content-Type") == "" {
			req.Headers.Set("Content-Type", httpc.ContentTypeJson)
		}
	default:
		if len(params) == 0 {
			break
		}

		u, err := withQuery(req.Url, params)
		if err != nil {
			return nil, err
		}

		req.Url = u
	}

	return req, nil
}

func withQuery(u *url.URL, params apicTypes.Params) (*url.URL, error) {
	query := u.Query()

	for k, v := range params {
		if k == "" || !v.IsValid() {
			return nil, apicErrs.ErrWithDesc{Err: apicErrs.BadUrl, Desc: "invalid query parameter '" + k + "'"}
		}

		query.Set(k, v.QueryString())
	}

	res := *u
	res.RawQuery = query.Encode()

	// the result must survive a round trip through its string form
	parsed, err := url.Parse(res.String())
	if err != nil {
		return nil, apicErrs.ErrWithCause{Err: apicErrs.BadUrl, Cause: err}
	}

	return parsed, nil
}
