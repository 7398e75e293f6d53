package endpoint

import (
	"net/http"
	"net/url"
)

// DefSt is the static definition of one endpoint.
type DefSt struct {
	Suffix   string
	Method   string
	Encoding Encoding
	Headers  http.Header
}

// St is a registered endpoint. It is immutable, getters return copies.
type St struct {
	id       Id
	url      *url.URL
	method   string
	encoding Encoding
	headers  http.Header
}

func (e *St) Id() Id {
	return e.id
}

func (e *St) Name() string {
	return e.id.String()
}

func (e *St) Url() *url.URL {
	u := *e.url
	if e.url.User != nil {
		u.User = cloneUserinfo(e.url.User)
	}
	return &u
}

func (e *St) Method() string {
	return e.method
}

func (e *St) Encoding() Encoding {
	return e.encoding
}

func (e *St) Headers() http.Header {
	if e.headers == nil {
		return http.Header{}
	}
	return e.headers.Clone()
}
