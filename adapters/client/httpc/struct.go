package httpc

import (
	"net/http"
	"net/url"
	"time"
)

// RequestSt is an outbound request. It is built fresh for every call.
type RequestSt struct {
	EndpointName string

	Method  string
	Url     *url.URL
	Headers http.Header
	Body    []byte
}

func (r *RequestSt) UrlString() string {
	if r.Url == nil {
		return ""
	}
	return r.Url.String()
}

type OptionsSt struct {
	Client      *http.Client
	Timeout     time.Duration
	MaxBodySize int64
	LogFlags    int
	LogPrefix   string
}

func (o OptionsSt) GetMergedWith(v OptionsSt) OptionsSt {
	res := o

	if v.Client != nil {
		res.Client = v.Client
	}
	if v.Timeout != 0 {
		if v.Timeout < 0 {
			res.Timeout = 0
		} else {
			res.Timeout = v.Timeout
		}
	}
	if v.MaxBodySize != 0 {
		if v.MaxBodySize < 0 {
			res.MaxBodySize = DefaultMaxBodySize
		} else {
			res.MaxBodySize = v.MaxBodySize
		}
	}
	if v.LogFlags != 0 {
		if v.LogFlags < 0 {
			res.LogFlags = 0
		} else {
			res.LogFlags = v.LogFlags
		}
	}
	if v.LogPrefix != "" {
		if v.LogPrefix == "-" {
			res.LogPrefix = ""
		} else {
			res.LogPrefix = v.LogPrefix
		}
	}

	return res
}

func (o *OptionsSt) mergeWithDefaults() {
	if o.Client == nil {
		o.Client = http.DefaultClient
	}
	if o.MaxBodySize <= 0 {
		o.MaxBodySize = DefaultMaxBodySize
	}
}

// WithDefaults returns a copy of o with empty fields set to defaults.
func (o OptionsSt) WithDefaults() OptionsSt {
	o.mergeWithDefaults()
	return o
}
