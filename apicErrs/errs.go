package apicErrs

import (
	"errors"
	"strconv"
)

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ErrWithDesc

type ErrWithDesc struct {
	Err  Err
	Desc string
}

func (e ErrWithDesc) Error() string {
	return e.Err.Error() + ", desc:" + e.Desc
}

func (e ErrWithDesc) Is(target error) bool {
	return target == e.Err
}

// ErrWithCause keeps the underlying library error next to its kind.
// errors.Is matches the kind, errors.Unwrap returns the cause.

type ErrWithCause struct {
	Err   Err
	Cause error
}

func (e ErrWithCause) Error() string {
	if e.Cause == nil {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Cause.Error()
}

func (e ErrWithCause) Is(target error) bool {
	return target == e.Err
}

func (e ErrWithCause) Unwrap() error {
	return e.Cause
}

// StatusErr

type StatusErr struct {
	StatusCode int
	Body       []byte
}

func (e *StatusErr) Error() string {
	return BadStatusCode.Error() + ": " + strconv.Itoa(e.StatusCode)
}

func (e *StatusErr) Is(target error) bool {
	switch target {
	case BadStatusCode, Transport:
		return true
	case NotAuthorized:
		return e.StatusCode == 401 || e.StatusCode == 403
	}
	return false
}

// Kind returns the first Err found in the chain of err.
func Kind(err error) (Err, bool) {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k, true
		}
	}
	return "", false
}

// errors

const (
	Config          = Err("config_error")
	UnknownEndpoint = Err("unknown_endpoint")
	BadUrl          = Err("bad_url")
	BadJson         = Err("bad_json")
	Transport       = Err("transport_error")
	BadStatusCode   = Err("bad_status_code")
	NotAuthorized   = Err("not_authorized")
	Decode          = Err("decode_error")
	FixtureNotFound = Err("fixture_not_found")
)

// most specific first
var kinds = []Err{
	Config,
	UnknownEndpoint,
	BadUrl,
	BadJson,
	NotAuthorized,
	BadStatusCode,
	FixtureNotFound,
	Transport,
	Decode,
}
