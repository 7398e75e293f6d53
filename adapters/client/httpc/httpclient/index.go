package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/adapters/logger"
	"github.com/rendau/apic/apicErrs"
)

type St struct {
	lg   logger.Lite
	opts httpc.OptionsSt
}

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	return &St{
		lg:   lg,
		opts: opts.WithDefaults(),
	}
}

func (c *St) GetOptions() httpc.OptionsSt {
	return c.opts
}

// WithOptions returns a copy of the transport with opts merged over the
// current options.
func (c *St) WithOptions(opts httpc.OptionsSt) *St {
	return &St{
		lg:   c.lg,
		opts: c.opts.GetMergedWith(opts).WithDefaults(),
	}
}

func (c *St) Send(ctx context.Context, req *httpc.RequestSt) ([]byte, error) {
	opts := c.opts
	uri := req.UrlString()
	prefix := opts.LogPrefix + req.EndpointName + ": "

	logError := opts.LogFlags&httpc.NoLogError <= 0

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(prefix+"request",
			"method", req.Method,
			"uri", uri,
			"body", string(req.Body),
		)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if req.Body != nil {
		reqBody = bytes.NewReader(req.Body)
	}

	hReq, err := http.NewRequestWithContext(ctx, req.Method, uri, reqBody)
	if err != nil {
		if logError {
			c.lg.Errorw(prefix+"Fail to create http-request", err)
		}
		return nil, apicErrs.ErrWithCause{Err: apicErrs.BadUrl, Cause: err}
	}

	for k, v := range req.Headers {
		hReq.Header[k] = append([]string(nil), v...)
	}

	// Do request
	rep, err := opts.Client.Do(hReq)
	if err != nil {
		if logError {
			c.lg.Errorw(
				prefix+"Fail to send http-request", err,
				"method", req.Method,
				"uri", uri,
				"req_body", string(req.Body),
			)
		}
		return nil, apicErrs.ErrWithCause{Err: apicErrs.Transport, Cause: err}
	}
	defer rep.Body.Close()

	// read response body
	repBody, err := io.ReadAll(io.LimitReader(rep.Body, opts.MaxBodySize+1))
	if err != nil {
		if logError {
			c.lg.Errorw(
				prefix+"Fail to read body", err,
				"method", req.Method,
				"uri", uri,
				"req_body", string(req.Body),
			)
		}
		return nil, apicErrs.ErrWithCause{Err: apicErrs.Transport, Cause: err}
	}

	if int64(len(repBody)) > opts.MaxBodySize {
		if logError {
			c.lg.Errorw(
				prefix+"Response body too large", nil,
				"max_body_size", opts.MaxBodySize,
				"method", req.Method,
				"uri", uri,
			)
		}
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.Transport, Desc: "response body too large"}
	}

	if rep.StatusCode < 200 || rep.StatusCode > 299 {
		statusErr := &apicErrs.StatusErr{StatusCode: rep.StatusCode, Body: repBody}

		logBadStatus := logError && opts.LogFlags&httpc.NoLogBadStatus <= 0
		if rep.StatusCode == http.StatusUnauthorized || rep.StatusCode == http.StatusForbidden {
			logBadStatus = logBadStatus && opts.LogFlags&httpc.NoLogNotAuthorized <= 0
		}

		if logBadStatus {
			c.lg.Errorw(
				prefix+"Bad status code", nil,
				"status_code", rep.StatusCode,
				"rep_body", string(repBody),
				"method", req.Method,
				"uri", uri,
				"req_body", string(req.Body),
			)
		}

		return nil, statusErr
	}

	if opts.LogFlags&httpc.LogResponse > 0 {
		c.lg.Infow(prefix+"response",
			"uri", uri,
			"status_code", rep.StatusCode,
			"body", string(repBody),
		)
	}

	return repBody, nil
}
