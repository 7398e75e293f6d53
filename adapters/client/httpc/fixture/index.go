package fixture

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/rendau/apic/adapters/cache"
	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/adapters/logger"
	"github.com/rendau/apic/apicErrs"
)

type Mode int

const (
	// ModeReplay serves from the cache only.
	ModeReplay Mode = iota + 1
	// ModeRecord always forwards and stores successful responses.
	ModeRecord
	// ModeAuto replays on hit and records on miss.
	ModeAuto
)

func ParseMode(v string) (Mode, bool) {
	switch v {
	case "replay":
		return ModeReplay, true
	case "record":
		return ModeRecord, true
	case "auto":
		return ModeAuto, true
	}
	return 0, false
}

type OptionsSt struct {
	Mode   Mode
	Prefix string
	Ttl    time.Duration
}

type St struct {
	lg    logger.Lite
	cache cache.Cache
	next  httpc.Transport
	opts  OptionsSt
}

// New wraps next with a record/replay layer backed by c. next may be nil
// only in ModeReplay.
func New(lg logger.Lite, c cache.Cache, next httpc.Transport, opts OptionsSt) (*St, error) {
	if opts.Mode == 0 {
		opts.Mode = ModeAuto
	}
	if opts.Prefix == "" {
		opts.Prefix = "fixture:"
	}

	if next == nil && opts.Mode != ModeReplay {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: "fixture: upstream transport is required outside replay mode"}
	}

	return &St{
		lg:    lg,
		cache: c,
		next:  next,
		opts:  opts,
	}, nil
}

func Key(req *httpc.RequestSt) string {
	sum := sha256.Sum256(req.Body)
	return req.Method + " " + req.UrlString() + " " + hex.EncodeToString(sum[:8])
}

func (s *St) Send(ctx context.Context, req *httpc.RequestSt) ([]byte, error) {
	key := s.opts.Prefix + Key(req)

	if s.opts.Mode != ModeRecord {
		data, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			return nil, apicErrs.ErrWithCause{Err: apicErrs.Transport, Cause: err}
		}
		if ok {
			return data, nil
		}
		if s.opts.Mode == ModeReplay {
			s.lg.Warnw("Fixture not found", "key", key)
			return nil, apicErrs.ErrWithDesc{Err: apicErrs.FixtureNotFound, Desc: key}
		}
	}

	data, err := s.next.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Set(ctx, key, data, s.opts.Ttl); err != nil {
		s.lg.Errorw("Fail to store fixture", err, "key", key)
	}

	return data, nil
}

// Purge deletes every stored fixture and returns how many were removed.
func (s *St) Purge(ctx context.Context) (int, error) {
	keys := s.cache.Keys(ctx, s.opts.Prefix+"*")

	for i, k := range keys {
		if err := s.cache.Del(ctx, k); err != nil {
			return i, apicErrs.ErrWithCause{Err: apicErrs.Transport, Cause: err}
		}
	}

	return len(keys), nil
}
