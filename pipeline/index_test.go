package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rendau/apic/adapters/client/httpc"
	"github.com/rendau/apic/adapters/client/httpc/httpclient"
	"github.com/rendau/apic/adapters/client/httpc/mock"
	"github.com/rendau/apic/adapters/logger/zap"
	"github.com/rendau/apic/apicErrs"
	"github.com/rendau/apic/apicTypes"
	"github.com/rendau/apic/decoder"
	"github.com/rendau/apic/endpoint"
	"github.com/rendau/apic/executor"
)

type userSt struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func newMock(t *testing.T, key string, raw string) *mock.St {
	t.Helper()

	m := mock.New(zap.NewNop())
	m.SetResponse(key, mock.ResponseSt{Raw: []byte(raw)})

	return m
}

// countingDecoder wraps decoder.Decode and counts invocations.
func countingDecoder[T any](calls *int32) decoder.Func[T] {
	return func(raw []byte) (T, error) {
		atomic.AddInt32(calls, 1)
		return decoder.Decode[T](raw)
	}
}

func TestDoSuccess(t *testing.T) {
	m := newMock(t, mock.Key(http.MethodGet, "/users"), `{"id":1,"name":"Alice"}`)
	p := New(m, nil)

	got, err := Do[userSt](context.Background(), p, endpoint.GetUsers, nil)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(userSt{Id: 1, Name: "Alice"}, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestDoTransportErrorSkipsDecoder(t *testing.T) {
	transportErr := errors.New("network is unreachable")

	p := New(httpc.TransportFunc(func(ctx context.Context, req *httpc.RequestSt) ([]byte, error) {
		return nil, transportErr
	}), nil)

	var calls int32

	got, err := DoWith[*userSt](context.Background(), p, endpoint.GetUsers, nil, countingDecoder[*userSt](&calls))
	if err != transportErr {
		t.Fatal("expected the transport error unchanged", err)
	}
	if got != nil {
		t.Fatal("expected nil result")
	}
	if calls != 0 {
		t.Fatal("decoder must not be called", calls)
	}
}

func TestDoDecodeError(t *testing.T) {
	m := newMock(t, mock.Key(http.MethodGet, "/users"), `{"id":"not-a-number"}`)
	p := New(m, nil)

	var calls int32

	got, err := DoWith[userSt](context.Background(), p, endpoint.GetUsers, nil, countingDecoder[userSt](&calls))
	if !errors.Is(err, apicErrs.Decode) {
		t.Fatal("unexpected error", err)
	}
	if got != (userSt{}) {
		t.Fatal("expected zero value", got)
	}
	if calls != 1 {
		t.Fatal("decoder must be called once", calls)
	}
}

func TestDoAssembleErrorSkipsTransport(t *testing.T) {
	m := mock.New(zap.NewNop())
	p := New(m, nil)

	_, err := Do[userSt](context.Background(), p, endpoint.GetPosts, apicTypes.Params{"": apicTypes.Int(1)})
	if !errors.Is(err, apicErrs.BadUrl) {
		t.Fatal("unexpected error", err)
	}
	if m.SendCount() != 0 {
		t.Fatal("transport must not be called", m.SendCount())
	}

	_, err = Do[userSt](context.Background(), p, endpoint.Id(-1), nil)
	if !errors.Is(err, apicErrs.UnknownEndpoint) {
		t.Fatal("unexpected error", err)
	}
	if m.SendCount() != 0 {
		t.Fatal("transport must not be called", m.SendCount())
	}
}

func TestDoSendsAssembledRequest(t *testing.T) {
	m := newMock(t, mock.Key(http.MethodPost, "/posts"), `{"id":101}`)
	p := New(m, nil)

	type postSt struct {
		Id     int    `json:"id"`
		Title  string `json:"title"`
		UserId int    `json:"userId"`
	}

	got, err := Do[postSt](context.Background(), p, endpoint.CreatePost, apicTypes.Params{
		"title":  apicTypes.String("t"),
		"userId": apicTypes.Int(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Id != 101 {
		t.Fatal("unexpected result", got)
	}

	sent := postSt{}
	req, ok := m.GetRequest(mock.Key(http.MethodPost, "/posts"), &sent)
	if !ok {
		t.Fatal("request not recorded")
	}
	if req.EndpointName != "create_post" {
		t.Fatal("unexpected endpoint name", req.EndpointName)
	}
	if diff := cmp.Diff(postSt{Title: "t", UserId: 1}, sent); diff != "" {
		t.Fatal(diff)
	}
}

func TestDoIsolation(t *testing.T) {
	m := newMock(t, mock.Key(http.MethodGet, "/posts"), `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`)
	p := New(m, nil)

	params := apicTypes.Params{"userId": apicTypes.Int(1)}

	r1, err := Do[[]userSt](context.Background(), p, endpoint.GetPosts, params)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Do[[]userSt](context.Background(), p, endpoint.GetPosts, params)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Fatal(diff)
	}

	r1[0].Name = "changed"
	if r2[0].Name != "a" {
		t.Fatal("results share state")
	}

	reqs := m.GetRequests()
	if len(reqs) != 2 || reqs[0].Url != reqs[1].Url || reqs[0] == reqs[1] {
		t.Fatal("unexpected requests", reqs)
	}
	if len(params) != 1 {
		t.Fatal("params must not be modified")
	}
}

func TestDoConcurrent(t *testing.T) {
	m := newMock(t, mock.Key(http.MethodGet, "/users"), `{"id":1,"name":"Alice"}`)
	p := New(m, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 20)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Do[userSt](context.Background(), p, endpoint.GetUsers, nil)
			if err == nil && got.Name != "Alice" {
				err = errors.New("unexpected result")
			}
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

type recordingExecutor struct {
	calls int32
	inner executor.Executor
}

func (e *recordingExecutor) Execute(fn func()) bool {
	atomic.AddInt32(&e.calls, 1)
	return e.inner.Execute(fn)
}

func TestAsync(t *testing.T) {
	m := newMock(t, mock.Key(http.MethodGet, "/users"), `{"id":1,"name":"Alice"}`)
	p := New(m, nil)

	q := executor.NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	exec := &recordingExecutor{inner: q}

	ch := Async[userSt](context.Background(), p, endpoint.GetUsers, nil, exec)

	res, ok := <-ch
	if !ok {
		t.Fatal("expected a result")
	}
	if res.Err != nil || res.Value.Name != "Alice" {
		t.Fatal("unexpected result", res)
	}

	if _, ok = <-ch; ok {
		t.Fatal("expected exactly one result")
	}

	if atomic.LoadInt32(&exec.calls) != 1 {
		t.Fatal("completion must run on the executor", exec.calls)
	}
}

func TestAsyncStoppedQueue(t *testing.T) {
	m := newMock(t, mock.Key(http.MethodGet, "/users"), `{"id":1,"name":"Alice"}`)
	p := New(m, nil)

	closedQ := executor.NewQueue(1)
	closedQ.Close()

	cancelledQ := executor.NewQueue(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cancelledQ.Run(ctx)

	for ttI, q := range []*executor.Queue{closedQ, cancelledQ} {
		t.Run(strconv.Itoa(ttI+1), func(t *testing.T) {
			ch := Async[userSt](context.Background(), p, endpoint.GetUsers, nil, q)

			select {
			case res, ok := <-ch:
				if !ok {
					t.Fatal("expected a result")
				}
				if res.Err != nil || res.Value.Name != "Alice" {
					t.Fatal("unexpected result", res)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("no result from a stopped queue")
			}

			if _, ok := <-ch; ok {
				t.Fatal("expected exactly one result")
			}
		})
	}
}

func TestGoError(t *testing.T) {
	m := mock.New(zap.NewNop())
	p := New(m, nil)

	done := make(chan error, 2)

	Go(context.Background(), p, endpoint.GetUsers, nil, nil, func(v *userSt, err error) {
		if v != nil {
			t.Error("expected nil value")
		}
		done <- err
	})

	if err := <-done; !errors.Is(err, mock.ErrPageNotFound) {
		t.Fatal("unexpected error", err)
	}
}

func TestDoOverHttp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users":
			if r.URL.Query().Get("id") != "1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`[{"id":1,"name":"Alice"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"id":1,"name":"parseable"}`))
		}
	}))
	defer server.Close()

	registry, err := endpoint.NewRegistry(server.URL, map[endpoint.Id]endpoint.DefSt{
		endpoint.GetPosts:    {Suffix: "/missing", Method: http.MethodGet, Encoding: endpoint.EncodingQuery},
		endpoint.GetPost:     {Suffix: "/missing", Method: http.MethodGet, Encoding: endpoint.EncodingQuery},
		endpoint.GetComments: {Suffix: "/missing", Method: http.MethodGet, Encoding: endpoint.EncodingQuery},
		endpoint.CreatePost:  {Suffix: "/missing", Method: http.MethodPost, Encoding: endpoint.EncodingJson},
		endpoint.UpdatePost:  {Suffix: "/missing", Method: http.MethodPut, Encoding: endpoint.EncodingJson},
		endpoint.DeletePost:  {Suffix: "/missing", Method: http.MethodDelete, Encoding: endpoint.EncodingQuery},
		endpoint.GetUsers:    {Suffix: "/users", Method: http.MethodGet, Encoding: endpoint.EncodingQuery},
	})
	if err != nil {
		t.Fatal(err)
	}

	p := New(httpclient.New(zap.NewNop(), httpc.OptionsSt{LogFlags: httpc.NoLogError}), registry)

	got, err := Do[[]userSt](context.Background(), p, endpoint.GetUsers, apicTypes.Params{"id": apicTypes.Int(1)})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]userSt{{Id: 1, Name: "Alice"}}, got); diff != "" {
		t.Fatal(diff)
	}

	// a non-2xx status is an error even when the body would decode
	gotPost, err := Do[*userSt](context.Background(), p, endpoint.GetPost, nil)
	if !errors.Is(err, apicErrs.BadStatusCode) || gotPost != nil {
		t.Fatal("unexpected result", gotPost, err)
	}
}
