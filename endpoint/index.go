package endpoint

import (
	"sync"

	"github.com/rendau/apic/apicErrs"
)

type Registry struct {
	baseUrl string
	items   [idCount]*St
	byName  map[string]*St
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry over DefaultBaseUrl.
// It panics on the first call if the built-in table is broken.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = MustNewRegistry(DefaultBaseUrl, defaultDefs)
	})

	return defaultRegistry
}

// NewRegistry builds every endpoint of defs. Every Id must be defined.
func NewRegistry(baseUrl string, defs map[Id]DefSt) (*Registry, error) {
	r := &Registry{
		baseUrl: baseUrl,
		byName:  make(map[string]*St, idCount),
	}

	for id := range defs {
		if id < 0 || id >= idCount {
			return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: "unknown endpoint id " + id.String()}
		}
	}

	for _, id := range Ids() {
		if _, ok := idNames[id]; !ok {
			return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: "endpoint has no name: " + id.String()}
		}

		def, ok := defs[id]
		if !ok {
			return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: "endpoint is not defined: " + id.String()}
		}

		ep, err := newEndpoint(id, baseUrl, def)
		if err != nil {
			return nil, err
		}

		r.items[id] = ep
		r.byName[ep.Name()] = ep
	}

	return r, nil
}

func MustNewRegistry(baseUrl string, defs map[Id]DefSt) *Registry {
	r, err := NewRegistry(baseUrl, defs)
	if err != nil {
		panic(err)
	}
	return r
}

func newEndpoint(id Id, baseUrl string, def DefSt) (*St, error) {
	if !allowedMethods[def.Method] {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: id.String() + ": bad method '" + def.Method + "'"}
	}

	if def.Encoding != EncodingQuery && def.Encoding != EncodingJson {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: id.String() + ": bad encoding"}
	}

	u, err := BuildUrl(baseUrl, def.Suffix)
	if err != nil {
		return nil, err
	}

	ep := &St{
		id:       id,
		url:      u,
		method:   def.Method,
		encoding: def.Encoding,
	}

	if def.Headers != nil {
		ep.headers = def.Headers.Clone()
	}

	return ep, nil
}

func (r *Registry) BaseUrl() string {
	return r.baseUrl
}

func (r *Registry) Get(id Id) (*St, error) {
	if id < 0 || id >= idCount {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.UnknownEndpoint, Desc: id.String()}
	}

	return r.items[id], nil
}

func (r *Registry) ByName(name string) (*St, error) {
	ep, ok := r.byName[name]
	if !ok {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.UnknownEndpoint, Desc: name}
	}

	return ep, nil
}

func (r *Registry) List() []*St {
	res := make([]*St, 0, idCount)
	for _, ep := range r.items {
		res = append(res, ep)
	}
	return res
}
