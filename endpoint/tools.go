package endpoint

import (
	"net/url"

	"github.com/rendau/apic/apicErrs"
)

// BuildUrl joins base and suffix and checks that the result is an absolute
// http(s) URL whose string form is exactly base+suffix.
func BuildUrl(base, suffix string) (*url.URL, error) {
	raw := base + suffix

	u, err := url.Parse(raw)
	if err != nil {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: err.Error()}
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: "not an absolute http(s) url: " + raw}
	}

	if u.String() != raw {
		return nil, apicErrs.ErrWithDesc{Err: apicErrs.Config, Desc: "url is not canonical: " + raw}
	}

	return u, nil
}

func cloneUserinfo(u *url.Userinfo) *url.Userinfo {
	if p, ok := u.Password(); ok {
		return url.UserPassword(u.Username(), p)
	}
	return url.User(u.Username())
}
