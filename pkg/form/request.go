package form

import (
	"net/http"
	"net/url"
)

// NonceFieldName is the hidden field carrying the anti-forgery token.
const NonceFieldName = "nomad_form_nonce"

// nonceActionPrefix keys issued tokens to a specific form.
const nonceActionPrefix = "nomad_form_"

// Request is the read-only submission context a form reconciles against:
// the request method and the submitted key-value data. Multi-value controls
// repeat their key, as url.Values encodes naturally.
type Request struct {
	Method string
	Values url.Values
}

// FromHTTP captures the submission data of an HTTP request. Query and body
// parameters are merged the way net/http merges them; parse failures yield
// an empty value set, which downstream treats as "nothing submitted".
func FromHTTP(r *http.Request) Request {
	_ = r.ParseForm()
	return Request{Method: r.Method, Values: r.Form}
}

// get returns the scalar value for key and whether the key was submitted at
// all. An empty submitted value is distinct from an absent key.
func (r Request) get(key string) (string, bool) {
	values, ok := r.Values[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// getAll returns every submitted value for key.
func (r Request) getAll(key string) ([]string, bool) {
	values, ok := r.Values[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), values...), true
}

func (r Request) has(key string) bool {
	_, ok := r.Values[key]
	return ok
}
