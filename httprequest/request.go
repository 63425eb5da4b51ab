/*
 * Copyright 2024 Olezha
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * 	http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

// Package httprequest parses the query string of a request uri into a
// read-only parameter store and exposes typed accessors over it, so request
// handlers get parameter values without re-implementing percent-decoding or
// tokenization.
package httprequest

import (
	"github.com/aacfactory/errors"
	"net/url"
	"strconv"
)

type Options struct {
	disableDecoding bool
}

type Option func(*Options)

// WithoutDecoding keeps parameter names and values exactly as they appear in
// the raw query string, skipping percent-decoding for this parse pass.
func WithoutDecoding() Option {
	return func(o *Options) {
		o.disableDecoding = true
	}
}

// Request carries the request information handed to a handler. The query
// string is parsed once at construction, all accessors are read-only
// afterwards and safe for concurrent use.
type Request struct {
	path     string
	rawQuery string
	params   Params
}

// New parses the given request uri and its query string.
func New(uri string, opts ...Option) (r *Request, err error) {
	u, parseErr := url.Parse(uri)
	if parseErr != nil {
		err = errors.Warning("httprequest: parse uri failed").WithCause(parseErr).WithMeta("uri", uri)
		return
	}
	r, err = newRequest(u.Path, u.RawQuery, opts)
	return
}

// NewWithQuery builds the request from a path and an url-encoded query
// string, e.g. ("/test/test.html", "a=some+text&b=abc%40def.de").
func NewWithQuery(path string, encodedQuery string, opts ...Option) (r *Request, err error) {
	uri := path
	if encodedQuery != "" {
		uri = path + "?" + encodedQuery
	}
	r, err = New(uri, opts...)
	return
}

func newRequest(path string, rawQuery string, opts []Option) (r *Request, err error) {
	opt := Options{}
	for _, o := range opts {
		o(&opt)
	}
	params, parseErr := parseQuery(rawQuery, !opt.disableDecoding)
	if parseErr != nil {
		err = parseErr
		return
	}
	r = &Request{
		path:     path,
		rawQuery: rawQuery,
		params:   params,
	}
	return
}

func (r *Request) Path() string {
	return r.path
}

func (r *Request) RawQuery() string {
	return r.rawQuery
}

// Params returns the parameter store.
func (r *Request) Params() *Params {
	return &r.params
}

// HasParameters reports whether the query string carried any parameter.
func (r *Request) HasParameters() bool {
	return r.params.Len() > 0
}

// IsParameterSet reports whether the named parameter appeared in the query
// string, regardless of its value being empty.
func (r *Request) IsParameterSet(name string) bool {
	return r.params.IsSet(name)
}

// Param returns the first value of the named parameter, or the empty string
// when the parameter was not set. It never fails.
func (r *Request) Param(name string) (value string) {
	value = r.ParamDefault(name, "")
	return
}

// ParamDefault returns the first value of the named parameter, or def when
// the parameter was not set. A parameter set with an empty value yields the
// empty string, not def.
func (r *Request) ParamDefault(name string, def string) (value string) {
	v, has := r.params.Get(name)
	if !has {
		value = def
		return
	}
	value = v
	return
}

// IntParam returns the first value of the named parameter as an int, or 0
// when the parameter was not set or its value does not parse.
func (r *Request) IntParam(name string) int {
	return r.IntParamDefault(name, 0)
}

// IntParamDefault returns the first value of the named parameter as an int,
// or def when the parameter was not set or its value does not parse.
func (r *Request) IntParamDefault(name string, def int) (value int) {
	v, has := r.params.Get(name)
	if !has {
		value = def
		return
	}
	n, parseErr := strconv.Atoi(v)
	if parseErr != nil {
		value = def
		return
	}
	value = n
	return
}

func (r *Request) Int64Param(name string) int64 {
	return r.Int64ParamDefault(name, 0)
}

func (r *Request) Int64ParamDefault(name string, def int64) (value int64) {
	v, has := r.params.Get(name)
	if !has {
		value = def
		return
	}
	n, parseErr := strconv.ParseInt(v, 10, 64)
	if parseErr != nil {
		value = def
		return
	}
	value = n
	return
}

func (r *Request) BoolParam(name string) bool {
	return r.BoolParamDefault(name, false)
}

func (r *Request) BoolParamDefault(name string, def bool) (value bool) {
	v, has := r.params.Get(name)
	if !has {
		value = def
		return
	}
	b, parseErr := strconv.ParseBool(v)
	if parseErr != nil {
		value = def
		return
	}
	value = b
	return
}

// MultipleParam returns all values of the named parameter in arrival order,
// or an empty slice when the parameter was not set.
func (r *Request) MultipleParam(name string) (values []string) {
	values = r.params.Values(name)
	return
}

// MultipleIntParam returns all values of the named parameter that parse as
// int, in arrival order. Values that do not parse are dropped.
func (r *Request) MultipleIntParam(name string) (values []int) {
	stored := r.params.Values(name)
	values = make([]int, 0, len(stored))
	for _, v := range stored {
		n, parseErr := strconv.Atoi(v)
		if parseErr != nil {
			continue
		}
		values = append(values, n)
	}
	return
}

// MultipleInt64Param returns all values of the named parameter that parse as
// int64, in arrival order. Values that do not parse are dropped.
func (r *Request) MultipleInt64Param(name string) (values []int64) {
	stored := r.params.Values(name)
	values = make([]int64, 0, len(stored))
	for _, v := range stored {
		n, parseErr := strconv.ParseInt(v, 10, 64)
		if parseErr != nil {
			continue
		}
		values = append(values, n)
	}
	return
}
