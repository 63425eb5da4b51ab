package httprequest

import (
	"github.com/Olezha/fred-staging/commons/urlencoded"
	"github.com/aacfactory/json"
	"github.com/valyala/bytebufferpool"
)

// Params is the parameter store built from a query string. Names keep the
// order of their first appearance, values keep arrival order per name. The
// store is populated once during parsing and read-only afterwards, so it is
// safe for concurrent readers.
type Params struct {
	names  []string
	values map[string][]string
}

func (params *Params) add(name string, value string) {
	if params.values == nil {
		params.values = make(map[string][]string)
	}
	_, has := params.values[name]
	if !has {
		params.names = append(params.names, name)
	}
	params.values[name] = append(params.values[name], value)
}

// IsSet reports whether the named parameter appeared in the query string at
// all, with or without a value.
func (params *Params) IsSet(name string) (has bool) {
	_, has = params.values[name]
	return
}

// Get returns the first value of the named parameter.
func (params *Params) Get(name string) (value string, has bool) {
	values, exist := params.values[name]
	if !exist || len(values) == 0 {
		return
	}
	value = values[0]
	has = true
	return
}

// Values returns all values of the named parameter in arrival order. The
// result is a copy and never nil. Looking up an absent name does not create
// an entry.
func (params *Params) Values(name string) (values []string) {
	stored := params.values[name]
	values = make([]string, len(stored))
	copy(values, stored)
	return
}

func (params *Params) Len() (n int) {
	n = len(params.values)
	return
}

// Names returns the parameter names in the order of their first appearance.
func (params *Params) Names() (names []string) {
	names = make([]string, len(params.names))
	copy(names, params.names)
	return
}

// Encode serializes the store back into query string form. Names and values
// are percent-encoded, pairs appear in arrival order. Re-parsing the result
// yields an equal store.
func (params *Params) Encode() (p []byte) {
	if len(params.names) == 0 {
		return
	}
	buf := bytebufferpool.Get()
	for _, name := range params.names {
		for _, value := range params.values[name] {
			_ = buf.WriteByte('&')
			_, _ = buf.WriteString(urlencoded.Encode(name))
			_ = buf.WriteByte('=')
			_, _ = buf.WriteString(urlencoded.Encode(value))
		}
	}
	b := buf.Bytes()
	p = make([]byte, len(b)-1)
	copy(p, b[1:])
	bytebufferpool.Put(buf)
	return
}

// MarshalJSON writes the store as an object of value arrays, names in
// arrival order.
func (params *Params) MarshalJSON() (p []byte, err error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_ = buf.WriteByte('{')
	for i, name := range params.names {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		nameBytes, nameErr := json.Marshal(name)
		if nameErr != nil {
			err = nameErr
			return
		}
		_, _ = buf.Write(nameBytes)
		_ = buf.WriteByte(':')
		valuesBytes, valuesErr := json.Marshal(params.values[name])
		if valuesErr != nil {
			err = valuesErr
			return
		}
		_, _ = buf.Write(valuesBytes)
	}
	_ = buf.WriteByte('}')
	b := buf.Bytes()
	p = make([]byte, len(b))
	copy(p, b)
	return
}
