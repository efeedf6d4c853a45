package executor

import (
	"bytes"
	"encoding/json"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Object is a completed object value. Keys keep the order of the selection set.
type Object struct {
	keys   []string
	values []any
}

func newObject(keys []string) *Object {
	return &Object{keys: keys, values: make([]any, len(keys))}
}

func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) Get(key string) (any, bool) {
	for i, k := range o.keys {
		if k == key {
			return o.values[i], true
		}
	}
	return nil, false
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Response is the result envelope of one request.
// Data is omitted when the request failed before execution started.
type Response struct {
	Data     *Object
	Errors   gqlerror.List
	Executed bool
}

func (r *Response) MarshalJSON() ([]byte, error) {
	out := struct {
		Data   json.RawMessage `json:"data,omitempty"`
		Errors gqlerror.List   `json:"errors,omitempty"`
	}{Errors: r.Errors}

	if r.Executed {
		if r.Data == nil {
			out.Data = json.RawMessage("null")
		} else {
			data, err := json.Marshal(r.Data)
			if err != nil {
				return nil, err
			}
			out.Data = data
		}
	}
	return json.Marshal(out)
}
