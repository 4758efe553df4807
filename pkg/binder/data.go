package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// DefaultMaxMemory is the in-memory limit for multipart forms.
const DefaultMaxMemory = 10 << 20 // 10 MB

// Data reads the request input as flat validator data.
//
// The source depends on the request:
//   - application/json: the body must be an object of scalar values
//   - application/x-www-form-urlencoded, multipart/form-data: form values
//   - no body (GET, HEAD, DELETE or an empty POST): query parameters
//
// For repeated form or query keys the first value is used.
func Data(r *http.Request) (validator.Data, error) {
	if r.ContentLength == 0 && r.Header.Get("Content-Type") == "" {
		return Query(r), nil
	}

	mt, err := mediaType(r)
	if err != nil {
		return nil, err
	}

	switch mt {
	case "application/json":
		body, err := readBody(r, DefaultMaxJSONSize)
		if err != nil {
			return nil, err
		}
		return decodeObject(body)

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return first(r.PostForm), nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		if r.MultipartForm == nil {
			return validator.Data{}, nil
		}
		return first(r.MultipartForm.Value), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
	}
}

// Query returns the first value of each query parameter.
func Query(r *http.Request) validator.Data {
	return first(r.URL.Query())
}

// Values converts decoded JSON values to validator data. Strings are kept,
// numbers keep their literal form, booleans become "true" or "false" and
// null marks the key as absent. Nested objects and arrays are rejected.
func Values(in map[string]any) (validator.Data, error) {
	out := make(validator.Data, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("%w: field %q holds %T", ErrUnsupportedValue, k, v)
		}
	}
	return out, nil
}

func decodeObject(body []byte) (validator.Data, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}
	return Values(raw)
}

func first(values map[string][]string) validator.Data {
	out := make(validator.Data, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
