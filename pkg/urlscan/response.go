package urlscan

import (
	"encoding/json"
	"net/http"
	"sync"

	"cloudflarescan/pkg/serrors"
)

// Response is a read-only view over one completed HTTP response from the URL
// Scanner API. The body is parsed as JSON lazily and at most once; every
// typed accessor reads from the parsed value with an explicit default so that
// partial or error responses never cause a missing-field failure. Only a
// genuinely malformed body produces an error, surfaced by JSON and by the
// accessors built on it.
type Response struct {
	statusCode int
	header     http.Header
	body       []byte

	parseOnce sync.Once
	parsed    map[string]any
	parseErr  error
}

// NewResponse wraps a completed HTTP response. It performs no I/O.
func NewResponse(statusCode int, header http.Header, body []byte) *Response {
	return &Response{statusCode: statusCode, header: header, body: body}
}

// StatusCode returns the HTTP status code verbatim.
func (r *Response) StatusCode() int { return r.statusCode }

// Header returns the response headers as received from the transport.
func (r *Response) Header() http.Header { return r.header }

// Body returns the raw response body. Screenshot and HAR responses are
// binary; use Body rather than Text for those.
func (r *Response) Body() []byte { return r.body }

// Text returns the response body as text, verbatim.
func (r *Response) Text() string { return string(r.body) }

// JSON returns the body parsed as a JSON object. It fails with a
// serrors.ErrParse error if the body is not valid JSON; callers that want a
// safe first probe should check Succeeded instead.
func (r *Response) JSON() (map[string]any, error) {
	r.parseOnce.Do(func() {
		var v map[string]any
		if err := json.Unmarshal(r.body, &v); err != nil {
			r.parseErr = serrors.Wrap(serrors.ErrParse, err, "response body is not valid JSON")

			return
		}
		r.parsed = v
	})

	return r.parsed, r.parseErr
}

// Succeeded reports the top-level "success" field. It defaults to false when
// the field is absent and swallows a parse failure, so it is always safe to
// call first, even on non-JSON error bodies.
func (r *Response) Succeeded() bool {
	v, err := r.JSON()
	if err != nil {
		return false
	}
	ok, _ := v["success"].(bool)

	return ok
}

// Errors returns the top-level "errors" field, defaulting to an empty list.
// Unlike Succeeded it propagates a parse failure.
func (r *Response) Errors() ([]string, error) {
	v, err := r.JSON()
	if err != nil {
		return nil, err
	}

	return stringSlice(v["errors"]), nil
}

// Messages returns the top-level "messages" field as a list of field-to-string
// mappings, defaulting to an empty list.
func (r *Response) Messages() ([]map[string]string, error) {
	v, err := r.JSON()
	if err != nil {
		return nil, err
	}

	items, _ := v["messages"].([]any)
	out := make([]map[string]string, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		msg := make(map[string]string, len(fields))
		for k, fv := range fields {
			if s, ok := fv.(string); ok {
				msg[k] = s
			}
		}
		out = append(out, msg)
	}

	return out, nil
}

// Result returns the top-level "result" object, defaulting to an empty map.
func (r *Response) Result() (map[string]any, error) {
	v, err := r.JSON()
	if err != nil {
		return nil, err
	}

	return mapValue(v["result"]), nil
}

// ScanID returns the scan UUID of a submit response. The submit endpoint
// nests it as result.result.uuid; any absent level yields an empty string.
func (r *Response) ScanID() (string, error) {
	result, err := r.Result()
	if err != nil {
		return "", err
	}

	inner := mapValue(result["result"])
	id, _ := inner["uuid"].(string)

	return id, nil
}

// Tasks returns the "result.tasks" field, defaulting to an empty list.
func (r *Response) Tasks() ([]string, error) {
	result, err := r.Result()
	if err != nil {
		return nil, err
	}

	return stringSlice(result["tasks"]), nil
}

// stringSlice extracts the string elements of a parsed JSON array. Anything
// that is not an array of strings degrades to an empty or partial list.
func stringSlice(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// mapValue extracts a parsed JSON object, degrading to an empty map for
// absent or wrongly-typed values.
func mapValue(v any) map[string]any {
	m, _ := v.(map[string]any)
	if m == nil {
		m = map[string]any{}
	}

	return m
}
