package urlscan_test

import (
	"net/http"
	"testing"

	"cloudflarescan/pkg/serrors"
	"cloudflarescan/pkg/urlscan"

	"github.com/stretchr/testify/require"
)

func jsonResponse(body string) *urlscan.Response {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	return urlscan.NewResponse(http.StatusOK, h, []byte(body))
}

func TestResponse_rawAccessors(t *testing.T) {
	h := http.Header{}
	h.Set("Cf-Ray", "8f00ba11")
	r := urlscan.NewResponse(http.StatusAccepted, h, []byte(`{"success":true}`))

	require.Equal(t, http.StatusAccepted, r.StatusCode())
	require.Equal(t, "8f00ba11", r.Header().Get("Cf-Ray"))
	require.Equal(t, `{"success":true}`, r.Text())
	require.Equal(t, []byte(`{"success":true}`), r.Body())
}

func TestResponse_ScanID(t *testing.T) {
	r := jsonResponse(`{"success": true, "result": {"result": {"uuid": "xyz"}}}`)
	id, err := r.ScanID()
	require.NoError(t, err)
	require.Equal(t, "xyz", id)

	r = jsonResponse(`{"success": true, "result": {}}`)
	id, err = r.ScanID()
	require.NoError(t, err)
	require.Empty(t, id, "missing nesting levels must default to an empty scan ID")

	r = jsonResponse(`{"success": true}`)
	id, err = r.ScanID()
	require.NoError(t, err)
	require.Empty(t, id)
}

func TestResponse_upstreamRejection(t *testing.T) {
	r := jsonResponse(`{"success": false, "errors": ["rate limited"]}`)

	require.False(t, r.Succeeded())
	errs, err := r.Errors()
	require.NoError(t, err)
	require.Equal(t, []string{"rate limited"}, errs)
}

func TestResponse_nonJSONBody(t *testing.T) {
	r := urlscan.NewResponse(http.StatusBadGateway, http.Header{}, []byte("<html>502</html>"))

	require.NotPanics(t, func() {
		require.False(t, r.Succeeded(), "Succeeded must be a safe probe on non-JSON bodies")
	})

	_, err := r.JSON()
	require.ErrorIs(t, err, serrors.ErrParse)

	// non-defending accessors propagate the same parse failure
	_, err = r.Errors()
	require.ErrorIs(t, err, serrors.ErrParse)
	_, err = r.ScanID()
	require.ErrorIs(t, err, serrors.ErrParse)
}

func TestResponse_defaults(t *testing.T) {
	r := jsonResponse(`{}`)

	require.False(t, r.Succeeded())

	errs, err := r.Errors()
	require.NoError(t, err)
	require.Empty(t, errs)

	msgs, err := r.Messages()
	require.NoError(t, err)
	require.Empty(t, msgs)

	result, err := r.Result()
	require.NoError(t, err)
	require.Empty(t, result)

	tasks, err := r.Tasks()
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestResponse_Messages(t *testing.T) {
	r := jsonResponse(`{"success": true, "messages": [{"message": "scan queued"}, {"message": "eta 2m", "code": "ok"}]}`)

	msgs, err := r.Messages()
	require.NoError(t, err)
	require.Equal(t, []map[string]string{
		{"message": "scan queued"},
		{"message": "eta 2m", "code": "ok"},
	}, msgs)
}

func TestResponse_Tasks(t *testing.T) {
	r := jsonResponse(`{"success": true, "result": {"tasks": ["task-a", "task-b"]}}`)

	tasks, err := r.Tasks()
	require.NoError(t, err)
	require.Equal(t, []string{"task-a", "task-b"}, tasks)
}

func TestResponse_Result(t *testing.T) {
	r := jsonResponse(`{"success": true, "result": {"next_cursor": "abc"}}`)

	result, err := r.Result()
	require.NoError(t, err)
	require.Equal(t, "abc", result["next_cursor"])
}

func TestResponse_wrongTypesDegrade(t *testing.T) {
	// fields present with unexpected types degrade to defaults, never panic
	r := jsonResponse(`{"success": "yes", "errors": "oops", "messages": 3, "result": []}`)

	require.False(t, r.Succeeded())

	errs, err := r.Errors()
	require.NoError(t, err)
	require.Empty(t, errs)

	result, err := r.Result()
	require.NoError(t, err)
	require.Empty(t, result)

	id, err := r.ScanID()
	require.NoError(t, err)
	require.Empty(t, id)
}

func TestResponse_jsonParsedOnce(t *testing.T) {
	r := jsonResponse(`{"success": true}`)

	v1, err := r.JSON()
	require.NoError(t, err)
	v2, err := r.JSON()
	require.NoError(t, err)
	require.Equal(t, v1, v2)
}
