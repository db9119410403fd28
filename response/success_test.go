package response

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func successResponse(status int, header http.Header, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestHandleAPISuccessResponseJSON(t *testing.T) {
	resp := successResponse(http.StatusOK, http.Header{"Content-Type": []string{"application/json"}}, `{"id":"1","name":"HQ"}`)

	var out map[string]any
	require.NoError(t, HandleAPISuccessResponse(resp, &out, zap.NewNop().Sugar()))
	assert.Equal(t, map[string]any{"id": "1", "name": "HQ"}, out)
}

func TestHandleAPISuccessResponseRawMessage(t *testing.T) {
	body := `{"totalCount":1,"results":[{"id":"1"}]}`
	resp := successResponse(http.StatusOK, http.Header{"Content-Type": []string{"application/json; charset=UTF-8"}}, body)

	var raw json.RawMessage
	require.NoError(t, HandleAPISuccessResponse(resp, &raw, zap.NewNop().Sugar()))
	assert.JSONEq(t, body, string(raw))
}

func TestHandleAPISuccessResponseXML(t *testing.T) {
	resp := successResponse(http.StatusOK, http.Header{"Content-Type": []string{"application/xml"}}, `<building><id>1</id><name>HQ</name></building>`)

	var out struct {
		ID   int    `xml:"id"`
		Name string `xml:"name"`
	}
	require.NoError(t, HandleAPISuccessResponse(resp, &out, zap.NewNop().Sugar()))
	assert.Equal(t, 1, out.ID)
	assert.Equal(t, "HQ", out.Name)
}

func TestHandleAPISuccessResponseEmptyBody(t *testing.T) {
	resp := successResponse(http.StatusNoContent, http.Header{}, "")

	var out map[string]any
	require.NoError(t, HandleAPISuccessResponse(resp, &out, zap.NewNop().Sugar()))
	assert.Nil(t, out)
}

func TestHandleAPISuccessResponseBinary(t *testing.T) {
	header := http.Header{
		"Content-Type":        []string{"application/octet-stream"},
		"Content-Disposition": []string{`attachment; filename="script.sh"`},
	}

	var data []byte
	require.NoError(t, HandleAPISuccessResponse(successResponse(http.StatusOK, header, "#!/bin/sh"), &data, zap.NewNop().Sugar()))
	assert.Equal(t, []byte("#!/bin/sh"), data)

	var buf bytes.Buffer
	require.NoError(t, HandleAPISuccessResponse(successResponse(http.StatusOK, header, "#!/bin/sh"), &buf, zap.NewNop().Sugar()))
	assert.Equal(t, "#!/bin/sh", buf.String())

	var wrong map[string]any
	assert.Error(t, HandleAPISuccessResponse(successResponse(http.StatusOK, header, "#!/bin/sh"), &wrong, zap.NewNop().Sugar()))
}

func TestHandleAPISuccessResponseUnknownType(t *testing.T) {
	resp := successResponse(http.StatusOK, http.Header{"Content-Type": []string{"image/png"}}, "data")

	var out map[string]any
	err := HandleAPISuccessResponse(resp, &out, zap.NewNop().Sugar())
	assert.ErrorContains(t, err, "unexpected MIME type")
}
