// apiintegrations/jamfpro/request.go
package jamfpro

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-jamfpro-oapi/headers"
	"github.com/deploymenttheory/go-jamfpro-oapi/version"
)

// weightedAcceptHeader prefers JSON, accepts the XML of older endpoints and binary downloads.
const weightedAcceptHeader = "application/json;q=0.9," +
	"application/xml;q=0.8," +
	"text/xml;q=0.7," +
	"application/octet-stream;q=0.6," +
	"text/html;q=0.5," +
	"text/plain;q=0.4," +
	"*/*;q=0.05"

// GetContentTypeHeader returns the request Content-Type for endpoint. The Classic API under
// /JSSResource speaks XML; everything else, including PATCH bodies, is JSON.
func (j *Integration) GetContentTypeHeader(endpoint string) string {
	if strings.Contains(endpoint, "/JSSResource") {
		return "application/xml"
	}
	return "application/json"
}

// GetAcceptHeader returns the weighted Accept header sent with every request.
func (j *Integration) GetAcceptHeader() string {
	return weightedAcceptHeader
}

// MarshalRequest encodes body for endpoint. Raw JSON and byte slices are sent unchanged and a nil
// body produces no payload.
func (j *Integration) MarshalRequest(body any, method, endpoint string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		data = b
	case json.RawMessage:
		data = b
	default:
		if strings.Contains(endpoint, "/JSSResource") {
			data, err = xml.Marshal(body)
		} else {
			data, err = json.Marshal(body)
		}
		if err != nil {
			j.Sugar.Errorw("Failed marshaling request body", "method", method, "endpoint", endpoint, "error", err)
			return nil, err
		}
	}

	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		j.Sugar.Debugw("Request body", "method", method, "endpoint", endpoint, "body", string(data))
	}
	return data, nil
}

// SetRequestHeaders authorizes req and sets its content negotiation headers.
func (j *Integration) SetRequestHeaders(ctx context.Context, req *http.Request) error {
	token, err := j.Token(ctx)
	if err != nil {
		return err
	}
	headers.SetAuthorization(req, token)

	contentType := ""
	if req.Body != nil && req.Body != http.NoBody {
		contentType = j.GetContentTypeHeader(req.URL.Path)
	}
	headers.SetStandardHeaders(req, contentType, j.GetAcceptHeader(), version.GetUserAgentHeader())
	headers.LogHeaders(j.Sugar, req, j.hideSensitiveData)
	return nil
}
