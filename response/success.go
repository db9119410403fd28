// response/success.go
/* Package response decodes Jamf Pro API responses. Successful bodies are unmarshalled by content
type; error bodies are turned into an *APIError carrying the server's field level messages. */
package response

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// contentHandler defines the signature for unmarshaling content from an io.Reader.
type contentHandler func(io.Reader, any, *zap.SugaredLogger, string) error

// responseUnmarshallers maps MIME types to the corresponding contentHandler functions.
var responseUnmarshallers = map[string]contentHandler{
	"application/json": handlerUnmarshalJSON,
	"application/xml":  handlerUnmarshalXML,
	"text/xml":         handlerUnmarshalXML,
}

// HandleAPISuccessResponse reads a 2xx response and decodes it into out. A nil out, or an empty
// body such as a 204 reply to DELETE, decodes to nothing.
func HandleAPISuccessResponse(resp *http.Response, out any, sugar *zap.SugaredLogger) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		sugar.Errorw("Failed to read response body", "error", err)
		return err
	}

	sugar.Debugw("Raw HTTP response", "status", resp.StatusCode, "body", string(bodyBytes))

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	bodyReader := bytes.NewReader(bodyBytes)
	contentType := resp.Header.Get("Content-Type")
	contentDisposition := resp.Header.Get("Content-Disposition")
	mimeType, _ := parseHeader(contentType)

	if handler, ok := responseUnmarshallers[mimeType]; ok {
		return handler(bodyReader, out, sugar, contentType)
	}

	if isBinaryData(contentType, contentDisposition) {
		return handleBinaryData(bodyReader, sugar, out, contentDisposition)
	}

	err = fmt.Errorf("unexpected MIME type: %q", contentType)
	sugar.Errorw("Unmarshal error", "content_type", contentType, "error", err)
	return err
}

// handlerUnmarshalJSON decodes JSON into out. A *json.RawMessage receives the body untouched.
func handlerUnmarshalJSON(reader io.Reader, out any, sugar *zap.SugaredLogger, mimeType string) error {
	if raw, ok := out.(*json.RawMessage); ok {
		data, err := io.ReadAll(reader)
		if err != nil {
			return err
		}
		*raw = append((*raw)[:0], data...)
		return nil
	}

	if err := json.NewDecoder(reader).Decode(out); err != nil {
		sugar.Errorw("JSON unmarshal error", "content_type", mimeType, "error", err)
		return err
	}
	return nil
}

// handlerUnmarshalXML unmarshals XML content from an io.Reader into the provided output structure.
func handlerUnmarshalXML(reader io.Reader, out any, sugar *zap.SugaredLogger, mimeType string) error {
	if err := xml.NewDecoder(reader).Decode(out); err != nil {
		sugar.Errorw("XML unmarshal error", "content_type", mimeType, "error", err)
		return err
	}
	return nil
}

// isBinaryData checks if the MIME type or Content-Disposition indicates binary data.
func isBinaryData(contentType, contentDisposition string) bool {
	return strings.Contains(contentType, "application/octet-stream") || strings.HasPrefix(contentDisposition, "attachment")
}

// handleBinaryData stores binary data in a *[]byte or streams it to an io.Writer.
func handleBinaryData(reader io.Reader, sugar *zap.SugaredLogger, out any, contentDisposition string) error {
	switch out := out.(type) {
	case *[]byte:
		data, err := io.ReadAll(reader)
		if err != nil {
			return err
		}
		*out = data
	case io.Writer:
		if _, err := io.Copy(out, reader); err != nil {
			sugar.Errorw("Failed to stream binary data", "error", err)
			return err
		}
	default:
		return errors.New("output parameter is not suitable for binary data (*[]byte or io.Writer)")
	}

	if _, params := parseHeader(contentDisposition); params["filename"] != "" {
		sugar.Debugw("Binary response", "filename", params["filename"])
	}
	return nil
}
