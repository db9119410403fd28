// response/error.go
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode  int          `json:"status_code"`
	Method      string       `json:"method"`
	URL         string       `json:"url"`
	HTTPStatus  int          `json:"httpStatus,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
	Message     string       `json:"message"`
	RawResponse string       `json:"raw_response,omitempty"`
}

// FieldError is one entry of the errors array the Jamf Pro API returns with 4xx replies.
type FieldError struct {
	Code        string  `json:"code,omitempty"`
	Field       string  `json:"field,omitempty"`
	Description string  `json:"description,omitempty"`
	ID          *string `json:"id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, msg)
}

// FieldErrors returns the server's messages keyed by field name.
func (e *APIError) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field != "" {
			out[fe.Field] = fe.Description
		}
	}
	return out
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// IsConflict reports whether err is a 409, which the server returns for duplicate identifiers.
func IsConflict(err error) bool { return IsStatus(err, http.StatusConflict) }

// HandleAPIErrorResponse reads an error reply into an *APIError and logs it.
func HandleAPIErrorResponse(resp *http.Response, sugar *zap.SugaredLogger) *APIError {
	apiError := &APIError{StatusCode: resp.StatusCode}
	if resp.Request != nil {
		apiError.Method = resp.Request.Method
		apiError.URL = resp.Request.URL.String()
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		apiError.Message = "failed to read response body"
		sugar.Errorw("API error response", "status", resp.StatusCode, "error", err)
		return apiError
	}

	mimeType, _ := parseHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLResponse(bodyBytes, apiError)
	default:
		parseTextResponse(bodyBytes, apiError)
	}

	sugar.Errorw("API error response",
		"method", apiError.Method,
		"url", apiError.URL,
		"status", apiError.StatusCode,
		"message", apiError.Message,
	)
	return apiError
}

// parseJSONResponse decodes the {"httpStatus": n, "errors": [...]} envelope. The message is the
// joined error descriptions.
func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	var envelope struct {
		HTTPStatus int          `json:"httpStatus"`
		Errors     []FieldError `json:"errors"`
		Message    string       `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		parseTextResponse(bodyBytes, apiError)
		return
	}

	apiError.HTTPStatus = envelope.HTTPStatus
	apiError.Errors = envelope.Errors

	var messages []string
	for _, fe := range envelope.Errors {
		switch {
		case fe.Field != "" && fe.Description != "":
			messages = append(messages, fe.Field+": "+fe.Description)
		case fe.Description != "":
			messages = append(messages, fe.Description)
		case fe.Code != "":
			messages = append(messages, fe.Code)
		}
	}
	switch {
	case len(messages) > 0:
		apiError.Message = strings.Join(messages, "; ")
	case envelope.Message != "":
		apiError.Message = envelope.Message
	default:
		apiError.RawResponse = string(bodyBytes)
	}
}

// parseXMLResponse collects the text nodes of an XML error body.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	apiError.Message = strings.Join(messages, "; ")
}

func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)
	apiError.Message = strings.TrimSpace(string(bodyBytes))
}

// parseHTMLResponse joins the text of every <p> element. Links inside paragraphs are kept as
// "[Link: href]".
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var collect func(*html.Node, *strings.Builder)
	collect = func(c *html.Node, sb *strings.Builder) {
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) != "":
			sb.WriteString(strings.TrimSpace(c.Data) + " ")
		case c.Type == html.ElementNode && c.Data == "a":
			for _, attr := range c.Attr {
				if attr.Key == "href" {
					sb.WriteString("[Link: " + attr.Val + "] ")
					break
				}
			}
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			collect(child, sb)
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			var sb strings.Builder
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				collect(child, &sb)
			}
			if text := strings.TrimSpace(sb.String()); text != "" {
				messages = append(messages, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	apiError.Message = strings.Join(messages, "; ")
}
