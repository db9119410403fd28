// httpclient/methods.go
package httpclient

import "net/http"

/* Ref: https://www.rfc-editor.org/rfc/rfc7231#section-8.1.3

+---------+------+------------+
| Method  | Safe | Idempotent |
+---------+------+------------+
| DELETE  | no   | yes        |
| GET     | yes  | yes        |
| HEAD    | yes  | yes        |
| OPTIONS | yes  | yes        |
| PATCH   | no   | no         |
| POST    | no   | no         |
| PUT     | no   | yes        |
+---------+------+------------+
*/

// IsIdempotentHTTPMethod checks if the given HTTP method is idempotent.
func IsIdempotentHTTPMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// IsNonIdempotentHTTPMethod checks if the given HTTP method is not idempotent.
func IsNonIdempotentHTTPMethod(method string) bool {
	return method == http.MethodPost || method == http.MethodPatch
}
