package shared

import (
	"encoding/json"
	"net/http"
)

// maxRequestBody caps JSON request bodies. Account payloads are a few
// hundred bytes at most, so 64KB leaves plenty of headroom.
const maxRequestBody = 64 << 10

// DecodeJSON decodes the request body into v, enforcing the body size
// cap. Oversized or malformed bodies return an error that handlers map
// to a 400 response.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody)).Decode(v)
}
