package common

// TokenStorageKey is the metadata key under which the raw bearer token is
// persisted between runs. Exactly one token is stored at a time.
const TokenStorageKey = "token"

// RequestIDHeaderName is the HTTP header used to carry a correlation id on
// outbound API requests.
const RequestIDHeaderName = "X-Request-Id"
