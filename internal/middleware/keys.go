package middleware

// gin context keys set by the middleware chain.
const (
	CtxRequestID = "request_id"
	CtxUserID    = "user_id"
	CtxUsername  = "username"
	CtxRole      = "role"
	CtxPrincipal = "principal"
)

// Identity headers forwarded to downstream handlers. Incoming values are
// always discarded.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUsername = "X-Username"
	HeaderUserRole = "X-User-Role"
)
