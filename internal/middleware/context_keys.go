package middleware

// contextKey is the type used for context value keys set by middleware.
// Using a custom type prevents collisions.
type contextKey string

// loggerKey is the key used to store the request-scoped logger.
const loggerKey = contextKey("logger")
