package contextkeys

// Custom type so values set by our middleware cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB handle is stored.
const DBContextKey = contextKey("db")
