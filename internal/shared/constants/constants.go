package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableProducts           = "products"
	TableSubscribers        = "subscribers"
	TableSubscriberProducts = "subscriber_products"

	// Wire date formats
	DateLayout      = "2006-01-02"
	DateTimeLayout  = "2006-01-02T15:04:05"
	TimestampLayout = "02-01-2006 03:04:05"
)

// Field length limits shared by bind models and domain entities.
const (
	NameMinLength = 3
	NameMaxLength = 15
)
