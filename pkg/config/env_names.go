package config

// EnvPrefix scopes every variable envconfig reads.
const EnvPrefix = "MANGO"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy tooling.
const (
	EnvAppEnv          = "MANGO_APP_ENV"
	EnvPort            = "MANGO_APP_PORT"
	EnvLogLevel        = "MANGO_LOG_LEVEL"
	EnvUpstreamBaseURL = "MANGO_UPSTREAM_BASE_URL"
	EnvUpstreamTimeout = "MANGO_UPSTREAM_TIMEOUT"
	EnvCartShippingFee = "MANGO_CART_SHIPPING_FEE"
	EnvCartMaxQuantity = "MANGO_CART_MAX_QUANTITY"
	EnvCartSessionTTL  = "MANGO_CART_SESSION_TTL"
	EnvRedisURL        = "MANGO_REDIS_URL"
	EnvJWTSecret       = "MANGO_JWT_SECRET"
	EnvJWTIssuer       = "MANGO_JWT_ISSUER"
	EnvJWTExpMins      = "MANGO_JWT_EXPIRATION_MINUTES"
)
