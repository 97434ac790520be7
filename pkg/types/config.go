package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"30"`

	// Cognito Auth
	CognitoUserPoolID string `envconfig:"COGNITO_USER_POOL_ID"`
	CognitoClientID   string `envconfig:"COGNITO_CLIENT_ID"`
	CognitoIssuerURL  string `envconfig:"COGNITO_ISSUER_URL"`

	// Staged images. Empty bucket keeps blobs in process memory.
	StagingBucket string `envconfig:"STAGING_BUCKET"`
	StagingPrefix string `envconfig:"STAGING_PREFIX" default:"staging"`
	MaxUploadMB   int64  `envconfig:"MAX_UPLOAD_MB" default:"64"`

	// Intake drafts live in memory and are dropped after this much idle time
	DraftTTLMinutes int `envconfig:"DRAFT_TTL_MINUTES" default:"120"`

	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`

	// Auth Configuration
	CookieName       string `envconfig:"SESSION_COOKIE_NAME" default:"tasmeem"`
	SessionMaxAgeSec int    `envconfig:"SESSION_MAX_AGE_SEC" default:"31536000"` // 1 year, holds the language preference
	CookieSecure     bool   `envconfig:"COOKIE_SECURE" default:"true"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
	CSRFKey        string `envconfig:"CSRF_KEY"`         // 32 bytes
}
