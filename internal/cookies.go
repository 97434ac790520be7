package internal

const COOKIE_ACCESS_TOKEN_NAME = "tasmeem_at"

// Keys stored in the visitor session.
const (
	SESSION_KEY_LANGUAGE  = "lang"
	SESSION_KEY_WIZARD_ID = "wizard_id"
)
