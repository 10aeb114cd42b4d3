package application

import "expvar"

// Published under /debug/vars as "auth".
var authStats = expvar.NewMap("auth")

const (
	statRegisterOK       = "register_ok"
	statRegisterConflict = "register_conflict"
	statLoginOK          = "login_ok"
	statLoginFailed      = "login_failed"
	statTokenRejected    = "token_rejected"
)
