package common

// AuthCookieName is the cookie that carries the signed session token.
// The original deployment exposed it under this name, so clients depend on it.
const AuthCookieName = "Authorization"
