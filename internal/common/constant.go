// Package common contains shared constants and sentinel errors used across
// AiVantu client components.
package common

// AppName is shown in the REPL banner and sent as part of the User-Agent.
const AppName = "AiVantu"

// DefaultUserEmail is the account the backend falls back to when a request
// carries no user_email. The client uses it until somebody signs in.
const DefaultUserEmail = "demo@aivantu.com"

// AuthorizationHeaderName carries the signed-in user's ID token on outbound
// requests. The backend may ignore it.
const AuthorizationHeaderName = "Authorization"
