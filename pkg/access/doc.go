// Package access is the authentication and authorization core. It owns
// credential checking, session issuance and confirmation, federated
// sign-in, registration, and group permission resolution. Everything
// above it (HTTP endpoints, CLI) goes through this package; everything
// below it is storage.
package access
