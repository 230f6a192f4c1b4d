// Package identity carries the authenticated identity of a request.
//
// The session middleware confirms the bearer token, builds an Identity from
// the resulting session and account, and stores it in the request context.
// Handlers retrieve it with identity.Get.
//
// # Basic Usage
//
//	id := identity.FromSession(session, account).WithRemoteIP(clientIP)
//	ctx = identity.Set(ctx, id)
//
//	id, ok := identity.Get(ctx)
package identity
