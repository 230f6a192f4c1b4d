// Package store provides storage abstractions for the server.
//
// This package defines interfaces for database operations, allowing the
// access core and the endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - AccountsStore: account lookup, registration and activation
//   - SessionsStore: session persistence and token resolution
//   - GroupsStore: group lifecycle, including the transactional
//     group-plus-owner creation
//   - MembersStore: membership rows, the sole source of truth for rights
//   - ArticlesStore / PagesStore / CommentsStore: content records
//   - HealthStore: connectivity probe
//
// # Usage
//
//	accounts := gorm.NewAccountsStore(db)
//	account, err := accounts.AccountByEmail(ctx, "a@x.com", true)
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
