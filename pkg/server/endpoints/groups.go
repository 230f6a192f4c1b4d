package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cairncms/cairn/pkg/audit"
	"github.com/cairncms/cairn/pkg/identity"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/middleware"
)

// RegisterGroupEndpoints registers group lifecycle and membership routes.
// Every route requires an authenticated session.
func RegisterGroupEndpoints(srv *server.Server, authn *middleware.SessionAuthenticator) {
	router := srv.Router
	groups := srv.GroupsSvc

	protected := func(h http.HandlerFunc) http.Handler {
		return authn.Middleware(h)
	}

	// POST /group/ - create a group, caller becomes its first member
	router.Handle(
		"/group/",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body model.Group
			if !decodeJSON(w, r, &body) {
				return
			}

			id, _ := identity.Get(r.Context())
			clientIP := middleware.ClientIP(r).String()
			group, owner, err := groups.CreateGroup(r.Context(), id.AccountID(), &body)
			if err != nil {
				audit.Log(audit.GroupEvent{
					AccountID:    id.AccountID(),
					Operation:    "create",
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.GroupEvent{
				AccountID: id.AccountID(),
				GroupID:   group.ID,
				Operation: "create",
				ClientIP:  clientIP,
				Success:   true,
			})
			respondWithJSON(w, http.StatusCreated, map[string]interface{}{
				"group": group,
				"owner": owner,
			})
		}),
	).Methods("POST")

	// GET /group/{id} - fetch a group the caller can read
	router.Handle(
		"/group/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			id, _ := identity.Get(r.Context())
			group, err := groups.Group(r.Context(), id.AccountID(), mux.Vars(r)["id"])
			if err != nil {
				respondWithAccessError(w, err)
				return
			}
			respondWithJSON(w, http.StatusOK, group)
		}),
	).Methods("GET")

	// PUT /group/{id} - update group fields
	router.Handle(
		"/group/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body model.Group
			if !decodeJSON(w, r, &body) {
				return
			}
			body.ID = mux.Vars(r)["id"]

			id, _ := identity.Get(r.Context())
			clientIP := middleware.ClientIP(r).String()
			group, err := groups.UpdateGroup(r.Context(), id.AccountID(), &body)
			if err != nil {
				audit.Log(audit.GroupEvent{
					AccountID:    id.AccountID(),
					GroupID:      body.ID,
					Operation:    "update",
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.GroupEvent{
				AccountID: id.AccountID(),
				GroupID:   group.ID,
				Operation: "update",
				ClientIP:  clientIP,
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, group)
		}),
	).Methods("PUT")

	// DELETE /group/{id} - remove a group and its memberships
	router.Handle(
		"/group/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			groupID := mux.Vars(r)["id"]
			id, _ := identity.Get(r.Context())
			clientIP := middleware.ClientIP(r).String()
			if err := groups.DeleteGroup(r.Context(), id.AccountID(), groupID); err != nil {
				audit.Log(audit.GroupEvent{
					AccountID:    id.AccountID(),
					GroupID:      groupID,
					Operation:    "delete",
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.GroupEvent{
				AccountID: id.AccountID(),
				GroupID:   groupID,
				Operation: "delete",
				ClientIP:  clientIP,
				Success:   true,
			})
			w.WriteHeader(http.StatusNoContent)
		}),
	).Methods("DELETE")

	// GET /group/{id}/members - list memberships
	router.Handle(
		"/group/{id}/members",
		protected(func(w http.ResponseWriter, r *http.Request) {
			id, _ := identity.Get(r.Context())
			members, err := groups.Members(r.Context(), id.AccountID(), mux.Vars(r)["id"])
			if err != nil {
				respondWithAccessError(w, err)
				return
			}
			respondWithJSON(w, http.StatusOK, members)
		}),
	).Methods("GET")

	// POST /group/{id}/members - add a member
	router.Handle(
		"/group/{id}/members",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Account string     `json:"account"`
				Rights  rights.Set `json:"rights"`
			}
			if !decodeJSON(w, r, &body) {
				return
			}
			groupID := mux.Vars(r)["id"]

			id, _ := identity.Get(r.Context())
			clientIP := middleware.ClientIP(r).String()
			member, err := groups.AddMember(r.Context(), id.AccountID(), groupID, body.Account, body.Rights)
			if err != nil {
				audit.Log(audit.GroupEvent{
					AccountID:    id.AccountID(),
					GroupID:      groupID,
					Operation:    "add-member",
					MemberID:     body.Account,
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.GroupEvent{
				AccountID: id.AccountID(),
				GroupID:   groupID,
				Operation: "add-member",
				MemberID:  body.Account,
				ClientIP:  clientIP,
				Success:   true,
			})
			respondWithJSON(w, http.StatusCreated, member)
		}),
	).Methods("POST")

	// PUT /group/{id}/members/{account} - replace a member's rights
	router.Handle(
		"/group/{id}/members/{account}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Rights rights.Set `json:"rights"`
			}
			if !decodeJSON(w, r, &body) {
				return
			}
			vars := mux.Vars(r)

			id, _ := identity.Get(r.Context())
			clientIP := middleware.ClientIP(r).String()
			member, err := groups.UpdateMemberRights(r.Context(), id.AccountID(), vars["id"], vars["account"], body.Rights)
			if err != nil {
				audit.Log(audit.GroupEvent{
					AccountID:    id.AccountID(),
					GroupID:      vars["id"],
					Operation:    "update-member",
					MemberID:     vars["account"],
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.GroupEvent{
				AccountID: id.AccountID(),
				GroupID:   vars["id"],
				Operation: "update-member",
				MemberID:  vars["account"],
				ClientIP:  clientIP,
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, member)
		}),
	).Methods("PUT")

	// DELETE /group/{id}/members/{account} - revoke a membership
	router.Handle(
		"/group/{id}/members/{account}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			vars := mux.Vars(r)
			id, _ := identity.Get(r.Context())
			clientIP := middleware.ClientIP(r).String()
			if err := groups.RemoveMember(r.Context(), id.AccountID(), vars["id"], vars["account"]); err != nil {
				audit.Log(audit.GroupEvent{
					AccountID:    id.AccountID(),
					GroupID:      vars["id"],
					Operation:    "remove-member",
					MemberID:     vars["account"],
					ClientIP:     clientIP,
					Success:      false,
					ErrorMessage: err.Error(),
				})
				respondWithAccessError(w, err)
				return
			}

			audit.Log(audit.GroupEvent{
				AccountID: id.AccountID(),
				GroupID:   vars["id"],
				Operation: "remove-member",
				MemberID:  vars["account"],
				ClientIP:  clientIP,
				Success:   true,
			})
			w.WriteHeader(http.StatusNoContent)
		}),
	).Methods("DELETE")
}
