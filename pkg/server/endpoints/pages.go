package endpoints

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cairncms/cairn/pkg/audit"
	"github.com/cairncms/cairn/pkg/identity"
	"github.com/cairncms/cairn/pkg/markdown"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/middleware"
)

// RegisterPageEndpoints registers public page reads and group-gated page
// writes
func RegisterPageEndpoints(srv *server.Server, authn *middleware.SessionAuthenticator) {
	router := srv.Router
	pages := srv.Pages
	resolver := srv.Resolver

	protected := func(h http.HandlerFunc) http.Handler {
		return authn.Middleware(h)
	}

	// GET /pages/domain/{domain} - pages of one site
	router.HandleFunc(
		"/pages/domain/{domain}",
		func(w http.ResponseWriter, r *http.Request) {
			list, err := pages.PagesByDomain(r.Context(), mux.Vars(r)["domain"])
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			respondWithJSON(w, http.StatusOK, list)
		},
	).Methods("GET")

	// GET /pages/link/{link} - a page by its unique link
	router.HandleFunc(
		"/pages/link/{link}",
		func(w http.ResponseWriter, r *http.Request) {
			page, err := pages.PageByLink(r.Context(), mux.Vars(r)["link"])
			if err != nil {
				respondWithError(w, http.StatusNotFound, "page not found")
				return
			}
			respondWithJSON(w, http.StatusOK, page)
		},
	).Methods("GET")

	// GET /pages/{id} - a page by id
	router.HandleFunc(
		"/pages/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			page, err := pages.PageByID(r.Context(), mux.Vars(r)["id"])
			if err != nil {
				respondWithError(w, http.StatusNotFound, "page not found")
				return
			}
			respondWithJSON(w, http.StatusOK, page)
		},
	).Methods("GET")

	// GET /pages/{id}/html - page body rendered to HTML
	router.HandleFunc(
		"/pages/{id}/html",
		func(w http.ResponseWriter, r *http.Request) {
			page, err := pages.PageByID(r.Context(), mux.Vars(r)["id"])
			if err != nil {
				respondWithError(w, http.StatusNotFound, "page not found")
				return
			}
			html, err := markdown.Render(page.Markdown)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(html))
		},
	).Methods("GET")

	// GET /group/{id}/pages - all pages of a group
	router.Handle(
		"/group/{id}/pages",
		protected(func(w http.ResponseWriter, r *http.Request) {
			groupID := mux.Vars(r)["id"]
			id, _ := identity.Get(r.Context())
			if err := resolver.ConfirmGroupPermission(r.Context(), groupID, id.AccountID(), rights.Read); err != nil {
				respondWithAccessError(w, err)
				return
			}
			list, err := pages.PagesByGroup(r.Context(), groupID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			respondWithJSON(w, http.StatusOK, list)
		}),
	).Methods("GET")

	// POST /pages/ - create a page in a group
	router.Handle(
		"/pages/",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body model.Page
			if !decodeJSON(w, r, &body) {
				return
			}
			if body.GroupID == "" || body.Name == "" || body.Link == "" {
				respondWithError(w, http.StatusBadRequest, "group, name and link are required")
				return
			}

			id, _ := identity.Get(r.Context())
			if err := resolver.ConfirmGroupPermission(r.Context(), body.GroupID, id.AccountID(), rights.Write); err != nil {
				respondWithAccessError(w, err)
				return
			}

			body.ID = uuid.NewString()
			body.AuthorID = id.AccountID()
			if err := pages.CreatePage(r.Context(), &body); err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "page",
				ContentID: body.ID,
				Operation: "create",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusCreated, body)
		}),
	).Methods("POST")

	// PUT /pages/{id} - update page fields
	router.Handle(
		"/pages/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body model.Page
			if !decodeJSON(w, r, &body) {
				return
			}
			body.ID = mux.Vars(r)["id"]

			id, _ := identity.Get(r.Context())
			existing, err := pages.PageByID(r.Context(), body.ID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "page not found")
				return
			}
			if err := resolver.ConfirmGroupPermission(r.Context(), existing.GroupID, id.AccountID(), rights.Write); err != nil {
				respondWithAccessError(w, err)
				return
			}

			updated, err := pages.UpdatePage(r.Context(), &body)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "page",
				ContentID: body.ID,
				Operation: "update",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, updated)
		}),
	).Methods("PUT")

	// DELETE /pages/{id} - remove a page
	router.Handle(
		"/pages/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			pageID := mux.Vars(r)["id"]

			id, _ := identity.Get(r.Context())
			existing, err := pages.PageByID(r.Context(), pageID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "page not found")
				return
			}
			if err := resolver.ConfirmGroupPermission(r.Context(), existing.GroupID, id.AccountID(), rights.Delete); err != nil {
				respondWithAccessError(w, err)
				return
			}

			if err := pages.DeletePage(r.Context(), pageID); err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "page",
				ContentID: pageID,
				Operation: "delete",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			w.WriteHeader(http.StatusNoContent)
		}),
	).Methods("DELETE")
}
