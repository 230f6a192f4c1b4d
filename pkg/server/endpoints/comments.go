package endpoints

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cairncms/cairn/pkg/audit"
	"github.com/cairncms/cairn/pkg/identity"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/middleware"
)

// RegisterCommentEndpoints registers comment reads, anonymous comment
// submission and group-gated moderation
func RegisterCommentEndpoints(srv *server.Server, authn *middleware.SessionAuthenticator) {
	router := srv.Router
	comments := srv.Comments
	articles := srv.Articles
	resolver := srv.Resolver

	protected := func(h http.HandlerFunc) http.Handler {
		return authn.Middleware(h)
	}

	// GET /articles/{id}/comments - approved comments of an article
	router.HandleFunc(
		"/articles/{id}/comments",
		func(w http.ResponseWriter, r *http.Request) {
			list, err := comments.PublicCommentsByArticle(r.Context(), mux.Vars(r)["id"])
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			respondWithJSON(w, http.StatusOK, list)
		},
	).Methods("GET")

	// POST /comments/ - submit a comment, session optional. Comments
	// start out non-public until a group writer approves them.
	router.HandleFunc(
		"/comments/",
		func(w http.ResponseWriter, r *http.Request) {
			var body model.Comment
			if !decodeJSON(w, r, &body) {
				return
			}
			if body.ArticleID == "" || body.Body == "" {
				respondWithError(w, http.StatusBadRequest, "article and body are required")
				return
			}
			if _, err := articles.ArticleByID(r.Context(), body.ArticleID); err != nil {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}

			body.ID = uuid.NewString()
			body.Public = false
			body.AuthorID = ""
			if token := middleware.TokenFromRequest(r); token != "" {
				if _, account, err := srv.Manager.ConfirmToken(r.Context(), token); err == nil {
					body.AuthorID = account.ID
					if body.Author == "" {
						body.Author = account.Username
					}
				}
			}

			if err := comments.CreateComment(r.Context(), &body); err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: body.AuthorID,
				Kind:      "comment",
				ContentID: body.ID,
				Operation: "create",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusCreated, body)
		},
	).Methods("POST")

	// PUT /comments/{id} - edit a comment. Allowed for the comment's
	// author; anyone else needs WRITE in the article's group.
	router.Handle(
		"/comments/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body model.Comment
			if !decodeJSON(w, r, &body) {
				return
			}
			body.ID = mux.Vars(r)["id"]

			comment, err := comments.CommentByID(r.Context(), body.ID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "comment not found")
				return
			}

			id, _ := identity.Get(r.Context())
			if comment.AuthorID == "" || comment.AuthorID != id.AccountID() {
				article, err := articles.ArticleByID(r.Context(), comment.ArticleID)
				if err != nil {
					respondWithError(w, http.StatusNotFound, "article not found")
					return
				}
				if err := resolver.ConfirmGroupPermission(r.Context(), article.GroupID, id.AccountID(), rights.Write); err != nil {
					respondWithAccessError(w, err)
					return
				}
			}

			if body.Author == "" {
				body.Author = comment.Author
			}
			updated, err := comments.UpdateComment(r.Context(), &body)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "comment",
				ContentID: body.ID,
				Operation: "update",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, updated)
		}),
	).Methods("PUT")

	// PUT /comments/{id}/approve - make a comment public
	router.Handle(
		"/comments/{id}/approve",
		protected(func(w http.ResponseWriter, r *http.Request) {
			commentID := mux.Vars(r)["id"]

			comment, err := comments.CommentByID(r.Context(), commentID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "comment not found")
				return
			}
			article, err := articles.ArticleByID(r.Context(), comment.ArticleID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}

			id, _ := identity.Get(r.Context())
			if err := resolver.ConfirmGroupPermission(r.Context(), article.GroupID, id.AccountID(), rights.Write); err != nil {
				respondWithAccessError(w, err)
				return
			}

			approved, err := comments.ApproveComment(r.Context(), commentID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "comment",
				ContentID: commentID,
				Operation: "approve",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, approved)
		}),
	).Methods("PUT")

	// DELETE /comments/{id} - remove a comment
	router.Handle(
		"/comments/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			commentID := mux.Vars(r)["id"]

			comment, err := comments.CommentByID(r.Context(), commentID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "comment not found")
				return
			}
			article, err := articles.ArticleByID(r.Context(), comment.ArticleID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}

			id, _ := identity.Get(r.Context())
			if err := resolver.ConfirmGroupPermission(r.Context(), article.GroupID, id.AccountID(), rights.Delete); err != nil {
				respondWithAccessError(w, err)
				return
			}

			if err := comments.DeleteComment(r.Context(), commentID); err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "comment",
				ContentID: commentID,
				Operation: "delete",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			w.WriteHeader(http.StatusNoContent)
		}),
	).Methods("DELETE")
}
