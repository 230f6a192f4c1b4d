package endpoints

import (
	"errors"
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
	"github.com/cairncms/cairn/pkg/server/store"
)

// RegisterArticleEndpoints registers public article reads and
// group-gated article writes
func RegisterArticleEndpoints(srv *server.Server, authn *middleware.SessionAuthenticator) {
	router := srv.Router
	articles := srv.Articles
	resolver := srv.Resolver

	protected := func(h http.HandlerFunc) http.Handler {
		return authn.Middleware(h)
	}

	// GET /articles/ - published articles, newest first
	router.HandleFunc(
		"/articles/",
		func(w http.ResponseWriter, r *http.Request) {
			list, err := articles.PublicArticles(r.Context())
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			respondWithJSON(w, http.StatusOK, list)
		},
	).Methods("GET")

	// GET /articles/domain/{domain} - published articles of one site
	router.HandleFunc(
		"/articles/domain/{domain}",
		func(w http.ResponseWriter, r *http.Request) {
			list, err := articles.PublicArticlesByDomain(r.Context(), mux.Vars(r)["domain"])
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			respondWithJSON(w, http.StatusOK, list)
		},
	).Methods("GET")

	// GET /articles/{id} - a single published article; counts the read
	router.HandleFunc(
		"/articles/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			articleID := mux.Vars(r)["id"]
			article, err := articles.ArticleByID(r.Context(), articleID)
			if err != nil || !article.Publish {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}
			// Read counting is best effort.
			_ = articles.IncrementArticleRead(r.Context(), articleID)
			respondWithJSON(w, http.StatusOK, article)
		},
	).Methods("GET")

	// GET /articles/{id}/html - article body rendered to HTML
	router.HandleFunc(
		"/articles/{id}/html",
		func(w http.ResponseWriter, r *http.Request) {
			article, err := articles.ArticleByID(r.Context(), mux.Vars(r)["id"])
			if err != nil || !article.Publish {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}
			html, err := markdown.Render(article.Markdown)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(html))
		},
	).Methods("GET")

	// GET /group/{id}/articles - all articles of a group, drafts included
	router.Handle(
		"/group/{id}/articles",
		protected(func(w http.ResponseWriter, r *http.Request) {
			groupID := mux.Vars(r)["id"]
			id, _ := identity.Get(r.Context())
			if err := resolver.ConfirmGroupPermission(r.Context(), groupID, id.AccountID(), rights.Read); err != nil {
				respondWithAccessError(w, err)
				return
			}
			list, err := articles.ArticlesByGroup(r.Context(), groupID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			respondWithJSON(w, http.StatusOK, list)
		}),
	).Methods("GET")

	// POST /articles/ - create a draft article in a group
	router.Handle(
		"/articles/",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body model.Article
			if !decodeJSON(w, r, &body) {
				return
			}
			if body.GroupID == "" || body.Header == "" {
				respondWithError(w, http.StatusBadRequest, "group and header are required")
				return
			}

			id, _ := identity.Get(r.Context())
			if err := resolver.ConfirmGroupPermission(r.Context(), body.GroupID, id.AccountID(), rights.Write); err != nil {
				respondWithAccessError(w, err)
				return
			}

			body.ID = uuid.NewString()
			body.AuthorID = id.AccountID()
			if body.Author == "" {
				body.Author = id.Account.Username
			}
			body.Publish = false
			body.Read = 0
			if err := articles.CreateArticle(r.Context(), &body); err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "article",
				ContentID: body.ID,
				Operation: "create",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusCreated, body)
		}),
	).Methods("POST")

	// PUT /articles/{id} - update article fields
	router.Handle(
		"/articles/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body model.Article
			if !decodeJSON(w, r, &body) {
				return
			}
			body.ID = mux.Vars(r)["id"]

			id, _ := identity.Get(r.Context())
			existing, err := articles.ArticleByID(r.Context(), body.ID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}
			if err := resolver.ConfirmGroupPermission(r.Context(), existing.GroupID, id.AccountID(), rights.Write); err != nil {
				respondWithAccessError(w, err)
				return
			}

			updated, err := articles.UpdateArticle(r.Context(), &body)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					respondWithError(w, http.StatusNotFound, "article not found")
					return
				}
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "article",
				ContentID: body.ID,
				Operation: "update",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, updated)
		}),
	).Methods("PUT")

	// PUT /articles/{id}/publish - flip the publish flag
	router.Handle(
		"/articles/{id}/publish",
		protected(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Publish bool `json:"publish"`
			}
			if !decodeJSON(w, r, &body) {
				return
			}
			articleID := mux.Vars(r)["id"]

			id, _ := identity.Get(r.Context())
			existing, err := articles.ArticleByID(r.Context(), articleID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}
			if err := resolver.ConfirmGroupPermission(r.Context(), existing.GroupID, id.AccountID(), rights.Write); err != nil {
				respondWithAccessError(w, err)
				return
			}

			updated, err := articles.SetArticlePublish(r.Context(), articleID, body.Publish)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "article",
				ContentID: articleID,
				Operation: "publish",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			respondWithJSON(w, http.StatusOK, updated)
		}),
	).Methods("PUT")

	// DELETE /articles/{id} - remove an article
	router.Handle(
		"/articles/{id}",
		protected(func(w http.ResponseWriter, r *http.Request) {
			articleID := mux.Vars(r)["id"]

			id, _ := identity.Get(r.Context())
			existing, err := articles.ArticleByID(r.Context(), articleID)
			if err != nil {
				respondWithError(w, http.StatusNotFound, "article not found")
				return
			}
			if err := resolver.ConfirmGroupPermission(r.Context(), existing.GroupID, id.AccountID(), rights.Delete); err != nil {
				respondWithAccessError(w, err)
				return
			}

			if err := articles.DeleteArticle(r.Context(), articleID); err != nil {
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			audit.Log(audit.ContentEvent{
				AccountID: id.AccountID(),
				Kind:      "article",
				ContentID: articleID,
				Operation: "delete",
				ClientIP:  middleware.ClientIP(r).String(),
				Success:   true,
			})
			w.WriteHeader(http.StatusNoContent)
		}),
	).Methods("DELETE")
}
