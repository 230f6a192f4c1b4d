package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	gormdb "gorm.io/gorm"

	"github.com/cairncms/cairn/pkg/access"
	"github.com/cairncms/cairn/pkg/config"
	"github.com/cairncms/cairn/pkg/googleauth"
	"github.com/cairncms/cairn/pkg/mailer"
	"github.com/cairncms/cairn/pkg/server/store"
	storegorm "github.com/cairncms/cairn/pkg/server/store/gorm"
)

// Server wires the stores and services behind the HTTP API
type Server struct {
	Router *mux.Router
	DB     *gormdb.DB
	Config *config.Config

	Accounts store.AccountsStore
	Sessions store.SessionsStore
	Groups   store.GroupsStore
	Members  store.MembersStore
	Articles store.ArticlesStore
	Pages    store.PagesStore
	Comments store.CommentsStore
	Health   store.HealthStore

	Manager   *access.Manager
	GroupsSvc *access.Groups
	Registrar *access.Registrar
	Resolver  *access.Resolver
	Mailer    mailer.Mailer

	srv *http.Server
}

// NewServer builds a server from a database connection and configuration.
// verifier may be nil when google sign-in is not configured.
func NewServer(db *gormdb.DB, cfg *config.Config, verifier googleauth.Verifier) *Server {
	accounts := storegorm.NewAccountsStore(db)
	sessions := storegorm.NewSessionsStore(db)
	groups := storegorm.NewGroupsStore(db)
	members := storegorm.NewMembersStore(db)

	var mail mailer.Mailer
	if cfg.SMTPAddr != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)
	} else {
		mail = mailer.NewLogMailer()
	}

	groupsSvc := access.NewGroups(groups, members)

	router := mux.NewRouter().UseEncodedPath()

	var handler http.Handler = router
	if len(cfg.AllowedOrigins) > 0 {
		handler = handlers.CORS(
			handlers.AllowedOrigins(cfg.AllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		)(handler)
	}
	handler = handlers.LoggingHandler(os.Stdout, handler)

	srv := &http.Server{
		Handler: handler,
		Addr:    cfg.BindAddress + ":" + cfg.Port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:    router,
		DB:        db,
		Config:    cfg,
		Accounts:  accounts,
		Sessions:  sessions,
		Groups:    groups,
		Members:   members,
		Articles:  storegorm.NewArticlesStore(db),
		Pages:     storegorm.NewPagesStore(db),
		Comments:  storegorm.NewCommentsStore(db),
		Health:    storegorm.NewHealthStore(db),
		Manager:   access.NewManager(accounts, sessions, verifier, cfg.SessionTTL()),
		GroupsSvc: groupsSvc,
		Registrar: access.NewRegistrar(accounts, mail, cfg.PublicBaseURL),
		Resolver:  groupsSvc.Resolver(),
		Mailer:    mail,
		srv:       srv,
	}
}

// Start runs the HTTP server until it fails
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
