package endpoints

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/lib/pq"

	"github.com/cairncms/cairn/pkg/access"
	"github.com/cairncms/cairn/pkg/config"
	"github.com/cairncms/cairn/pkg/googleauth"
	"github.com/cairncms/cairn/pkg/mailer"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/store"
)

// In-memory stores backing the HTTP tests. They index the same way the
// real stores query so the handlers cannot tell the difference.

type fakeAccounts struct {
	mu       sync.Mutex
	accounts map[string]*model.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{accounts: make(map[string]*model.Account)}
}

func (f *fakeAccounts) CreateAccount(_ context.Context, account *model.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == account.Email || a.Username == account.Username {
			return &pq.Error{Code: "23505"}
		}
	}
	cp := *account
	f.accounts[account.ID] = &cp
	return nil
}

func (f *fakeAccounts) AccountByID(_ context.Context, id string) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccounts) AccountByEmail(_ context.Context, email string, activeOnly bool) (*model.Account, error) {
	return f.find(func(a *model.Account) bool { return a.Email == email }, activeOnly)
}

func (f *fakeAccounts) AccountByUsername(_ context.Context, username string, activeOnly bool) (*model.Account, error) {
	return f.find(func(a *model.Account) bool { return a.Username == username }, activeOnly)
}

func (f *fakeAccounts) AccountByApplication(_ context.Context, application string, activeOnly bool) (*model.Account, error) {
	return f.find(func(a *model.Account) bool {
		for _, app := range a.Applications {
			if app == application {
				return true
			}
		}
		return false
	}, activeOnly)
}

func (f *fakeAccounts) ActivateAccount(_ context.Context, code string) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.ActivationCode == code {
			a.Active = true
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccounts) find(match func(*model.Account) bool, activeOnly bool) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if match(a) && (!activeOnly || a.Active) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*model.Session)}
}

func (f *fakeSessions) CreateSession(_ context.Context, session *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	cp := *session
	f.sessions[session.Token] = &cp
	return nil
}

func (f *fakeSessions) SessionByToken(_ context.Context, token string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeSessions) DeleteSession(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[token]; !ok {
		return store.ErrNotFound
	}
	delete(f.sessions, token)
	return nil
}

type memberKey struct{ group, account string }

type fakeMembers struct {
	mu      sync.Mutex
	members map[memberKey]*model.Member
}

func newFakeMembers() *fakeMembers {
	return &fakeMembers{members: make(map[memberKey]*model.Member)}
}

func (f *fakeMembers) MemberByGroupAndAccount(_ context.Context, groupID, accountID string) (*model.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.members[memberKey{groupID, accountID}]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeMembers) MembersByGroup(_ context.Context, groupID string) ([]model.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Member
	for key, m := range f.members {
		if key.group == groupID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembers) MembershipsByAccount(_ context.Context, accountID string) ([]model.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Member
	for key, m := range f.members {
		if key.account == accountID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembers) AddMember(_ context.Context, member *model.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *member
	f.members[memberKey{member.GroupID, member.AccountID}] = &cp
	return nil
}

func (f *fakeMembers) UpdateMemberRights(_ context.Context, groupID, accountID string, set rights.Set) (*model.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[memberKey{groupID, accountID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	m.Rights = set
	cp := *m
	return &cp, nil
}

func (f *fakeMembers) DeleteMember(_ context.Context, groupID, accountID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := memberKey{groupID, accountID}
	if _, ok := f.members[key]; !ok {
		return store.ErrNotFound
	}
	delete(f.members, key)
	return nil
}

type fakeGroups struct {
	mu      sync.Mutex
	groups  map[string]*model.Group
	members *fakeMembers
}

func newFakeGroups(members *fakeMembers) *fakeGroups {
	return &fakeGroups{groups: make(map[string]*model.Group), members: members}
}

func (f *fakeGroups) CreateGroupWithOwner(ctx context.Context, group *model.Group, owner *model.Member) error {
	f.mu.Lock()
	cp := *group
	f.groups[group.ID] = &cp
	f.mu.Unlock()
	owner.GroupID = group.ID
	return f.members.AddMember(ctx, owner)
}

func (f *fakeGroups) GroupByID(_ context.Context, id string) (*model.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.groups[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeGroups) ListGroups(_ context.Context) ([]model.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Group
	for _, g := range f.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGroups) UpdateGroup(_ context.Context, group *model.Group) (*model.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.groups[group.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if group.Name != "" {
		existing.Name = group.Name
	}
	if group.Address != "" {
		existing.Address = group.Address
	}
	if group.Domains != "" {
		existing.Domains = group.Domains
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeGroups) DeleteGroup(_ context.Context, id string) error {
	f.mu.Lock()
	if _, ok := f.groups[id]; !ok {
		f.mu.Unlock()
		return store.ErrNotFound
	}
	delete(f.groups, id)
	f.mu.Unlock()

	// Memberships go with the group, like the real transactional delete.
	f.members.mu.Lock()
	defer f.members.mu.Unlock()
	for key := range f.members.members {
		if key.group == id {
			delete(f.members.members, key)
		}
	}
	return nil
}

type fakeArticles struct {
	mu       sync.Mutex
	articles map[string]*model.Article
}

func newFakeArticles() *fakeArticles {
	return &fakeArticles{articles: make(map[string]*model.Article)}
}

func (f *fakeArticles) CreateArticle(_ context.Context, article *model.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *article
	f.articles[article.ID] = &cp
	return nil
}

func (f *fakeArticles) ArticleByID(_ context.Context, id string) (*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.articles[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeArticles) PublicArticles(_ context.Context) ([]model.Article, error) {
	return f.filter(func(a *model.Article) bool { return a.Publish }), nil
}

func (f *fakeArticles) PublicArticlesByDomain(_ context.Context, domain string) ([]model.Article, error) {
	return f.filter(func(a *model.Article) bool { return a.Publish && a.Domain == domain }), nil
}

func (f *fakeArticles) ArticlesByGroup(_ context.Context, groupID string) ([]model.Article, error) {
	return f.filter(func(a *model.Article) bool { return a.GroupID == groupID }), nil
}

func (f *fakeArticles) UpdateArticle(_ context.Context, article *model.Article) (*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.articles[article.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if article.Header != "" {
		existing.Header = article.Header
	}
	if article.Markdown != "" {
		existing.Markdown = article.Markdown
	}
	if article.Domain != "" {
		existing.Domain = article.Domain
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeArticles) SetArticlePublish(_ context.Context, id string, publish bool) (*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.articles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	existing.Publish = publish
	cp := *existing
	return &cp, nil
}

func (f *fakeArticles) IncrementArticleRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.articles[id]
	if !ok {
		return store.ErrNotFound
	}
	existing.Read++
	return nil
}

func (f *fakeArticles) DeleteArticle(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.articles[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticles) filter(match func(*model.Article) bool) []model.Article {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Article
	for _, a := range f.articles {
		if match(a) {
			out = append(out, *a)
		}
	}
	return out
}

type fakePages struct {
	mu    sync.Mutex
	pages map[string]*model.Page
}

func newFakePages() *fakePages {
	return &fakePages{pages: make(map[string]*model.Page)}
}

func (f *fakePages) CreatePage(_ context.Context, page *model.Page) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *page
	f.pages[page.ID] = &cp
	return nil
}

func (f *fakePages) PageByID(_ context.Context, id string) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.pages[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakePages) PageByLink(_ context.Context, link string) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pages {
		if p.Link == link {
			cp := *p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePages) PagesByDomain(_ context.Context, domain string) ([]model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Page
	for _, p := range f.pages {
		if p.Domain == domain {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePages) PagesByGroup(_ context.Context, groupID string) ([]model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Page
	for _, p := range f.pages {
		if p.GroupID == groupID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePages) UpdatePage(_ context.Context, page *model.Page) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.pages[page.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if page.Name != "" {
		existing.Name = page.Name
	}
	if page.Markdown != "" {
		existing.Markdown = page.Markdown
	}
	cp := *existing
	return &cp, nil
}

func (f *fakePages) DeletePage(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pages[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.pages, id)
	return nil
}

type fakeComments struct {
	mu       sync.Mutex
	comments map[string]*model.Comment
}

func newFakeComments() *fakeComments {
	return &fakeComments{comments: make(map[string]*model.Comment)}
}

func (f *fakeComments) CreateComment(_ context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeComments) CommentByID(_ context.Context, id string) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeComments) PublicCommentsByArticle(_ context.Context, articleID string) ([]model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Comment
	for _, c := range f.comments {
		if c.ArticleID == articleID && c.Public {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComments) UpdateComment(_ context.Context, comment *model.Comment) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.comments[comment.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if comment.Body != "" {
		existing.Body = comment.Body
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeComments) ApproveComment(_ context.Context, id string) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	existing.Public = true
	cp := *existing
	return &cp, nil
}

func (f *fakeComments) DeleteComment(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

type fakeHealth struct {
	err error
}

func (f *fakeHealth) Ping(_ context.Context) error {
	return f.err
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	to, subject, body string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

var _ mailer.Mailer = (*recordingMailer)(nil)

// fakeVerifier hands out canned Google claims; the zero value rejects
// every token
type fakeVerifier struct {
	claims *googleauth.Claims
	err    error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*googleauth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.claims == nil {
		return nil, errors.New("no verified claims")
	}
	return f.claims, nil
}

// testServer bundles a fully wired server with handles to the fakes
// behind it
type testServer struct {
	srv      *server.Server
	accounts *fakeAccounts
	sessions *fakeSessions
	groups   *fakeGroups
	members  *fakeMembers
	articles *fakeArticles
	pages    *fakePages
	comments *fakeComments
	health   *fakeHealth
	mail     *recordingMailer
	verifier *fakeVerifier
}

func newTestServer() *testServer {
	accounts := newFakeAccounts()
	sessions := newFakeSessions()
	members := newFakeMembers()
	groups := newFakeGroups(members)
	articles := newFakeArticles()
	pages := newFakePages()
	comments := newFakeComments()
	health := &fakeHealth{}
	mail := &recordingMailer{}
	verifier := &fakeVerifier{}

	cfg := &config.Config{
		PublicBaseURL:        "http://cairn.test",
		SMTPFrom:             "owner@cairn.test",
		SessionTTLHours:      720,
		ContactWindowSeconds: 3600,
		ContactMaxPerWindow:  2,
	}

	groupsSvc := access.NewGroups(groups, members)

	srv := &server.Server{
		Router:    mux.NewRouter().UseEncodedPath(),
		Config:    cfg,
		Accounts:  accounts,
		Sessions:  sessions,
		Groups:    groups,
		Members:   members,
		Articles:  articles,
		Pages:     pages,
		Comments:  comments,
		Health:    health,
		Manager:   access.NewManager(accounts, sessions, verifier, cfg.SessionTTL()),
		GroupsSvc: groupsSvc,
		Registrar: access.NewRegistrar(accounts, mail, cfg.PublicBaseURL),
		Resolver:  groupsSvc.Resolver(),
		Mailer:    mail,
	}
	RegisterAll(srv)

	return &testServer{
		srv:      srv,
		accounts: accounts,
		sessions: sessions,
		groups:   groups,
		members:  members,
		articles: articles,
		pages:    pages,
		comments: comments,
		health:   health,
		mail:     mail,
		verifier: verifier,
	}
}
