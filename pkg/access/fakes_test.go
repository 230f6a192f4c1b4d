package access

import (
	"context"

	"github.com/lib/pq"

	"github.com/cairncms/cairn/pkg/googleauth"
	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
	"github.com/cairncms/cairn/pkg/server/store"
)

// In-memory stores for unit tests. They index the same way the real
// stores query, including the active-only filters.

type fakeAccounts struct {
	accounts  map[string]*model.Account
	createErr error
}

func newFakeAccounts(accounts ...*model.Account) *fakeAccounts {
	f := &fakeAccounts{accounts: map[string]*model.Account{}}
	for _, a := range accounts {
		f.accounts[a.ID] = a
	}
	return f
}

func (f *fakeAccounts) CreateAccount(_ context.Context, account *model.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
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
	if a, ok := f.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccounts) AccountByEmail(_ context.Context, email string, activeOnly bool) (*model.Account, error) {
	return f.find(activeOnly, func(a *model.Account) bool { return a.Email == email })
}

func (f *fakeAccounts) AccountByUsername(_ context.Context, username string, activeOnly bool) (*model.Account, error) {
	return f.find(activeOnly, func(a *model.Account) bool { return a.Username == username })
}

func (f *fakeAccounts) AccountByApplication(_ context.Context, application string, activeOnly bool) (*model.Account, error) {
	return f.find(activeOnly, func(a *model.Account) bool {
		for _, app := range a.Applications {
			if app == application {
				return true
			}
		}
		return false
	})
}

func (f *fakeAccounts) ActivateAccount(_ context.Context, code string) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.ActivationCode == code {
			a.Active = true
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccounts) find(activeOnly bool, match func(*model.Account) bool) (*model.Account, error) {
	for _, a := range f.accounts {
		if match(a) && (!activeOnly || a.Active) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeSessions struct {
	sessions map[string]*model.Session
}

func newFakeSessions(sessions ...*model.Session) *fakeSessions {
	f := &fakeSessions{sessions: map[string]*model.Session{}}
	for _, s := range sessions {
		f.sessions[s.Token] = s
	}
	return f
}

func (f *fakeSessions) CreateSession(_ context.Context, session *model.Session) error {
	cp := *session
	f.sessions[session.Token] = &cp
	return nil
}

func (f *fakeSessions) SessionByToken(_ context.Context, token string) (*model.Session, error) {
	if s, ok := f.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeSessions) DeleteSession(_ context.Context, token string) error {
	if _, ok := f.sessions[token]; !ok {
		return store.ErrNotFound
	}
	delete(f.sessions, token)
	return nil
}

type memberKey struct{ groupID, accountID string }

type fakeMembers struct {
	members map[memberKey]*model.Member
}

func newFakeMembers(members ...*model.Member) *fakeMembers {
	f := &fakeMembers{members: map[memberKey]*model.Member{}}
	for _, m := range members {
		f.members[memberKey{m.GroupID, m.AccountID}] = m
	}
	return f
}

func (f *fakeMembers) MemberByGroupAndAccount(_ context.Context, groupID, accountID string) (*model.Member, error) {
	if m, ok := f.members[memberKey{groupID, accountID}]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeMembers) MembersByGroup(_ context.Context, groupID string) ([]model.Member, error) {
	var out []model.Member
	for _, m := range f.members {
		if m.GroupID == groupID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembers) MembershipsByAccount(_ context.Context, accountID string) ([]model.Member, error) {
	var out []model.Member
	for _, m := range f.members {
		if m.AccountID == accountID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembers) AddMember(_ context.Context, member *model.Member) error {
	cp := *member
	f.members[memberKey{member.GroupID, member.AccountID}] = &cp
	return nil
}

func (f *fakeMembers) UpdateMemberRights(_ context.Context, groupID, accountID string, set rights.Set) (*model.Member, error) {
	m, ok := f.members[memberKey{groupID, accountID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	m.Rights = set
	cp := *m
	return &cp, nil
}

func (f *fakeMembers) DeleteMember(_ context.Context, groupID, accountID string) error {
	if _, ok := f.members[memberKey{groupID, accountID}]; !ok {
		return store.ErrNotFound
	}
	delete(f.members, memberKey{groupID, accountID})
	return nil
}

type fakeGroups struct {
	groups  map[string]*model.Group
	members *fakeMembers
}

func newFakeGroups(members *fakeMembers, groups ...*model.Group) *fakeGroups {
	f := &fakeGroups{groups: map[string]*model.Group{}, members: members}
	for _, g := range groups {
		f.groups[g.ID] = g
	}
	return f
}

func (f *fakeGroups) CreateGroupWithOwner(ctx context.Context, group *model.Group, owner *model.Member) error {
	cp := *group
	f.groups[group.ID] = &cp
	owner.GroupID = group.ID
	return f.members.AddMember(ctx, owner)
}

func (f *fakeGroups) GroupByID(_ context.Context, id string) (*model.Group, error) {
	if g, ok := f.groups[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeGroups) ListGroups(_ context.Context) ([]model.Group, error) {
	var out []model.Group
	for _, g := range f.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGroups) UpdateGroup(_ context.Context, group *model.Group) (*model.Group, error) {
	existing, ok := f.groups[group.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	existing.Name = group.Name
	existing.Address = group.Address
	existing.Domains = group.Domains
	cp := *existing
	return &cp, nil
}

func (f *fakeGroups) DeleteGroup(_ context.Context, id string) error {
	if _, ok := f.groups[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.groups, id)
	for k, m := range f.members.members {
		if m.GroupID == id {
			delete(f.members.members, k)
		}
	}
	return nil
}

// fakeVerifier returns canned claims or an error
type fakeVerifier struct {
	claims *googleauth.Claims
	err    error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*googleauth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}
