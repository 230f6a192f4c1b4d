package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cairncms/cairn/pkg/model"
	"github.com/cairncms/cairn/pkg/rights"
)

func (ts *testServer) seedPage(t *testing.T, id, groupID, link string) {
	t.Helper()
	ts.pages.mu.Lock()
	ts.pages.pages[id] = &model.Page{
		ID:       id,
		GroupID:  groupID,
		AuthorID: "acc-author",
		Name:     "page " + id,
		Link:     link,
		Markdown: "about us",
		Domain:   "example.org",
	}
	ts.pages.mu.Unlock()
}

func TestPageByLink(t *testing.T) {
	ts := newTestServer()
	ts.seedPage(t, "page-1", "grp-1", "about")

	rec := ts.do(t, http.MethodGet, "/pages/link/about", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page model.Page
	decodeBody(t, rec, &page)
	assert.Equal(t, "page-1", page.ID)

	rec = ts.do(t, http.MethodGet, "/pages/link/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageByID(t *testing.T) {
	ts := newTestServer()
	ts.seedPage(t, "page-1", "grp-1", "about")

	rec := ts.do(t, http.MethodGet, "/pages/page-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page model.Page
	decodeBody(t, rec, &page)
	assert.Equal(t, "about", page.Link)

	rec = ts.do(t, http.MethodGet, "/pages/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageRendersHTML(t *testing.T) {
	ts := newTestServer()
	ts.seedPage(t, "page-1", "grp-1", "about")
	ts.pages.pages["page-1"].Markdown = "# About\n\nwho we are"

	rec := ts.do(t, http.MethodGet, "/pages/page-1/html", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1>About</h1>")
}

func TestPagesByDomain(t *testing.T) {
	ts := newTestServer()
	ts.seedPage(t, "page-1", "grp-1", "about")

	rec := ts.do(t, http.MethodGet, "/pages/domain/example.org", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []model.Page
	decodeBody(t, rec, &list)
	assert.Len(t, list, 1)
}

func TestCreatePageValidatesInput(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")
	ts.seedGroup(t, "grp-1", "acc-1", rights.Full)
	token := ts.seedSession(t, "acc-1")

	rec := ts.do(t, http.MethodPost, "/pages/", token, map[string]string{
		"group": "grp-1",
		"name":  "About",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUpdateDeletePage(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")
	ts.seedGroup(t, "grp-1", "acc-1", rights.Full)
	token := ts.seedSession(t, "acc-1")

	rec := ts.do(t, http.MethodPost, "/pages/", token, map[string]string{
		"group":    "grp-1",
		"name":     "About",
		"link":     "about",
		"markdown": "who we are",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Page
	decodeBody(t, rec, &created)
	assert.Equal(t, "acc-1", created.AuthorID)

	rec = ts.do(t, http.MethodPut, "/pages/"+created.ID, token, map[string]string{
		"markdown": "who we really are",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Page
	decodeBody(t, rec, &updated)
	assert.Equal(t, "who we really are", updated.Markdown)

	rec = ts.do(t, http.MethodDelete, "/pages/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/pages/link/about", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageWritesRequireMembershipRights(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")
	ts.seedGroup(t, "grp-1", "acc-1", rights.Read)
	ts.seedPage(t, "page-1", "grp-1", "about")
	token := ts.seedSession(t, "acc-1")

	rec := ts.do(t, http.MethodPost, "/pages/", token, map[string]string{
		"group": "grp-1",
		"name":  "New",
		"link":  "new",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/pages/page-1", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
