package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crudapp/pkg/session"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "sid"

var hashKey = []byte("0123456789abcdef0123456789abcdef")

func withCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStore_RoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	store := session.NewStore(repo, hashKey)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()

	sess, err := store.New(req, cookieName)
	require.NoError(t, err)
	assert.True(t, sess.IsNew)
	assert.Empty(t, session.Username(sess))

	sess.Values[session.UsernameKey] = "alice"
	require.NoError(t, sess.Save(req, rec))
	require.NotEmpty(t, sess.ID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Equal(t, session.DefaultMaxAge, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotContains(t, cookies[0].Value, "alice", "values stay server side")

	next := withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	loaded, err := store.New(next, cookieName)
	require.NoError(t, err)
	assert.False(t, loaded.IsNew)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, "alice", session.Username(loaded))
}

func TestStore_Expired(t *testing.T) {
	repo, c := newRepo(t)
	store := session.NewStore(repo, hashKey)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	sess, err := store.New(req, cookieName)
	require.NoError(t, err)
	sess.Values[session.UsernameKey] = "alice"
	require.NoError(t, sess.Save(req, rec))

	c.Advance((session.DefaultMaxAge + 1) * time.Second)

	next := withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	loaded, err := store.New(next, cookieName)
	require.NoError(t, err)
	assert.True(t, loaded.IsNew)
	assert.Empty(t, loaded.ID)
	assert.Empty(t, session.Username(loaded))
}

func TestStore_Destroy(t *testing.T) {
	repo, _ := newRepo(t)
	store := session.NewStore(repo, hashKey)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	sess, err := store.New(req, cookieName)
	require.NoError(t, err)
	sess.Values[session.UsernameKey] = "alice"
	require.NoError(t, sess.Save(req, rec))

	logoutReq := withCookies(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)
	logoutRec := httptest.NewRecorder()
	current, err := store.Get(logoutReq, cookieName)
	require.NoError(t, err)
	current.Options.MaxAge = -1
	require.NoError(t, current.Save(logoutReq, logoutRec))

	cleared := logoutRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Less(t, cleared[0].MaxAge, 0)

	_, err = repo.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Replaying the pre-logout cookie must not resurrect the session.
	replay := withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	loaded, err := store.New(replay, cookieName)
	require.NoError(t, err)
	assert.Empty(t, session.Username(loaded))
}

func TestStore_TamperedCookie(t *testing.T) {
	repo, _ := newRepo(t)
	store := session.NewStore(repo, hashKey)

	other := securecookie.New([]byte("ffffffffffffffffffffffffffffffff"), nil)
	forged, err := other.Encode(cookieName, "someid")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: forged})

	sess, err := store.New(req, cookieName)
	assert.Error(t, err)
	require.NotNil(t, sess)
	assert.Empty(t, sess.ID)
	assert.Empty(t, session.Username(sess))
}

type failingRepo struct {
	session.Repository
	err error
}

func (f failingRepo) Delete(context.Context, string) error { return f.err }

func TestStore_DestroyFailure(t *testing.T) {
	repo, _ := newRepo(t)
	good := session.NewStore(repo, hashKey)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	sess, err := good.New(req, cookieName)
	require.NoError(t, err)
	sess.Values[session.UsernameKey] = "alice"
	require.NoError(t, sess.Save(req, rec))

	broken := session.NewStore(failingRepo{Repository: repo, err: errors.New("db down")}, hashKey)
	logoutReq := withCookies(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)
	logoutRec := httptest.NewRecorder()

	current, err := broken.Get(logoutReq, cookieName)
	require.NoError(t, err)
	current.Options.MaxAge = -1

	err = current.Save(logoutReq, logoutRec)
	assert.EqualError(t, err, "db down")
	assert.Empty(t, logoutRec.Result().Cookies())
}
