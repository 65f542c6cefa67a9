package session

// Store implements https://pkg.go.dev/github.com/gorilla/sessions#Store
// on top of a Repository. The cookie carries only the signed session id;
// values live server side.

import (
	"context"
	"encoding/base32"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

var base32RawStdEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type Store struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options // default configuration
	repo    Repository
	now     func() time.Time
}

func NewStore(repo Repository, keyPairs ...[]byte) *Store {
	s := &Store{
		Codecs: securecookie.CodecsFromPairs(keyPairs...),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   DefaultMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		repo: repo,
		now:  time.Now,
	}

	s.MaxAge(s.Options.MaxAge)
	return s
}

// Get returns a session for the given name after adding it to the registry.
func (s *Store) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns a session for the given name without adding it to the registry.
// A cookie that points at an unknown or expired session yields a fresh
// session and no error.
func (s *Store) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, errCookie := r.Cookie(name)
	if errCookie != nil {
		return session, nil
	}

	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...); err != nil {
		session.ID = ""
		return session, err
	}

	err := s.load(r.Context(), session)
	switch {
	case err == nil:
		session.IsNew = false
	case errors.Is(err, ErrNotFound):
		session.ID = ""
		err = nil
	}
	return session, err
}

// Save persists the session and (re)issues the cookie. A session whose
// Options.MaxAge is <= 0 is deleted from the repository and its cookie cleared.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge <= 0 {
		if err := s.erase(r.Context(), session); err != nil {
			return err
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = base32RawStdEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
	}
	if err := s.save(r.Context(), session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// MaxAge sets the maximum age for the store and the underlying cookie
// implementation. Individual sessions can be deleted by setting
// Options.MaxAge = -1 for that session.
func (s *Store) MaxAge(age int) {
	s.Options.MaxAge = age

	for _, codec := range s.Codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(age)
		}
	}
}

func (s *Store) save(ctx context.Context, session *sessions.Session) error {
	encoded, err := securecookie.EncodeMulti(session.Name(), session.Values, s.Codecs...)
	if err != nil {
		return err
	}

	now := s.now()
	return s.repo.Save(ctx, Record{
		ID:        session.ID,
		Data:      encoded,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Duration(session.Options.MaxAge) * time.Second),
	})
}

func (s *Store) load(ctx context.Context, session *sessions.Session) error {
	rec, err := s.repo.Get(ctx, session.ID)
	if err != nil {
		return err
	}
	if rec.Expired(s.now()) {
		return ErrNotFound
	}

	return securecookie.DecodeMulti(session.Name(), rec.Data, &session.Values, s.Codecs...)
}

func (s *Store) erase(ctx context.Context, session *sessions.Session) error {
	if session.ID == "" {
		return nil
	}
	return s.repo.Delete(ctx, session.ID)
}
