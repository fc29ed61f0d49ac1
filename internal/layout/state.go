package layout

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

// StateCookieName is the cookie holding a visitor's layout state.
const StateCookieName = "caffeinetrackr_ui"

// state is the persisted part of a Layout.
type state struct {
	ModalVisible bool
}

// StateStore keeps each visitor's Layout between requests in an
// authenticated, encrypted cookie.
type StateStore struct {
	cookie *securecookie.SecureCookie
	name   string
	secure bool
	opts   []Option
}

// NewStateStore creates a state store. The secret must be at least 64
// bytes: first 32 for the hash key, next 32 for the block key. opts are
// applied to every Layout the store loads.
func NewStateStore(secret string, secure bool, opts ...Option) *StateStore {
	return &StateStore{
		cookie: securecookie.New([]byte(secret)[:32], []byte(secret)[32:64]),
		name:   StateCookieName,
		secure: secure,
		opts:   opts,
	}
}

// Load returns the visitor's Layout. A missing or undecodable cookie
// yields a fresh Layout with the modal hidden.
func (s *StateStore) Load(r *http.Request) *Layout {
	var st state

	if cookie, err := r.Cookie(s.name); err == nil {
		if err := s.cookie.Decode(s.name, cookie.Value, &st); err != nil {
			st = state{}
		}
	}

	opts := make([]Option, 0, len(s.opts)+1)
	opts = append(opts, s.opts...)
	opts = append(opts, WithModalVisible(st.ModalVisible))
	return New(opts...)
}

// Routes returns the event routes of the Layouts this store loads.
func (s *StateStore) Routes() Routes {
	return New(s.opts...).Routes()
}

// Save writes the Layout's state to the response. The cookie lives for
// the browser session.
func (s *StateStore) Save(w http.ResponseWriter, l *Layout) error {
	encoded, err := s.cookie.Encode(s.name, state{ModalVisible: l.ModalVisible()})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
