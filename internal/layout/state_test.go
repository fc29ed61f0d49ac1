package layout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinetrackr/caffeinetrackr/internal/layout"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestStateStore_NoCookieStartsHidden(t *testing.T) {
	store := layout.NewStateStore(testSecret, false)

	l := store.Load(httptest.NewRequest("GET", "/", nil))
	assert.False(t, l.ModalVisible())
}

func TestStateStore_RoundTrip(t *testing.T) {
	store := layout.NewStateStore(testSecret, false)

	l := layout.New()
	l.OpenModal()

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, l))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, layout.StateCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	assert.True(t, store.Load(req).ModalVisible())

	l.CloseModal()
	w = httptest.NewRecorder()
	require.NoError(t, store.Save(w, l))

	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(w.Result().Cookies()[0])
	assert.False(t, store.Load(req).ModalVisible())
}

func TestStateStore_TamperedCookieStartsHidden(t *testing.T) {
	store := layout.NewStateStore(testSecret, false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: layout.StateCookieName, Value: "modal=open"})

	assert.False(t, store.Load(req).ModalVisible())
}

func TestStateStore_OtherSecretStartsHidden(t *testing.T) {
	l := layout.New()
	l.OpenModal()

	w := httptest.NewRecorder()
	require.NoError(t, layout.NewStateStore(testSecret, false).Save(w, l))

	other := layout.NewStateStore("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210", false)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(w.Result().Cookies()[0])

	assert.False(t, other.Load(req).ModalVisible())
}

func TestStateStore_AppliesOptions(t *testing.T) {
	routes := layout.DefaultRoutes()
	routes.Logout = "/sign-out"

	store := layout.NewStateStore(testSecret, true, layout.WithRoutes(routes))
	l := store.Load(httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "/sign-out", l.Routes().Logout)

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, l))
	assert.True(t, w.Result().Cookies()[0].Secure)
}

func TestStateStore_Routes(t *testing.T) {
	assert.Equal(t, layout.DefaultRoutes(), layout.NewStateStore(testSecret, false).Routes())

	routes := layout.DefaultRoutes()
	routes.OpenModal = "/modal/show"
	store := layout.NewStateStore(testSecret, false, layout.WithRoutes(routes))

	assert.Equal(t, routes, store.Routes())
	assert.Equal(t, routes, store.Load(httptest.NewRequest("GET", "/", nil)).Routes())
}
