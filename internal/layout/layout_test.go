package layout_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/caffeinetrackr/caffeinetrackr/internal/auth"
	"github.com/caffeinetrackr/caffeinetrackr/internal/layout"
	"github.com/caffeinetrackr/caffeinetrackr/internal/templates/components"
)

func render(t *testing.T, l *layout.Layout, p layout.Page, children ...g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, l.Render(p, children...).Render(&b))
	return b.String()
}

func testSession() *auth.SessionData {
	return &auth.SessionData{
		UserID:      uuid.New(),
		Email:       "user@example.com",
		MemberSince: time.Now(),
	}
}

func TestVariantFor(t *testing.T) {
	assert.Equal(t, layout.VariantAnonymous, layout.VariantFor(nil))
	assert.Equal(t, layout.VariantAuthenticated, layout.VariantFor(testSession()))
	assert.Equal(t, "anonymous", layout.VariantAnonymous.String())
	assert.Equal(t, "authenticated", layout.VariantAuthenticated.String())
}

func TestRender_AnonymousShowsSignUpOnly(t *testing.T) {
	html := render(t, layout.New(), layout.Page{Path: "/"})

	assert.Contains(t, html, `data-control="signup"`)
	assert.Contains(t, html, "Sign up free")
	assert.Contains(t, html, `action="/ui/modal/open"`)
	assert.NotContains(t, html, `data-control="logout"`)
	assert.NotContains(t, html, `action="/logout"`)
}

func TestRender_AuthenticatedShowsLogoutOnly(t *testing.T) {
	html := render(t, layout.New(), layout.Page{Path: "/", Session: testSession()})

	assert.Contains(t, html, `data-control="logout"`)
	assert.Contains(t, html, `action="/logout"`)
	assert.NotContains(t, html, `data-control="signup"`)
	assert.NotContains(t, html, "Sign up free")
}

func TestModal_StateMachine(t *testing.T) {
	l := layout.New()
	assert.False(t, l.ModalVisible(), "modal starts hidden")

	l.OpenModal()
	assert.True(t, l.ModalVisible())
	l.OpenModal()
	assert.True(t, l.ModalVisible(), "open is idempotent")

	l.CloseModal()
	assert.False(t, l.ModalVisible())
	l.CloseModal()
	assert.False(t, l.ModalVisible(), "close is idempotent")

	l.OpenModal()
	assert.True(t, l.ModalVisible(), "toggles indefinitely")
}

func TestRender_ModalFollowsFlag(t *testing.T) {
	l := layout.New()
	page := layout.Page{Path: "/"}

	html := render(t, l, page)
	assert.NotContains(t, html, `role="dialog"`)

	l.OpenModal()
	html = render(t, l, page)
	assert.Contains(t, html, `role="dialog"`)
	assert.Contains(t, html, `action="/auth/signup"`)
	assert.Contains(t, html, `data-mode="signup"`)
	assert.Contains(t, html, `data-control="modal-close"`)
	assert.Contains(t, html, `data-control="auth-cancel"`)
	// Modal is rendered ahead of the header
	assert.Less(t, strings.Index(html, `role="dialog"`), strings.Index(html, "<header>"))

	l.CloseModal()
	html = render(t, l, page)
	assert.NotContains(t, html, `role="dialog"`)
}

func TestRender_ModalFormMode(t *testing.T) {
	l := layout.New(layout.WithModalVisible(true))

	html := render(t, l, layout.Page{
		Path:      "/",
		AuthMode:  components.AuthModeLogin,
		AuthError: components.AuthErrorInvalidCredentials,
	})

	assert.Contains(t, html, `data-mode="login"`)
	assert.Contains(t, html, `action="/auth/login"`)
	assert.Contains(t, html, "Incorrect email or password.")
}

func TestRender_ChildrenVerbatim(t *testing.T) {
	child := h.Section(h.ID("stats"), h.P(g.Text("3 cups today")))
	expected := `<main><section id="stats"><p>3 cups today</p></section></main>`

	for _, session := range []*auth.SessionData{nil, testSession()} {
		for _, visible := range []bool{false, true} {
			l := layout.New(layout.WithModalVisible(visible))
			html := render(t, l, layout.Page{Path: "/", Session: session}, child)
			assert.Contains(t, html, expected, "session=%v modal=%v", session != nil, visible)
		}
	}
}

func TestRender_NoChildren(t *testing.T) {
	html := render(t, layout.New(), layout.Page{})
	assert.Contains(t, html, "<main></main>")
}

func TestRender_HeaderAndFooter(t *testing.T) {
	html := render(t, layout.New(), layout.Page{Path: "/"})

	assert.Contains(t, html, `<h1 class="text-gradient">CaffeineTrackr</h1>`)
	assert.Contains(t, html, "For Coffee Aficionados")
	assert.Contains(t, html, "<footer>")
	assert.Contains(t, html, "Bryan Gonzalez")
	assert.Contains(t, html, `href="https://www.github.com/thewebcoder/"`)
}

func TestRender_ReturnPath(t *testing.T) {
	html := render(t, layout.New(), layout.Page{Path: "/account"})
	assert.Contains(t, html, `name="return" value="/account"`)

	html = render(t, layout.New(), layout.Page{})
	assert.Contains(t, html, `name="return" value="/"`)
}

func TestRender_CustomBrandAndRoutes(t *testing.T) {
	brand := layout.DefaultBrand()
	brand.Name = "DecafTrackr"

	routes := layout.DefaultRoutes()
	routes.OpenModal = "/open"

	l := layout.New(layout.WithBrand(brand), layout.WithRoutes(routes))
	html := render(t, l, layout.Page{Path: "/"})

	assert.Contains(t, html, "DecafTrackr")
	assert.Contains(t, html, `action="/open"`)
	assert.Equal(t, routes, l.Routes())
}
