// Package layout renders the page shell shared by every page: the header
// with branding and the session control, the optional sign-up modal, the
// caller's body content and the credits footer.
//
// A Layout owns exactly one piece of state, whether the modal is visible.
// Session state is never read implicitly; the caller passes the current
// session into Render on every request.
package layout

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/caffeinetrackr/caffeinetrackr/internal/auth"
	"github.com/caffeinetrackr/caffeinetrackr/internal/templates/components"
)

// Variant is the header's session control decision.
type Variant int

const (
	// VariantAnonymous shows the "Sign up free" control.
	VariantAnonymous Variant = iota
	// VariantAuthenticated shows the logout control.
	VariantAuthenticated
)

func (v Variant) String() string {
	if v == VariantAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// VariantFor picks the header variant from session presence.
func VariantFor(session *auth.SessionData) Variant {
	if session != nil {
		return VariantAuthenticated
	}
	return VariantAnonymous
}

// Brand holds the static header and footer copy.
type Brand struct {
	Name      string
	Tagline   string
	Author    string
	AuthorURL string
	RepoURL   string
}

// DefaultBrand returns the CaffeineTrackr branding.
func DefaultBrand() Brand {
	return Brand{
		Name:      "CaffeineTrackr",
		Tagline:   "For Coffee Aficionados",
		Author:    "Bryan Gonzalez",
		AuthorURL: "#",
		RepoURL:   "https://www.github.com/thewebcoder/",
	}
}

// Routes are the endpoints the layout's controls post to.
type Routes struct {
	OpenModal  string
	CloseModal string
	Logout     string
	SignUp     string
	Login      string
}

// DefaultRoutes returns the routes mounted by the handlers package.
func DefaultRoutes() Routes {
	return Routes{
		OpenModal:  "/ui/modal/open",
		CloseModal: "/ui/modal/close",
		Logout:     "/logout",
		SignUp:     "/auth/signup",
		Login:      "/auth/login",
	}
}

// Layout is one visitor's page shell.
type Layout struct {
	brand        Brand
	routes       Routes
	modalVisible bool
}

type Option func(*Layout)

func WithBrand(b Brand) Option {
	return func(l *Layout) { l.brand = b }
}

func WithRoutes(r Routes) Option {
	return func(l *Layout) { l.routes = r }
}

// WithModalVisible restores a previously saved modal flag.
func WithModalVisible(visible bool) Option {
	return func(l *Layout) { l.modalVisible = visible }
}

// New creates a layout with the modal hidden.
func New(opts ...Option) *Layout {
	l := &Layout{
		brand:  DefaultBrand(),
		routes: DefaultRoutes(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OpenModal is bound to the "Sign up free" control.
func (l *Layout) OpenModal() {
	l.modalVisible = true
}

// CloseModal is the close callback handed to the modal and the auth form.
func (l *Layout) CloseModal() {
	l.modalVisible = false
}

// ModalVisible reports the modal flag.
func (l *Layout) ModalVisible() bool {
	return l.modalVisible
}

// Routes returns the routes the layout renders controls for.
func (l *Layout) Routes() Routes {
	return l.routes
}

// Page is the per-request input to Render.
type Page struct {
	// Session is the signed-in user, or nil.
	Session *auth.SessionData
	// Path is where controls return to after posting.
	Path string
	// AuthMode and AuthError configure the form inside the modal.
	AuthMode  components.AuthMode
	AuthError string
}

func (p Page) returnPath() string {
	if p.Path == "" {
		return "/"
	}
	return p.Path
}

// Render returns the modal (when visible), header, main and footer.
// Children are placed in <main> untouched.
func (l *Layout) Render(p Page, children ...g.Node) g.Node {
	nodes := make([]g.Node, 0, 4)
	if l.modalVisible {
		nodes = append(nodes, l.modal(p))
	}
	nodes = append(nodes, l.header(p), h.Main(children...), l.footer())
	return g.Group(nodes)
}

func (l *Layout) modal(p Page) g.Node {
	ret := p.returnPath()

	return components.Modal(components.ModalConfig{
		CloseAction: l.routes.CloseModal,
		ReturnPath:  ret,
		Label:       "Sign up or log in",
	},
		components.AuthForm(components.AuthFormConfig{
			Mode:         p.AuthMode,
			ErrorCode:    p.AuthError,
			SignUpAction: l.routes.SignUp,
			LoginAction:  l.routes.Login,
			CloseAction:  l.routes.CloseModal,
			ReturnPath:   ret,
		}),
	)
}

func (l *Layout) header(p Page) g.Node {
	return h.Header(
		h.Div(
			h.H1(h.Class("text-gradient"), g.Text(l.brand.Name)),
			h.P(g.Text(l.brand.Tagline)),
		),
		l.sessionControl(p),
	)
}

func (l *Layout) sessionControl(p Page) g.Node {
	switch VariantFor(p.Session) {
	case VariantAuthenticated:
		return components.ActionButton(l.routes.Logout, p.returnPath(),
			components.ButtonAttr(g.Attr("data-control", "logout")),
		)(h.P(g.Text("Logout")))
	default:
		return components.ActionButton(l.routes.OpenModal, p.returnPath(),
			components.ButtonAttr(g.Attr("data-control", "signup")),
		)(
			h.P(g.Text("Sign up free")),
			h.I(h.Class("fa-solid fa-mug-hot")),
		)
	}
}

func (l *Layout) footer() g.Node {
	return h.Footer(
		h.P(
			h.Span(h.Class("text-gradient"), g.Text(l.brand.Name)),
			g.Text(" was made by "),
			h.A(h.Href(l.brand.AuthorURL), h.Target("_blank"), g.Text(l.brand.Author)),
			h.Br(),
			g.Text("Check out the project on "),
			h.A(h.Target("_blank"), h.Href(l.brand.RepoURL), g.Text("GitHub")),
			g.Text("!"),
		),
	)
}
