package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AuthMode selects which form the authentication dialog shows.
type AuthMode string

const (
	AuthModeSignUp AuthMode = "signup"
	AuthModeLogin  AuthMode = "login"
)

// ParseAuthMode maps the auth query parameter to a mode, defaulting to sign-up.
func ParseAuthMode(s string) AuthMode {
	if AuthMode(s) == AuthModeLogin {
		return AuthModeLogin
	}
	return AuthModeSignUp
}

// Error codes carried in the error query parameter after a failed submit.
const (
	AuthErrorInvalidEmail       = "invalid_email"
	AuthErrorWeakPassword       = "weak_password"
	AuthErrorEmailTaken         = "email_taken"
	AuthErrorInvalidCredentials = "invalid_credentials"
	AuthErrorServer             = "server"
)

var authErrorMessages = map[string]string{
	AuthErrorInvalidEmail:       "Please enter a valid email address.",
	AuthErrorWeakPassword:       "Passwords must be between 8 and 72 characters.",
	AuthErrorEmailTaken:         "An account with that email already exists. Try logging in.",
	AuthErrorInvalidCredentials: "Incorrect email or password.",
	AuthErrorServer:             "Something went wrong. Please try again.",
}

// AuthErrorMessage returns the user-facing message for code, or "" for unknown codes.
func AuthErrorMessage(code string) string {
	return authErrorMessages[code]
}

// AuthFormConfig configures AuthForm.
type AuthFormConfig struct {
	Mode         AuthMode
	ErrorCode    string
	SignUpAction string
	LoginAction  string
	// CloseAction is posted to by the Cancel button.
	CloseAction string
	ReturnPath  string
}

// AuthForm renders the email/password form for the current mode.
func AuthForm(c AuthFormConfig) g.Node {
	c.Mode = ParseAuthMode(string(c.Mode))

	title, subtitle, submit, action := "Sign up", "Create an account to start tracking!", "Create account", c.SignUpAction
	switchPrompt, switchLabel, switchMode := "Already have an account?", "Log in", AuthModeLogin
	if c.Mode == AuthModeLogin {
		title, subtitle, submit, action = "Log in", "Sign in to your account!", "Log in", c.LoginAction
		switchPrompt, switchLabel, switchMode = "Don't have an account?", "Sign up", AuthModeSignUp
	}

	message := AuthErrorMessage(c.ErrorCode)

	return h.Div(h.Class("auth-form"), g.Attr("data-mode", string(c.Mode)),
		h.H2(h.Class("sign-up-text"), g.Text(title)),
		h.P(g.Text(subtitle)),
		g.If(message != "",
			h.P(h.Class("auth-error"), h.Role("alert"), g.Text(message)),
		),
		g.El("form",
			h.Method("post"),
			h.Action(action),
			h.Input(h.Type("email"), h.Name("email"), h.Placeholder("Email"),
				h.AutoComplete("email"), h.Required()),
			h.Input(h.Type("password"), h.Name("password"), h.Placeholder("********"),
				h.AutoComplete(passwordAutocomplete(c.Mode)), h.Required()),
			Button(ButtonAttr(g.Attr("data-control", "auth-submit")))(
				h.P(g.Text(submit)),
			),
		),
		h.Hr(),
		h.Div(h.Class("register-content"),
			h.P(g.Text(switchPrompt)),
			h.A(h.Href("?auth="+string(switchMode)), g.Text(switchLabel)),
		),
		ActionButton(c.CloseAction, c.ReturnPath,
			Variant(ButtonVariantGhost),
			ButtonAttr(g.Attr("data-control", "auth-cancel")),
		)(g.Text("Cancel")),
	)
}

func passwordAutocomplete(mode AuthMode) string {
	if mode == AuthModeLogin {
		return "current-password"
	}
	return "new-password"
}
