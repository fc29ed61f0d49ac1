package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ReturnField is the form field naming the path to redirect to after an action.
const ReturnField = "return"

type ButtonVariant string

const (
	ButtonVariantPrimary ButtonVariant = "primary"
	ButtonVariantGhost   ButtonVariant = "ghost"
	ButtonVariantLink    ButtonVariant = "link"
	ButtonVariantIcon    ButtonVariant = "icon"
)

// ButtonConfig configures Button and ActionButton.
type ButtonConfig struct {
	Variant ButtonVariant
	Classes []string
	Attrs   []g.Node
}

type ButtonOption func(*ButtonConfig)

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

// ButtonClass adds utility classes, merged via CN.
func ButtonClass(class string) ButtonOption {
	return func(c *ButtonConfig) { c.Classes = append(c.Classes, class) }
}

// ButtonAttr passes raw attributes to the <button> element.
func ButtonAttr(attrs ...g.Node) ButtonOption {
	return func(c *ButtonConfig) { c.Attrs = append(c.Attrs, attrs...) }
}

// Button renders a submit button.
func Button(opts ...ButtonOption) func(children ...g.Node) g.Node {
	c := &ButtonConfig{Variant: ButtonVariantPrimary}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN("btn", buttonVariant(c.Variant), strings.Join(c.Classes, " "))

	return func(children ...g.Node) g.Node {
		nodes := make([]g.Node, 0, len(c.Attrs)+len(children)+2)
		nodes = append(nodes, h.Type("submit"), h.Class(finalClass))
		nodes = append(nodes, c.Attrs...)
		nodes = append(nodes, children...)
		return h.Button(nodes...)
	}
}

// ActionButton renders a one-button POST form. The current path travels
// in the return field so the handler can redirect back to it.
func ActionButton(action, returnPath string, opts ...ButtonOption) func(children ...g.Node) g.Node {
	button := Button(opts...)

	return func(children ...g.Node) g.Node {
		return g.El("form",
			h.Method("post"),
			h.Action(action),
			h.Class("action-form"),
			h.Input(h.Type("hidden"), h.Name(ReturnField), h.Value(returnPath)),
			button(children...),
		)
	}
}

func buttonVariant(v ButtonVariant) string {
	switch v {
	case ButtonVariantGhost:
		return "btn-ghost"
	case ButtonVariantLink:
		return "btn-link"
	case ButtonVariantIcon:
		return "btn-icon"
	default:
		return "btn-primary"
	}
}

// CN merges class lists, dropping exact duplicates and keeping first-seen order.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}
