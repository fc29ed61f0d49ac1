package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ModalConfig configures Modal.
type ModalConfig struct {
	// CloseAction is the route both the backdrop and the dismiss button post to.
	CloseAction string
	ReturnPath  string
	Label       string
}

// Modal renders a dismissible overlay around children. Dismissing it
// (backdrop or ×) posts to CloseAction; the modal never hides itself.
func Modal(c ModalConfig, children ...g.Node) g.Node {
	label := c.Label
	if label == "" {
		label = "Dialog"
	}

	return h.Div(h.Class("modal-container"),
		ActionButton(c.CloseAction, c.ReturnPath,
			ButtonClass("modal-underlay"),
			ButtonAttr(h.Aria("label", "Close dialog"), g.Attr("data-control", "modal-underlay")),
		)(),
		h.Div(h.Class("modal-content"),
			h.Role("dialog"),
			h.Aria("modal", "true"),
			h.Aria("label", label),
			ActionButton(c.CloseAction, c.ReturnPath,
				Variant(ButtonVariantIcon),
				ButtonClass("modal-close"),
				ButtonAttr(h.Aria("label", "Close"), g.Attr("data-control", "modal-close")),
			)(g.Text("×")),
			g.Group(children),
		),
	)
}
