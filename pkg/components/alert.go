package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// AlertType is the severity of an alert.
type AlertType int

const (
	AlertPrimary AlertType = iota
	AlertInfo
	AlertSuccess
	AlertWarning
	AlertDanger
)

var alertTypeNames = []string{"primary", "info", "success", "warning", "danger"}

func (t AlertType) String() string               { return enumName(t, alertTypeNames) }
func (t AlertType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *AlertType) UnmarshalText(text []byte) error {
	return parseEnum(t, text, alertTypeNames, "alert type")
}

// DefaultCloseLabel is the accessible name of the alert close button.
const DefaultCloseLabel = "Chiudi avviso"

// AlertProps configures an alert.
type AlertProps struct {
	Base `yaml:",inline"`

	Type        AlertType `yaml:"type"`
	Title       string    `yaml:"title,omitempty"`
	Text        string    `yaml:"text"`
	Dismissible bool      `yaml:"dismissible,omitempty"`
	// CloseLabel overrides DefaultCloseLabel.
	CloseLabel string `yaml:"close_label,omitempty"`

	Children templ.Component `yaml:"-"`
	// OnClose runs after a successful Dismiss.
	OnClose func(ctx context.Context) error `yaml:"-"`
}

// Alert renders an open alert.
func Alert(p AlertProps) templ.Component {
	return NewAlert(p)
}

// AlertState is a rendered alert that remembers whether it was dismissed.
// It is not safe for concurrent use.
type AlertState struct {
	props       AlertProps
	dismissible []string
	closed      bool
}

// NewAlert returns an open alert.
func NewAlert(p AlertProps) *AlertState {
	return &AlertState{
		props:       p,
		dismissible: []string{"alert-dismissible", "fade", "show"},
	}
}

// Props returns the alert configuration.
func (a *AlertState) Props() AlertProps {
	return a.props
}

// Closed reports whether the alert was dismissed.
func (a *AlertState) Closed() bool {
	return a.closed
}

// Classes returns the current class attribute.
func (a *AlertState) Classes() string {
	return a.classes().Add(a.props.Class).Build()
}

func (a *AlertState) classes() *css.Builder {
	b := css.New("alert", "alert-"+a.props.Type.String())
	if a.props.Dismissible {
		b.AddRange(a.dismissible...)
	}

	return b
}

// Dismiss closes the alert and fires OnClose. It fails with
// ERR_INVALID_OPERATION when the alert is not dismissible.
func (a *AlertState) Dismiss(ctx context.Context) error {
	if !a.props.Dismissible {
		return errors.NewInvalidOperationError("alert is not dismissible").
			WithComponent("alert")
	}

	kept := a.dismissible[:0]
	for _, class := range a.dismissible {
		if class != "show" {
			kept = append(kept, class)
		}
	}
	a.dismissible = kept
	a.closed = true

	if a.props.OnClose != nil {
		return a.props.OnClose(ctx)
	}

	return nil
}

// Render implements templ.Component. A closed alert renders nothing.
func (a *AlertState) Render(ctx context.Context, w io.Writer) error {
	if a.closed {
		return nil
	}
	p := a.props

	var title, closeButton templ.Component
	if p.Title != "" {
		title = markup.El("h4", markup.A("class", "alert-heading"), markup.Text(p.Title))
	}
	if p.Dismissible {
		label := p.CloseLabel
		if label == "" {
			label = DefaultCloseLabel
		}
		closeButton = markup.El("button",
			markup.A("type", "button", "class", "btn-close", "data-bs-dismiss", "alert", "aria-label", label),
			Icon(IconProps{Name: IconClose, Hidden: true}),
		)
	}

	var body templ.Component
	if p.Children != nil {
		body = p.Children
	} else if p.Text != "" {
		body = markup.El("p", nil, markup.Text(p.Text))
	}

	return markup.El("div",
		p.root(a.classes(), "role", "alert"),
		title,
		body,
		closeButton,
	).Render(ctx, w)
}
