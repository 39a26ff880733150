package server

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/accessibility"
	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/internal/registry"
	"github.com/conneroisu/italia/pkg/components"
)

// liveReloadScript reloads the page on registry changes and reports
// dismissed alerts back to the server.
const liveReloadScript = `(function () {
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + "/ws");
  ws.onmessage = function (event) {
    var msg = JSON.parse(event.data);
    if (msg.type === "reload" || msg.type === "examples_error") {
      location.reload();
    }
  };
  document.addEventListener("click", function (event) {
    var button = event.target.closest("[data-alert-id] .btn-close");
    if (!button) return;
    var id = button.closest("[data-alert-id]").getAttribute("data-alert-id");
    fetch("/api/alerts/" + encodeURIComponent(id) + "/dismiss", { method: "POST" });
  });
})();`

// renderedExample is one example rendered for the gallery.
type renderedExample struct {
	example    registry.Example
	html       string
	err        error
	violations int
	dismissed  bool
}

// renderContext carries what components need from the gallery config.
func (s *Server) renderContext(ctx context.Context) context.Context {
	return components.WithSpriteURL(ctx, s.config.Assets.SpriteURL)
}

// page wraps body in the gallery document.
func (s *Server) page(title string, body ...templ.Component) templ.Component {
	assets := s.config.Assets
	gallery := s.config.Gallery

	fullTitle := gallery.Title
	if title != "" {
		fullTitle = title + " · " + gallery.Title
	}

	var stylesheet, script templ.Component
	if assets.StylesheetURL != "" {
		stylesheet = markup.Void("link", markup.A("rel", "stylesheet", "href", assets.StylesheetURL))
	}
	if assets.ScriptURL != "" {
		script = markup.El("script", markup.A("src", assets.ScriptURL))
	}

	return markup.Fragment(
		templ.Raw("<!DOCTYPE html>"),
		markup.El("html", markup.A("lang", gallery.Lang),
			markup.El("head", nil,
				markup.Void("meta", markup.A("charset", "utf-8")),
				markup.Void("meta", markup.A("name", "viewport", "content", "width=device-width, initial-scale=1")),
				markup.El("title", nil, markup.Text(fullTitle)),
				stylesheet,
			),
			markup.El("body", nil,
				markup.El("header", markup.A("class", "it-header-slim-wrapper"),
					markup.El("div", markup.A("class", "container"),
						markup.El("a", markup.A("class", "it-brand-title text-white", "href", templ.SafeURL("/")),
							markup.Text(gallery.Title)),
					),
				),
				markup.El("main", markup.A("class", "container my-4"), body...),
				script,
				markup.El("script", nil, templ.Raw(liveReloadScript)),
			),
		),
	)
}

// problemsOverlay lists the errors of the last examples load.
func (s *Server) problemsOverlay() templ.Component {
	problems := s.catalog.Problems()
	if len(problems) == 0 {
		return nil
	}

	items := make([]templ.Component, 0, len(problems))
	for _, p := range problems {
		items = append(items, markup.El("li", nil, markup.Text(p.Error())))
	}

	return components.Alert(components.AlertProps{
		Base:  components.Base{ID: "examples-errors"},
		Type:  components.AlertDanger,
		Title: "Examples file errors",
		Children: markup.El("ul", markup.A("class", "mb-0"), items...),
	})
}

func (s *Server) indexPage() templ.Component {
	groups := make(map[string][]*registry.Entry)
	for _, e := range s.registry.List() {
		groups[string(e.Category)] = append(groups[string(e.Category)], e)
	}

	sections := []templ.Component{
		markup.El("h1", nil, markup.Text(s.config.Gallery.Title)),
		s.problemsOverlay(),
	}

	for _, category := range sortedKeys(groups) {
		items := make([]templ.Component, 0, len(groups[category]))
		for _, e := range groups[category] {
			items = append(items, markup.El("li", markup.A("class", "mb-2", "data-component", e.Name),
				markup.El("a", markup.A("href", templ.SafeURL("/components/"+e.Name)), markup.Text(e.Title)),
				markup.Text(" "),
				components.Badge(components.BadgeProps{
					Text:    fmt.Sprintf("%d", len(e.Examples)),
					Color:   components.ColorSecondary,
					Rounded: true,
				}),
				markup.If(e.Description != "", markup.El("p", markup.A("class", "small mb-0"), markup.Text(e.Description))),
			))
		}

		sections = append(sections, markup.El("section", markup.A("id", "category-"+category),
			markup.El("h2", nil, markup.Text(s.caser.String(category))),
			markup.El("ul", markup.A("class", "list-unstyled"), items...),
		))
	}

	return s.page("", sections...)
}

// renderExamples renders every example of e and audits the output.
func (s *Server) renderExamples(ctx context.Context, e *registry.Entry) []renderedExample {
	ctx = s.renderContext(ctx)
	out := make([]renderedExample, 0, len(e.Examples))

	for _, ex := range e.Examples {
		r := renderedExample{example: ex}

		if e.Name == alertComponent {
			if st, err := s.alerts.status(ex.Name); err == nil && st.Closed {
				r.dismissed = true
				out = append(out, r)
				continue
			}
		}

		r.html, r.err = s.renderHTML(ctx, e.Name, ex.Name)
		if r.err != nil {
			s.errors.Handle(ctx, r.err)
		} else if report, err := s.auditor.Analyze(ctx, r.html, accessibility.AuditConfiguration{}); err == nil {
			r.violations = len(report.Violations)
		}

		out = append(out, r)
	}

	return out
}

// renderHTML renders one example to a string.
func (s *Server) renderHTML(ctx context.Context, name, example string) (string, error) {
	c, err := s.registry.Render(ctx, name, example)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("render %s/%s: %w", name, example, err)
	}

	return buf.String(), nil
}

func (s *Server) componentPage(ctx context.Context, e *registry.Entry) templ.Component {
	category := s.caser.String(string(e.Category))

	sections := []templ.Component{
		components.Breadcrumb(components.BreadcrumbProps{
			Items: []components.BreadcrumbItem{
				{Text: s.config.Gallery.Title, Link: "/"},
				{Text: category, Link: "/#category-" + string(e.Category)},
				{Text: e.Title},
			},
		}),
		markup.El("h1", nil, markup.Text(e.Title)),
		markup.If(e.Description != "", markup.El("p", markup.A("class", "lead"), markup.Text(e.Description))),
		s.problemsOverlay(),
	}

	for _, r := range s.renderExamples(ctx, e) {
		sections = append(sections, s.exampleSection(e, r))
	}

	return s.page(e.Title, sections...)
}

func (s *Server) exampleSection(e *registry.Entry, r renderedExample) templ.Component {
	ex := r.example

	var preview templ.Component
	switch {
	case r.dismissed:
		preview = markup.El("p", markup.A("class", "text-muted"), markup.Text("Dismissed"))
	case r.err != nil:
		preview = components.Alert(components.AlertProps{
			Type:  components.AlertDanger,
			Title: "Render failed",
			Text:  r.err.Error(),
		})
	default:
		preview = templ.Raw(r.html)
	}

	violationColor := components.ColorSuccess
	if r.violations > 0 {
		violationColor = components.ColorWarning
	}

	var alertID any
	if e.Name == alertComponent {
		alertID = ex.Name
	}

	return markup.El("section", markup.A("class", "mb-5", "id", "example-"+ex.Name, "data-example", ex.Name),
		markup.El("h2", markup.A("class", "h4"), markup.Text(ex.Name)),
		markup.If(ex.Description != "", markup.El("p", nil, markup.Text(ex.Description))),
		markup.El("p", nil,
			components.Badge(components.BadgeProps{Text: string(ex.Source), Color: components.ColorSecondary}),
			markup.Text(" "),
			markup.If(!r.dismissed && r.err == nil, components.Badge(components.BadgeProps{
				Base:  components.Base{Class: "a11y-violations"},
				Text:  fmt.Sprintf("%d a11y", r.violations),
				Color: violationColor,
			})),
			markup.Text(" "),
			markup.El("a", markup.A("href", templ.SafeURL("/render/"+e.Name+"/"+ex.Name)), markup.Text("fragment")),
		),
		markup.El("div", markup.A("class", "gallery-preview border p-3", "data-alert-id", alertID), preview),
		markup.If(r.html != "", markup.El("details", markup.A("class", "mt-2"),
			markup.El("summary", nil, markup.Text("HTML")),
			markup.El("pre", nil, markup.El("code", nil, markup.Text(strings.TrimSpace(r.html)))),
		)),
	)
}
