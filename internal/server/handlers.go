package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/accessibility"
	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/registry"
	"github.com/conneroisu/italia/internal/version"
	"github.com/conneroisu/italia/pkg/numeric"
)

// errorResponse is the JSON body of every failed API call.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// componentSummary is the API view of a registry entry.
type componentSummary struct {
	Name        string             `json:"name"`
	Title       string             `json:"title"`
	Category    registry.Category  `json:"category"`
	Description string             `json:"description,omitempty"`
	Examples    []registry.Example `json:"examples"`
}

// stepResponse is the result of /api/numeric/step.
type stepResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// healthResponse is the body of /health.
type healthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Components int    `json:"components"`
	Problems   int    `json:"problems"`
	Clients    int    `json:"clients"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeHTML(w, r, http.StatusOK, s.indexPage())
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	entry, ok := s.registry.Get(name)
	if !ok {
		s.writeError(w, r, errors.NewValidationError(errors.ErrCodeComponentNotFound,
			fmt.Sprintf("component %q is not registered", name)))
		return
	}

	s.writeHTML(w, r, http.StatusOK, s.componentPage(r.Context(), entry))
}

// handleRender serves one example as a bare HTML fragment.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderHTML(s.renderContext(r.Context()), r.PathValue("name"), r.PathValue("example"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleAPIComponents(w http.ResponseWriter, r *http.Request) {
	entries := s.registry.List()
	out := make([]componentSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, componentSummary{
			Name:        e.Name,
			Title:       e.Title,
			Category:    e.Category,
			Description: e.Description,
			Examples:    e.Examples,
		})
	}

	s.writeJSON(w, http.StatusOK, out)
}

// handleAudit runs the accessibility rules over every example of one
// component. The level query parameter selects A or AA rules.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	cfg := accessibility.AuditConfiguration{
		WCAGLevel: accessibility.WCAGLevel(strings.ToUpper(r.URL.Query().Get("level"))),
	}

	ctx := s.renderContext(r.Context())
	reports, err := s.auditor.AuditRegistry(ctx, s.registry, cfg, r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, reports)
}

// handleStep applies one numeric step:
// /api/numeric/step?type=int32&value=5&min=0&max=10&step=2&factor=1
// Blank or missing operands are absent and take their defaults.
func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind, err := numeric.ParseKind(q.Get("type"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	operands := make([]any, 4)
	for i, name := range []string{"value", "min", "max", "step"} {
		v, err := numeric.Parse(kind, q.Get(name))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		operands[i] = v
	}

	factor := 1
	if raw := q.Get("factor"); raw != "" {
		factor, err = strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, errors.NewValidationError(errors.ErrCodeInvalidNumber,
				fmt.Sprintf("factor %q is not an integer", raw)).WithComponent("numeric"))
			return
		}
	}

	result, err := numeric.Step(kind, operands[0], operands[1], operands[2], operands[3], factor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	value, err := numeric.FormatAny(result, "")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, stepResponse{Type: kind.String(), Value: value})
}

func (s *Server) handleDismissAlert(w http.ResponseWriter, r *http.Request) {
	status, err := s.alerts.dismiss(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.hub.Broadcast(UpdateMessage{Type: MessageReload, Target: alertComponent, Event: "dismissed"})
	s.writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Version:    version.Get().Short(),
		Components: s.registry.Count(),
		Problems:   len(s.catalog.Problems()),
		Clients:    s.hub.ClientCount(),
	})
}

func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(s.renderContext(r.Context()), w); err != nil {
		s.errors.Handle(r.Context(), errors.NewRenderError(errors.ErrCodeRenderFailed, "page render failed", err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError logs err and answers with its status and code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.errors.Handle(r.Context(), err)
	s.writeJSON(w, statusOf(err), errorResponse{Error: err.Error(), Code: errors.CodeOf(err)})
}

// statusOf maps an error to its HTTP status.
func statusOf(err error) int {
	switch errors.CodeOf(err) {
	case errors.ErrCodeComponentNotFound, errors.ErrCodeExampleNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidOperation:
		return http.StatusConflict
	case errors.ErrCodeUnsupportedType, errors.ErrCodeInvalidNumber, errors.ErrCodeTypeMismatch,
		errors.ErrCodeInvalidProps, errors.ErrCodeInvalidOption:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
