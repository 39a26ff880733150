package form

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/markup"
)

// Wire layouts of date and time inputs.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DatepickerProps configures a date input. A zero Value is empty.
type DatepickerProps struct {
	InputProps `yaml:",inline"`

	Value time.Time  `yaml:"value,omitempty"`
	Min   *time.Time `yaml:"min,omitempty"`
	Max   *time.Time `yaml:"max,omitempty"`

	OnChange func(ctx context.Context, value time.Time) error `yaml:"-"`
}

// Datepicker is a native date input.
type Datepicker struct {
	field[time.Time]
	props DatepickerProps
}

// NewDatepicker validates p and returns the field.
func NewDatepicker(p DatepickerProps) (*Datepicker, error) {
	if err := validate("datepicker", p); err != nil {
		return nil, err
	}
	if p.Min != nil && p.Max != nil && p.Max.Before(*p.Min) {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidProps,
			"max date is before min date").WithComponent("datepicker")
	}

	return &Datepicker{
		field: newField("date", p.FieldProps, p.Value, time.Time.IsZero, p.OnChange),
		props: p,
	}, nil
}

// ParseValue sets the value from the wire format; blank text clears it.
func (d *Datepicker) ParseValue(ctx context.Context, text string) error {
	v, err := parseTime(DateLayout, text)
	if err != nil {
		return err
	}

	return d.SetValue(ctx, v)
}

// Render implements templ.Component.
func (d *Datepicker) Render(ctx context.Context, w io.Writer) error {
	return renderTimeInput(ctx, w, &d.field, d.props.InputProps, "date", DateLayout, d.props.Min, d.props.Max)
}

// TimepickerProps configures a time of day input. Only the clock part of
// Value is used; a zero Value is empty.
type TimepickerProps struct {
	InputProps `yaml:",inline"`

	Value time.Time `yaml:"value,omitempty"`

	OnChange func(ctx context.Context, value time.Time) error `yaml:"-"`
}

// Timepicker is a native time input.
type Timepicker struct {
	field[time.Time]
	props TimepickerProps
}

// NewTimepicker validates p and returns the field.
func NewTimepicker(p TimepickerProps) (*Timepicker, error) {
	if err := validate("timepicker", p); err != nil {
		return nil, err
	}

	return &Timepicker{
		field: newField("time", p.FieldProps, p.Value, time.Time.IsZero, p.OnChange),
		props: p,
	}, nil
}

// ParseValue sets the value from the wire format; blank text clears it.
func (t *Timepicker) ParseValue(ctx context.Context, text string) error {
	v, err := parseTime(TimeLayout, text)
	if err != nil {
		return err
	}

	return t.SetValue(ctx, v)
}

// Render implements templ.Component.
func (t *Timepicker) Render(ctx context.Context, w io.Writer) error {
	return renderTimeInput(ctx, w, &t.field, t.props.InputProps, "time", TimeLayout, nil, nil)
}

// renderTimeInput renders date and time inputs. Their label is always
// raised because browsers draw a format hint inside the input.
func renderTimeInput(ctx context.Context, w io.Writer, f *field[time.Time], p InputProps, inputType, layout string, min, max *time.Time) error {
	return group(
		f.label("active"),
		markup.Void("input", f.inputAttrs(
			"type", inputType,
			"class", InputClasses(p),
			"value", formatTime(f.value, layout),
			"min", formatTimePtr(min, layout),
			"max", formatTimePtr(max, layout),
			"readonly", p.Readonly,
		)),
		f.validationMessage(),
	).Render(ctx, w)
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(layout)
}

func formatTimePtr(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}

	return t.Format(layout)
}

func parseTime(layout, text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}

	v, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, errors.NewValidationError(errors.ErrCodeInvalidProps,
			fmt.Sprintf("%q does not match layout %s", text, layout)).
			WithCause(err).
			WithComponent("form")
	}

	return v, nil
}
