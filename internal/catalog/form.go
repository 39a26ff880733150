package catalog

import (
	"context"
	"time"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"github.com/conneroisu/italia/internal/registry"
	ui "github.com/conneroisu/italia/pkg/components"
	"github.com/conneroisu/italia/pkg/form"
	"github.com/conneroisu/italia/pkg/numeric"
)

// built adapts a field constructor to a render function.
func built[P any, F templ.Component](fn func(P) (F, error)) func(context.Context, P) (templ.Component, error) {
	return func(_ context.Context, p P) (templ.Component, error) {
		f, err := fn(p)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

func input(label string) form.InputProps {
	return form.InputProps{FieldProps: form.FieldProps{Label: label}}
}

func textFieldDefinition() kind {
	required := input("Email")
	required.Required = true
	required.Placeholder = "nome@example.it"

	invalid := input("Codice fiscale")
	invalid.ValidationMessage = "Il codice fiscale non è valido"

	return definition[form.TextFieldProps]{
		name:        "text-field",
		title:       "Text field",
		category:    registry.CategoryForm,
		description: "Single line input with floating label.",
		render:      built(form.NewTextField),
		examples: []example[form.TextFieldProps]{
			{name: "default", props: form.TextFieldProps{InputProps: input("Nome")}},
			{name: "email", props: form.TextFieldProps{InputProps: required, Type: form.TextTypeEmail}},
			{name: "value", props: form.TextFieldProps{InputProps: input("Comune"), Value: "Roma"}},
			{name: "invalid", props: form.TextFieldProps{InputProps: invalid, Value: "RSSMRA"}},
			{name: "small", props: form.TextFieldProps{InputProps: form.InputProps{
				FieldProps: form.FieldProps{Label: "CAP"}, Size: ui.SizeSmall,
			}}},
		},
	}
}

func textAreaDefinition() kind {
	return definition[form.TextAreaFieldProps]{
		name:        "textarea",
		title:       "Text area",
		category:    registry.CategoryForm,
		description: "Multi line input.",
		render:      built(form.NewTextAreaField),
		examples: []example[form.TextAreaFieldProps]{
			{name: "default", props: form.TextAreaFieldProps{InputProps: input("Messaggio"), Rows: 3}},
			{name: "readonly", props: form.TextAreaFieldProps{
				InputProps: form.InputProps{FieldProps: form.FieldProps{Label: "Note"}, Readonly: true},
				Value:      "Testo non modificabile.",
			}},
		},
	}
}

func passwordDefinition() kind {
	return definition[form.PasswordFieldProps]{
		name:        "password",
		title:       "Password",
		category:    registry.CategoryForm,
		description: "Password input with a visibility switch.",
		render:      built(form.NewPasswordField),
		examples: []example[form.PasswordFieldProps]{
			{name: "default", props: form.PasswordFieldProps{InputProps: input("Password")}},
			{name: "disabled", props: form.PasswordFieldProps{InputProps: form.InputProps{
				FieldProps: form.FieldProps{Label: "Password", Disabled: true},
			}}},
		},
	}
}

// NumberFieldExampleProps describes a number field whose value type is
// chosen at runtime. Values are written as text and parsed as Kind.
type NumberFieldExampleProps struct {
	form.InputProps `yaml:",inline"`

	// Kind defaults to int32.
	Kind     numeric.Kind `yaml:"kind,omitempty"`
	Value    string       `yaml:"value,omitempty"`
	Min      string       `yaml:"min,omitempty"`
	Max      string       `yaml:"max,omitempty"`
	Step     string       `yaml:"step,omitempty"`
	Nullable bool         `yaml:"nullable,omitempty"`
}

// NumberFieldExample builds the number field described by p.
func NumberFieldExample(_ context.Context, p NumberFieldExampleProps) (templ.Component, error) {
	numberKind := p.Kind
	if numberKind == numeric.KindInvalid {
		numberKind = numeric.KindInt32
	}

	switch numberKind {
	case numeric.KindInt16:
		return numberField[int16](numberKind, p)
	case numeric.KindInt64:
		return numberField[int64](numberKind, p)
	case numeric.KindFloat32:
		return numberField[float32](numberKind, p)
	case numeric.KindFloat64:
		return numberField[float64](numberKind, p)
	case numeric.KindDecimal:
		return numberField[decimal.Decimal](numberKind, p)
	default:
		return numberField[int32](numberKind, p)
	}
}

func numberField[T numeric.Number](numberKind numeric.Kind, p NumberFieldExampleProps) (templ.Component, error) {
	var operands [4]*T
	for i, text := range []string{p.Value, p.Min, p.Max, p.Step} {
		v, err := numeric.Parse(numberKind, text)
		if err != nil {
			return nil, err
		}
		if v != nil {
			t := v.(T)
			operands[i] = &t
		}
	}

	f, err := form.NewNumberField(form.NumberFieldProps[T]{
		InputProps: p.InputProps,
		Value:      operands[0],
		Min:        operands[1],
		Max:        operands[2],
		Step:       operands[3],
		Nullable:   p.Nullable,
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

func numberFieldDefinition() kind {
	return definition[NumberFieldExampleProps]{
		name:        "number-field",
		title:       "Number field",
		category:    registry.CategoryForm,
		description: "Numeric input with increment and decrement buttons.",
		render:      NumberFieldExample,
		examples: []example[NumberFieldExampleProps]{
			{name: "integer", props: NumberFieldExampleProps{InputProps: input("Quantità"), Value: "1", Min: "0", Max: "10"}},
			{name: "decimal", description: "Amount in euro with cent steps", props: NumberFieldExampleProps{
				InputProps: input("Importo"), Kind: numeric.KindDecimal, Value: "12.50", Min: "0", Step: "0.01",
			}},
			{name: "nullable", props: NumberFieldExampleProps{InputProps: input("Anno"), Kind: numeric.KindInt16, Nullable: true}},
			{name: "float", props: NumberFieldExampleProps{InputProps: input("Percentuale"), Kind: numeric.KindFloat64, Value: "2.5", Min: "0", Max: "100", Step: "0.5"}},
			{name: "readonly", props: NumberFieldExampleProps{
				InputProps: form.InputProps{FieldProps: form.FieldProps{Label: "Totale"}, Readonly: true},
				Kind:       numeric.KindInt64, Value: "42",
			}},
		},
	}
}

func checkboxDefinition() kind {
	return definition[form.CheckboxProps]{
		name:        "checkbox",
		title:       "Checkbox",
		category:    registry.CategoryForm,
		description: "Boolean check input.",
		render:      built(form.NewCheckbox),
		examples: []example[form.CheckboxProps]{
			{name: "default", props: form.CheckboxProps{FieldProps: form.FieldProps{Label: "Accetto le condizioni"}}},
			{name: "checked", props: form.CheckboxProps{FieldProps: form.FieldProps{Label: "Ricevi la newsletter"}, Value: true}},
			{name: "inline", props: form.CheckboxProps{FieldProps: form.FieldProps{Label: "In linea"}, Inline: true}},
			{name: "disabled", props: form.CheckboxProps{FieldProps: form.FieldProps{Label: "Non disponibile", Disabled: true}}},
		},
	}
}

func toggleDefinition() kind {
	return definition[form.ToggleProps]{
		name:        "toggle",
		title:       "Toggle",
		category:    registry.CategoryForm,
		description: "Boolean switch.",
		render:      built(form.NewToggle),
		examples: []example[form.ToggleProps]{
			{name: "default", props: form.ToggleProps{FieldProps: form.FieldProps{Label: "Notifiche"}}},
			{name: "grouped", props: form.ToggleProps{FieldProps: form.FieldProps{Label: "Modalità scura"}, Value: true, ViewMode: form.ToggleGrouped}},
		},
	}
}

func radioGroupDefinition() kind {
	options := []form.RadioOption[string]{
		{Label: "Sportello", Value: "office"},
		{Label: "Online", Value: "online", AdditionalText: "Richiede SPID o CIE", AdditionalTextID: "radio-online-help"},
		{Label: "Posta", Value: "mail", Disabled: true},
	}

	return definition[form.RadioGroupProps[string]]{
		name:        "radio-group",
		title:       "Radio group",
		category:    registry.CategoryForm,
		description: "Single choice among options.",
		render:      built(form.NewRadioGroup[string]),
		examples: []example[form.RadioGroupProps[string]]{
			{name: "default", props: form.RadioGroupProps[string]{Legend: "Modalità di consegna", Options: options, Value: "office"}},
			{name: "inline", props: form.RadioGroupProps[string]{Legend: "Modalità di consegna", Options: options, Inline: true}},
		},
	}
}

func selectDefinition() kind {
	return definition[form.SelectFieldProps[string]]{
		name:        "select",
		title:       "Select",
		category:    registry.CategoryForm,
		description: "Drop-down choice with optional option groups.",
		render:      built(form.NewSelectField[string]),
		examples: []example[form.SelectFieldProps[string]]{
			{name: "default", props: form.SelectFieldProps[string]{
				FieldProps: form.FieldProps{Label: "Regione"},
				Items: []form.SelectItem[string]{
					{Label: "Scegli una regione", Value: ""},
					{Label: "Lazio", Value: "lazio"},
					{Label: "Lombardia", Value: "lombardia"},
					{Label: "Sicilia", Value: "sicilia"},
				},
			}},
			{name: "groups", props: form.SelectFieldProps[string]{
				FieldProps: form.FieldProps{Label: "Servizio"},
				Value:      "cie",
				Groups: []form.SelectGroup[string]{
					{Label: "Anagrafe", Items: []form.SelectItem[string]{
						{Label: "Carta d'identità", Value: "cie"},
						{Label: "Cambio di residenza", Value: "residenza"},
					}},
					{Label: "Tributi", Items: []form.SelectItem[string]{
						{Label: "TARI", Value: "tari"},
						{Label: "IMU", Value: "imu", Disabled: true},
					}},
				},
			}},
		},
	}
}

func datepickerDefinition() kind {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	return definition[form.DatepickerProps]{
		name:        "datepicker",
		title:       "Datepicker",
		category:    registry.CategoryForm,
		description: "Native date input.",
		render:      built(form.NewDatepicker),
		examples: []example[form.DatepickerProps]{
			{name: "default", props: form.DatepickerProps{InputProps: input("Data di nascita")}},
			{name: "range", props: form.DatepickerProps{
				InputProps: input("Data dell'appuntamento"),
				Value:      time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
				Min:        &start,
				Max:        &end,
			}},
		},
	}
}

func timepickerDefinition() kind {
	return definition[form.TimepickerProps]{
		name:        "timepicker",
		title:       "Timepicker",
		category:    registry.CategoryForm,
		description: "Native time input.",
		render:      built(form.NewTimepicker),
		examples: []example[form.TimepickerProps]{
			{name: "default", props: form.TimepickerProps{InputProps: input("Orario")}},
			{name: "value", props: form.TimepickerProps{
				InputProps: input("Apertura"),
				Value:      time.Date(0, time.January, 1, 8, 30, 0, 0, time.UTC),
			}},
		},
	}
}
