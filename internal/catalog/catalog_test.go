package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/registry"
	ui "github.com/conneroisu/italia/pkg/components"
	"github.com/conneroisu/italia/pkg/numeric"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	return doc
}

func newCatalog(t *testing.T) (*Catalog, *registry.Registry) {
	t.Helper()

	reg := registry.New()
	return New(reg, nil), reg
}

func TestBuiltinsRender(t *testing.T) {
	cat, reg := newCatalog(t)
	assert.Same(t, reg, cat.Registry())
	assert.Equal(t, len(builtins()), reg.Count())

	ctx := context.Background()
	for _, e := range reg.List() {
		require.NotEmpty(t, e.Examples, e.Name)

		for _, ex := range e.Examples {
			t.Run(e.Name+"/"+ex.Name, func(t *testing.T) {
				assert.Equal(t, registry.SourceBuiltin, ex.Source)

				c, err := reg.Render(ctx, e.Name, ex.Name)
				require.NoError(t, err)

				var buf bytes.Buffer
				require.NoError(t, c.Render(ctx, &buf))
				assert.NotEmpty(t, strings.TrimSpace(buf.String()))
			})
		}
	}
}

func TestBuiltinOrderAndCategories(t *testing.T) {
	_, reg := newCatalog(t)

	list := reg.List()
	require.NotEmpty(t, list)
	assert.Equal(t, registry.CategoryComponents, list[0].Category)
	assert.Equal(t, registry.CategoryForm, list[len(list)-1].Category)

	for _, name := range []string{"button", "card", "icon-set", "number-field", "radio-group"} {
		_, ok := reg.Get(name)
		assert.True(t, ok, name)
	}
}

func TestRenderWrongProps(t *testing.T) {
	_, reg := newCatalog(t)

	e, ok := reg.Get("button")
	require.True(t, ok)

	_, err := e.Render(context.Background(), ui.BadgeProps{Text: "x"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidProps, errors.CodeOf(err))
}

func TestLoadMerge(t *testing.T) {
	cat, reg := newCatalog(t)

	src := `
button:
  - name: primary
    description: Overridden
    props:
      label: Conferma
      color: success
  - name: delete
    props:
      label: Elimina
      color: danger
      variant: outline
`
	require.NoError(t, cat.Load(context.Background(), strings.NewReader(src), "examples.yml"))
	assert.Empty(t, cat.Problems())

	e, ok := reg.Get("button")
	require.True(t, ok)

	primary, ok := e.Example("primary")
	require.True(t, ok)
	assert.Equal(t, registry.SourceFile, primary.Source)
	assert.Equal(t, "Overridden", primary.Description)
	assert.Equal(t, ui.ButtonProps{Label: "Conferma", Color: ui.ColorSuccess}, primary.Props)

	del, ok := e.Example("delete")
	require.True(t, ok)
	assert.Equal(t, "delete", e.Examples[len(e.Examples)-1].Name)
	assert.Equal(t, ui.ButtonProps{Label: "Elimina", Color: ui.ColorDanger, Variant: ui.VariantOutline}, del.Props)

	c, err := reg.Render(context.Background(), "button", "delete")
	require.NoError(t, err)
	doc := render(t, c)
	assert.True(t, doc.Find("button").HasClass("btn-outline-danger"))
	assert.Equal(t, "Elimina", strings.TrimSpace(doc.Find("button").Text()))

	outline, ok := e.Example("outline")
	require.True(t, ok)
	assert.Equal(t, registry.SourceBuiltin, outline.Source)
}

func TestLoadProblems(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		line      int
		component string
		example   string
		contains  string
	}{
		{
			name:      "unknown component",
			src:       "carousel:\n  - name: default\n",
			line:      1,
			component: "carousel",
			contains:  "unknown component",
		},
		{
			name:      "not a list",
			src:       "button:\n  name: default\n",
			line:      2,
			component: "button",
			contains:  "must be a list",
		},
		{
			name:      "unknown prop",
			src:       "button:\n  - name: typo\n    props:\n      labl: Invia\n",
			line:      2,
			component: "button",
			example:   "typo",
			contains:  "labl",
		},
		{
			name:      "bad enum",
			src:       "badge:\n  - name: pink\n    props:\n      text: Rosa\n      color: pink\n",
			line:      2,
			component: "badge",
			example:   "pink",
			contains:  "unknown color",
		},
		{
			name:      "missing name",
			src:       "badge:\n  - props:\n      text: Anonimo\n",
			line:      2,
			component: "badge",
			contains:  "no name",
		},
		{
			name:     "top level list",
			src:      "- button\n",
			line:     1,
			contains: "top level",
		},
		{
			name:     "invalid yaml",
			src:      "button:\n  - name: [unclosed\n",
			contains: "invalid YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _ := newCatalog(t)

			err := cat.Load(context.Background(), strings.NewReader(tt.src), "examples.yml")
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidExamples, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.contains)

			problems := cat.Problems()
			require.Len(t, problems, 1)
			assert.Equal(t, "examples.yml", problems[0].File)
			assert.Equal(t, tt.component, problems[0].Component)
			assert.Equal(t, tt.example, problems[0].Example)
			if tt.line > 0 {
				assert.Equal(t, tt.line, problems[0].Line)
			}
		})
	}
}

func TestLoadKeepsValidExamples(t *testing.T) {
	cat, reg := newCatalog(t)

	src := `
badge:
  - name: ok
    props:
      text: Valido
      color: success
  - name: broken
    props:
      colour: danger
`
	err := cat.Load(context.Background(), strings.NewReader(src), "examples.yml")
	require.Error(t, err)
	require.Len(t, cat.Problems(), 1)
	assert.Equal(t, "broken", cat.Problems()[0].Example)

	e, _ := reg.Get("badge")
	_, ok := e.Example("ok")
	assert.True(t, ok)
	_, ok = e.Example("broken")
	assert.False(t, ok)
}

func TestReloadRestoresBuiltins(t *testing.T) {
	cat, reg := newCatalog(t)
	ctx := context.Background()

	src := "alert:\n  - name: extra\n    props:\n      type: info\n      text: Aggiunto\n"
	require.NoError(t, cat.Load(ctx, strings.NewReader(src), "examples.yml"))

	e, _ := reg.Get("alert")
	_, ok := e.Example("extra")
	require.True(t, ok)

	events := reg.Watch()
	defer reg.Unwatch(events)

	require.NoError(t, cat.Load(ctx, strings.NewReader(""), "examples.yml"))

	e, _ = reg.Get("alert")
	_, ok = e.Example("extra")
	assert.False(t, ok)
	assert.Len(t, e.Examples, len(alertDefinition().entry().Examples))

	select {
	case ev := <-events:
		assert.Equal(t, registry.EventTypeUpdated, ev.Type)
		assert.Equal(t, "alert", ev.Entry.Name)
	default:
		t.Fatal("expected an update event for the restored entry")
	}

	// Entries never overridden are left alone.
	select {
	case ev := <-events:
		t.Fatalf("unexpected event for %s", ev.Entry.Name)
	default:
	}
}

func TestLoadFile(t *testing.T) {
	cat, reg := newCatalog(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "examples.yml")
	src := "number-field:\n  - name: prezzo\n    props:\n      label: Prezzo\n      kind: decimal\n      value: \"9.99\"\n      step: \"0.01\"\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	require.NoError(t, cat.LoadFile(ctx, path))

	c, err := reg.Render(ctx, "number-field", "prezzo")
	require.NoError(t, err)

	input := render(t, c).Find("input[type=number]")
	assert.Equal(t, "9.99", input.AttrOr("value", ""))
	assert.Equal(t, "0.01", input.AttrOr("step", ""))

	missing := filepath.Join(t.TempDir(), "missing.yml")
	err = cat.LoadFile(ctx, missing)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.CodeOf(err))

	problems := cat.Problems()
	require.Len(t, problems, 1)
	assert.Equal(t, missing, problems[0].File)
	assert.Equal(t, "cannot open examples file", problems[0].Message)
	assert.ErrorIs(t, &problems[0], os.ErrNotExist)

	require.NoError(t, cat.LoadFile(ctx, path))
	assert.Empty(t, cat.Problems())
}

func TestNumberFieldExample(t *testing.T) {
	ctx := context.Background()

	c, err := NumberFieldExample(ctx, NumberFieldExampleProps{
		InputProps: input("Importo"), Kind: numeric.KindDecimal, Value: "12.50", Min: "0", Step: "0.01",
	})
	require.NoError(t, err)
	in := render(t, c).Find("input")
	assert.Equal(t, "12.5", in.AttrOr("value", ""))
	assert.Equal(t, "0", in.AttrOr("min", ""))

	c, err = NumberFieldExample(ctx, NumberFieldExampleProps{InputProps: input("Quantità"), Value: "3"})
	require.NoError(t, err)
	in = render(t, c).Find("input")
	assert.Equal(t, "3", in.AttrOr("value", ""))
	assert.Equal(t, "2147483647", in.AttrOr("max", ""))

	_, err = NumberFieldExample(ctx, NumberFieldExampleProps{InputProps: input("Quantità"), Kind: numeric.KindInt16, Value: "abc"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidNumber, errors.CodeOf(err))

	_, err = NumberFieldExample(ctx, NumberFieldExampleProps{InputProps: input("Quantità"), Kind: numeric.KindInt16, Value: "40000"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidNumber, errors.CodeOf(err))

	_, err = NumberFieldExample(ctx, NumberFieldExampleProps{Value: "1"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidProps, errors.CodeOf(err))
}

func TestIconSet(t *testing.T) {
	ctx := context.Background()

	c, err := IconSet(ctx, IconSetProps{Set: "file"})
	require.NoError(t, err)
	assert.Equal(t, len(ui.FileIcons), render(t, c).Find("svg.icon").Length())

	_, err = IconSet(ctx, IconSetProps{Set: "weather"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidOption, errors.CodeOf(err))
}

func TestCardExample(t *testing.T) {
	doc := render(t, CardExample(CardExampleProps{
		Title:      "Notizia",
		TitleLink:  "#",
		Text:       "Testo della notizia.",
		FooterLink: "Leggi di più",
	}))

	assert.Equal(t, 1, doc.Find("article.it-card").Length())
	assert.Contains(t, doc.Find(".it-card-title").Text(), "Notizia")
	assert.Contains(t, doc.Find(".it-card-text").Text(), "Testo della notizia.")
}
