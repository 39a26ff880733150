package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/italia/internal/errors"
)

type assets struct {
	SpriteURL string `validate:"asset_url"`
}

type settings struct {
	Title  string `validate:"required"`
	Lang   string `validate:"bcp47"`
	Assets assets
	File   string `validate:"omitempty,safe_path"`
	Port   int    `validate:"gte=0,lte=65535"`
}

func validSettings() settings {
	return settings{Title: "Galleria", Lang: "it-IT", Assets: assets{SpriteURL: "/static/sprites.svg"}}
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct("config", errors.ErrCodeConfigInvalid, validSettings()))

	testCases := []struct {
		name   string
		mutate func(*settings)
		field  string
		tag    string
	}{
		{"required title", func(s *settings) { s.Title = "" }, "title", "required"},
		{"malformed lang", func(s *settings) { s.Lang = "not a tag" }, "lang", "bcp47"},
		{"javascript sprite", func(s *settings) { s.Assets.SpriteURL = "javascript:alert(1)" }, "assets.spriteURL", "asset_url"},
		{"traversal", func(s *settings) { s.File = "../secrets.yml" }, "file", "safe_path"},
		{"port range", func(s *settings) { s.Port = 70000 }, "port", "lte"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSettings()
			tc.mutate(&s)

			err := Struct("config", errors.ErrCodeConfigInvalid, s)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeConfigInvalid, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tc.field)
			assert.Contains(t, err.Error(), "'"+tc.tag+"'")

			var ie *errors.ItaliaError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, "config", ie.Component)
			assert.Equal(t, tc.field, ie.Context["field"])
		})
	}
}

func TestRegister(t *testing.T) {
	Register("even_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	})

	type pair struct {
		Code string `validate:"even_len"`
	}

	assert.NoError(t, Struct("test", errors.ErrCodeInvalidProps, pair{Code: "ab"}))
	assert.Error(t, Struct("test", errors.ErrCodeInvalidProps, pair{Code: "abc"}))
	assert.Panics(t, func() { Register("", nil) })
}

func TestValidateAssetURL(t *testing.T) {
	valid := []string{
		"",
		"/static/bootstrap-italia/svg/sprites.svg",
		"https://cdn.jsdelivr.net/npm/bootstrap-italia/dist/svg/sprites.svg",
		"http://localhost:8080/sprites.svg",
	}
	for _, raw := range valid {
		assert.NoError(t, ValidateAssetURL(raw), raw)
	}

	invalid := []string{
		"//evil.example/sprites.svg",
		"javascript:alert(1)",
		"sprites.svg",
		"https:///no-host.svg",
		"/static/\"onload=x",
		"/static/<script>",
		"https://example.com/a b.svg",
	}
	for _, raw := range invalid {
		assert.Error(t, ValidateAssetURL(raw), raw)
	}
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath("examples.yml"))
	assert.NoError(t, ValidatePath("/tmp/gallery/examples.yml"))
	assert.NoError(t, ValidatePath("docs/..hidden/examples.yml"))

	assert.Error(t, ValidatePath(""))
	assert.Error(t, ValidatePath("../examples.yml"))
	assert.Error(t, ValidatePath("a/../../examples.yml"))
	assert.Error(t, ValidatePath("examples.yml; rm -rf /"))
	assert.Error(t, ValidatePath("$(HOME)/examples.yml"))
}

func TestValidateOrigin(t *testing.T) {
	allowed := []string{"localhost:8080", "http://127.0.0.1:8080"}

	assert.NoError(t, ValidateOrigin("http://localhost:8080", allowed))
	assert.NoError(t, ValidateOrigin("http://127.0.0.1:8080", allowed))
	assert.Error(t, ValidateOrigin("", allowed))
	assert.Error(t, ValidateOrigin("file://localhost:8080", allowed))
	assert.Error(t, ValidateOrigin("http://evil.example", allowed))
}

func TestValidateFileExtension(t *testing.T) {
	exts := []string{".yml", ".yaml"}

	assert.NoError(t, ValidateFileExtension("examples.YAML", exts))
	assert.Error(t, ValidateFileExtension("", exts))
	assert.Error(t, ValidateFileExtension("examples", exts))
	assert.Error(t, ValidateFileExtension("examples.json", exts))
}
