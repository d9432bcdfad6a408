package geojson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gjhint/pkg/gjhint"
)

func TestValidate_ValidPoint(t *testing.T) {
	v := NewValidator(gjhint.DefaultHintOptions())

	result, err := v.Validate("a.geojson", []byte(`{"type":"Point","coordinates":[1,2]}`))

	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Equal(t, "a.geojson", result.Path)
}

func TestValidate_InvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"type":`},
		{"empty", ``},
		{"whitespace only", "  \n"},
		{"trailing value", `{"type":"Point","coordinates":[1,2]} {}`},
		{"not json", `hello`},
	}

	v := NewValidator(gjhint.DefaultHintOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate("bad.geojson", []byte(tt.content))

			require.Error(t, err)
			assert.True(t, errors.Is(err, gjhint.ErrInvalidJSON))
			assert.Contains(t, err.Error(), "File bad.geojson could not be parsed as valid JSON.")
		})
	}
}

func TestValidate_InvalidGeoJSON(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"unknown type", `{"type":"Potato"}`, gjhint.CodeUnknownType},
		{"unclosed polygon", `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1]]]}`, gjhint.CodeRingNotClosed},
		{"root array", `[1,2]`, gjhint.CodeInvalidType},
	}

	v := NewValidator(gjhint.DefaultHintOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate("x.geojson", []byte(tt.content))

			require.Error(t, err)
			assert.True(t, errors.Is(err, gjhint.ErrInvalidGeoJSON))
			require.NotEmpty(t, result.Issues)
			assert.Equal(t, tt.wantCode, result.Issues[0].Code)

			var gerr *gjhint.Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, "x.geojson", gerr.Path)
			assert.Equal(t, []gjhint.Issue(result.Issues), gerr.Issues)
		})
	}
}

func TestValidate_DuplicateMembers(t *testing.T) {
	content := []byte(`{"type":"Feature","properties":{"a":1,"a":2},"geometry":null}`)

	t.Run("reported by default", func(t *testing.T) {
		result, err := NewValidator(gjhint.DefaultHintOptions()).Validate("d.geojson", content)

		require.Error(t, err)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, gjhint.CodeDuplicateKey, result.Issues[0].Code)
		assert.Equal(t, "/properties/a", result.Issues[0].Path)
	})

	t.Run("ignored when disabled", func(t *testing.T) {
		opts := gjhint.DefaultHintOptions()
		opts.NoDuplicateMembers = false

		_, err := NewValidator(opts).Validate("d.geojson", content)

		assert.NoError(t, err)
	})
}

func TestValidate_MessagesOnly(t *testing.T) {
	// clockwise exterior ring
	content := []byte(`{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}`)

	t.Run("fail by default", func(t *testing.T) {
		_, err := NewValidator(gjhint.DefaultHintOptions()).Validate("m.geojson", content)
		assert.True(t, errors.Is(err, gjhint.ErrInvalidGeoJSON))
	})

	t.Run("pass when messages do not fail", func(t *testing.T) {
		opts := gjhint.DefaultHintOptions()
		opts.FailOnMessages = false

		result, err := NewValidator(opts).Validate("m.geojson", content)

		require.NoError(t, err)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, gjhint.LevelMessage, result.Issues[0].Level)
	})
}

func TestValidate_HintEnginePanic(t *testing.T) {
	v := NewValidator(gjhint.DefaultHintOptions())
	v.hint = func(any) gjhint.Issues { panic("boom") }

	_, err := v.Validate("p.geojson", []byte(`{"type":"Point","coordinates":[1,2]}`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, gjhint.ErrInvalidGeoJSON))
	assert.True(t, errors.Is(err, gjhint.ErrHintEngine))
	assert.Contains(t, err.Error(), "boom")
}

func TestDuplicateMembers_Paths(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"none", `{"a":1,"b":{"a":2}}`, nil},
		{"root", `{"a":1,"a":2}`, []string{"/a"}},
		{"nested in array", `{"f":[{"x":1},{"x":1,"x":2}]}`, []string{"/f/1/x"}},
		{"after nested value", `{"a":{"b":[1,2]},"c":3,"a":4}`, []string{"/a"}},
		{"escaped", `{"o":{"a/b":1,"a/b":2}}`, []string{"/o/a~1b"}},
		{"repeated thrice", `{"a":1,"a":2,"a":3}`, []string{"/a", "/a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := duplicateMembers([]byte(tt.content))
			require.NoError(t, err)

			var got []string
			for _, iss := range issues {
				got = append(got, iss.Path)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
