package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bindings Bindings
		want     string
	}{
		{
			name:     "single substitution",
			text:     "name: {{name}}",
			bindings: Bindings{"name": "geo_sensor"},
			want:     "name: geo_sensor",
		},
		{
			name:     "repeated variable",
			text:     "{{name}}/{{name}}.dart",
			bindings: Bindings{"name": "app"},
			want:     "app/app.dart",
		},
		{
			name:     "unbound passes through",
			text:     "{{missing}}",
			bindings: Bindings{},
			want:     "{{missing}}",
		},
		{
			name:     "no markers",
			text:     "plain text",
			bindings: Bindings{"name": "x"},
			want:     "plain text",
		},
		{
			name:     "braces that are not markers",
			text:     "void main() { runApp({{name}}); }",
			bindings: Bindings{"name": "App"},
			want:     "void main() { runApp(App); }",
		},
		{
			name:     "marker with spaces stays literal",
			text:     "{{not a name}}",
			bindings: Bindings{},
			want:     "{{not a name}}",
		},
		{
			name:     "unterminated marker stays literal",
			text:     "x = {{name",
			bindings: Bindings{"name": "y"},
			want:     "x = {{name",
		},
		{
			name:     "bool bound variable passes through",
			text:     "{{flag}}",
			bindings: Bindings{"flag": true},
			want:     "{{flag}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.text, tt.bindings))
		})
	}
}

func TestExpand_BoolSections(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bindings Bindings
		want     string
	}{
		{
			name:     "true keeps body",
			text:     "{{#x}}A{{/x}}",
			bindings: Bindings{"x": true},
			want:     "A",
		},
		{
			name:     "false drops span",
			text:     "{{#x}}A{{/x}}",
			bindings: Bindings{"x": false},
			want:     "",
		},
		{
			name:     "unbound drops span",
			text:     "before{{#x}}A{{/x}}after",
			bindings: Bindings{},
			want:     "beforeafter",
		},
		{
			name:     "scalar-bound section drops span like unbound",
			text:     "before{{#x}}A{{/x}}after",
			bindings: Bindings{"x": "yes"},
			want:     "beforeafter",
		},
		{
			name:     "variables inside true section",
			text:     "{{#web}}web: {{name}}{{/web}}",
			bindings: Bindings{"web": true, "name": "app"},
			want:     "web: app",
		},
		{
			name:     "nested sections",
			text:     "{{#a}}[{{#b}}inner{{/b}}]{{/a}}",
			bindings: Bindings{"a": true, "b": true},
			want:     "[inner]",
		},
		{
			name:     "nested section gated off",
			text:     "{{#a}}[{{#b}}inner{{/b}}]{{/a}}",
			bindings: Bindings{"a": true, "b": false},
			want:     "[]",
		},
		{
			name:     "same-name nesting pairs innermost",
			text:     "{{#x}}A{{#x}}B{{/x}}C{{/x}}",
			bindings: Bindings{"x": true},
			want:     "ABC",
		},
		{
			name:     "stray close marker is literal",
			text:     "A{{/x}}B",
			bindings: Bindings{"x": true},
			want:     "A{{/x}}B",
		},
		{
			name:     "unclosed open marker is literal",
			text:     "A{{#x}}B",
			bindings: Bindings{"x": true},
			want:     "A{{#x}}B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.text, tt.bindings))
		})
	}
}

func TestExpand_ListSections(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bindings Bindings
		want     string
	}{
		{
			name: "one element per record",
			text: "{{#items}}[{{v}}]{{/items}}",
			bindings: Bindings{
				"items": List(Bindings{"v": "1"}, Bindings{"v": "2"}),
			},
			want: "[1][2]",
		},
		{
			name:     "empty list drops span",
			text:     "{{#items}}[{{v}}]{{/items}}",
			bindings: Bindings{"items": List()},
			want:     "",
		},
		{
			name: "inner markers see the element only",
			text: "{{#platforms}}{{tag}} {{/platforms}}",
			bindings: Bindings{
				"tag":       "outer",
				"platforms": List(Bindings{"tag": "android"}, Bindings{"tag": "ios"}),
			},
			want: "android ios ",
		},
		{
			name: "outer binding not visible inside element",
			text: "{{#items}}{{name}}{{/items}}",
			bindings: Bindings{
				"name":  "outer",
				"items": List(Bindings{"v": "x"}),
			},
			want: "{{name}}",
		},
		{
			name: "multiline list body",
			text: "dependencies:\n{{#deps}}  {{name}}: {{version}}\n{{/deps}}",
			bindings: Bindings{
				"deps": List(
					Bindings{"name": "yaml", "version": "^3.1.0"},
					Bindings{"name": "path", "version": "^1.9.0"},
				),
			},
			want: "dependencies:\n  yaml: ^3.1.0\n  path: ^1.9.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.text, tt.bindings))
		})
	}
}

func TestExpand_Idempotence(t *testing.T) {
	// Pass-through output contains the same unresolved markers, so a
	// second expansion with the same bindings is stable.
	text := "{{name}} {{unbound}} {{#x}}on{{/x}}"
	bindings := Bindings{"name": "app", "x": true}

	once := Expand(text, bindings)
	assert.Equal(t, "app {{unbound}} on", once)
	assert.Equal(t, once, Expand(once, Bindings{"x": true}))
}
