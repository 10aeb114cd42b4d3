package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	data := NewWelcomeData("Employee Directory", "alice", "alice@example.com", WithTime(at))

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Contains(t, subject, "Welcome to Employee Directory")
	assert.Contains(t, text, "Hi alice,")
	assert.Contains(t, text, "05 March 2024, 14:30")
	assert.Contains(t, html, "<strong>alice@example.com</strong>")
}

func TestRenderWelcome_Defaults(t *testing.T) {
	_, text, html, err := Render(Welcome, map[string]any{"Email": "x@example.com"})
	require.NoError(t, err)
	assert.Contains(t, text, "Hi there,")
	assert.NotContains(t, text, " on ")
	assert.Contains(t, html, "Welcome, there!")
}

func TestRender_EscapesHTML(t *testing.T) {
	_, _, html, err := Render(Welcome, map[string]any{"Username": "<b>bob</b>", "Email": "b@example.com"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<b>bob</b>")
	assert.Contains(t, html, "&lt;b&gt;bob&lt;/b&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}
