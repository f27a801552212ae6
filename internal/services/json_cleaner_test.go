package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `{"name":"X"}`, `{"name":"X"}`},
		{"plain fence", "```\n{\"name\":\"X\"}\n```", `{"name":"X"}`},
		{"json fence", "```json\n{\"name\":\"X\"}\n```", `{"name":"X"}`},
		{"upper case tag", "```JSON\n{\"name\":\"X\"}\n```", `{"name":"X"}`},
		{"fence on one line", "```json{\"name\":\"X\"}```", `{"name":"X"}`},
		{"surrounding whitespace", "  \n```json\n{\"name\":\"X\"}\n```  \n\t", `{"name":"X"}`},
		{"trailing whitespace inside fence", "```json\n{\"name\":\"X\"}   \n\n```", `{"name":"X"}`},
		{"windows newlines", "```json\r\n{\"name\":\"X\"}\r\n```\r\n", `{"name":"X"}`},
		{"opening fence only", "```json\n{\"name\":\"X\"}", `{"name":"X"}`},
		{"closing fence only", "{\"name\":\"X\"}\n```", `{"name":"X"}`},
		{"fence inside value kept", "```json\n{\"code\":\"```go```\"}\n```", "{\"code\":\"```go```\"}"},
		{"empty", "", ""},
		{"fences only", "```json\n```", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.input))
		})
	}
}

func TestParseJSONObjectFencedAndUnfencedAreIdentical(t *testing.T) {
	body := `{"name":"X","score_match":72,"qcm_cards":[]}`

	plain, err := ParseJSONObject(body)
	require.NoError(t, err)

	fenced, err := ParseJSONObject("```json\n" + body + "\n```")
	require.NoError(t, err)

	assert.JSONEq(t, string(plain), string(fenced))
	assert.Equal(t, string(plain), string(fenced))
}

func TestParseJSONObjectReadsName(t *testing.T) {
	raw, err := ParseJSONObject("```json\n{\"name\":\"X\",\"summary\":\"s\"}\n```")
	require.NoError(t, err)

	var result struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "X", result.Name)
}

func TestParseJSONObjectRejects(t *testing.T) {
	for name, input := range map[string]string{
		"empty":          "",
		"prose":          "Voici l'analyse du CV demandée.",
		"array":          `[{"name":"X"}]`,
		"truncated":      "```json\n{\"name\":\"X\"",
		"trailing value": `{"name":"X"} {"name":"Y"}`,
		"trailing brace": `{"name":"X"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJSONObject(input)
			assert.ErrorIs(t, err, ErrInvalidJSON)
		})
	}
}

func TestParseJSONObjectKeepsUnknownFieldsAndTypes(t *testing.T) {
	raw, err := ParseJSONObject(`{"name":"X","contacts":{"phone":"+216 98 123 456"},"extra":true}`)
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"X","contacts":{"phone":"+216 98 123 456"},"extra":true}`, string(raw))
}
