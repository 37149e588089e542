package ai

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/commitlens/commitlens/internal/config"
	"github.com/commitlens/commitlens/internal/models"
)

// PromptData holds the parameters for template rendering
type PromptData struct {
	CommitType string
	Report     string
	Diff       string
}

const (
	commitPromptTemplatePT = `Você escreve mensagens de commit no padrão Conventional Commits.

# Tipo do commit
{{.CommitType}}

# Resumo das alterações
{{.Report}}
# Diff
{{.Diff}}
# Instruções
1. Primeira linha: "{{.CommitType}}: <descrição>" com no máximo 72 caracteres.
2. Depois de uma linha em branco, liste em poucos tópicos o que mudou e por quê.
3. Use apenas o que aparece no diff. Não invente alterações.
4. Responda somente com a mensagem de commit, sem blocos de código.`

	commitPromptTemplateEN = `You write commit messages following Conventional Commits.

# Commit type
{{.CommitType}}

# Change summary
{{.Report}}
# Diff
{{.Diff}}
# Instructions
1. First line: "{{.CommitType}}: <description>", at most 72 characters.
2. After a blank line, list in a few bullets what changed and why.
3. Only use what appears in the diff. Do not invent changes.
4. Reply with the commit message only, without code blocks.`

	commitPromptTemplateES = `Escribes mensajes de commit siguiendo Conventional Commits.

# Tipo de commit
{{.CommitType}}

# Resumen de cambios
{{.Report}}
# Diff
{{.Diff}}
# Instrucciones
1. Primera línea: "{{.CommitType}}: <descripción>" con un máximo de 72 caracteres.
2. Después de una línea en blanco, enumera en pocos puntos qué cambió y por qué.
3. Usa solo lo que aparece en el diff. No inventes cambios.
4. Responde únicamente con el mensaje de commit, sin bloques de código.`
)

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

// GetCommitPromptTemplate returns the template for lang, English when the
// language has none.
func GetCommitPromptTemplate(lang string) string {
	switch lang {
	case config.LangPT:
		return commitPromptTemplatePT
	case config.LangES:
		return commitPromptTemplateES
	default:
		return commitPromptTemplateEN
	}
}

// BuildPrompt embeds the report and the (possibly truncated) diff in the
// fixed instructional template of the request locale.
func BuildPrompt(req models.GenerationRequest, maxDiffBytes int) (string, error) {
	data := PromptData{
		CommitType: req.CommitType,
		Report:     ensureTrailingNewline(req.Report),
		Diff:       ensureTrailingNewline(TruncateDiff(req.Diff, maxDiffBytes)),
	}
	return RenderPrompt("commit_"+req.Locale, GetCommitPromptTemplate(req.Locale), data)
}

// TruncateDiff keeps at most maxBytes of diff, cut at a line boundary, and
// appends a marker line saying how much was kept. maxBytes <= 0 disables it.
func TruncateDiff(diff string, maxBytes int) string {
	if maxBytes <= 0 || len(diff) <= maxBytes {
		return diff
	}

	cut := diff[:maxBytes]
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		cut = cut[:i+1]
	}
	cut = trimPartialRune(cut)

	return ensureTrailingNewline(cut) +
		fmt.Sprintf("... [diff truncated: %d of %d bytes shown]\n", len(cut), len(diff))
}

// trimPartialRune drops a multi-byte sequence cut short at the end of s.
// Invalid bytes elsewhere are left alone.
func trimPartialRune(s string) string {
	for i := 1; i < utf8.UTFMax && i <= len(s); i++ {
		start := len(s) - i
		if !utf8.RuneStart(s[start]) {
			continue
		}
		if !utf8.FullRuneInString(s[start:]) {
			return s[:start]
		}
		break
	}
	return s
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
