package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/koala/foundation/koala/lexer"
	"github.com/msto63/koala/foundation/koala/parser"
)

// sourceError attaches the source text to a compilation failure so the
// offending line can be shown
type sourceError struct {
	path   string
	source string
	err    error
}

func (e *sourceError) Error() string { return e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

func withSource(path, source string, err error) error {
	if err == nil {
		return nil
	}
	return &sourceError{path: path, source: source, err: err}
}

// offendingToken returns the token a lexical or syntax failure points at
func offendingToken(err error) (lexer.Token, bool) {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Token, true
	}
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Actual, true
	}
	var litErr *parser.LiteralError
	if errors.As(err, &litErr) {
		return litErr.Token, true
	}
	return lexer.Token{}, false
}

// renderDiagnostic writes a one-line message, followed by the source line
// and a caret when the failure has a position
func renderDiagnostic(w io.Writer, err error) {
	tok, positioned := offendingToken(err)

	label := "Error:"
	if positioned {
		label = "Syntax Error:"
	}
	fmt.Fprintf(w, "%s %s\n", ErrorLabelStyle.Render(label), err.Error())

	var src *sourceError
	if !positioned || tok.Line == 0 || !errors.As(err, &src) {
		return
	}
	if tok.Position > len(src.source) {
		return
	}

	lineStart := strings.LastIndexByte(src.source[:tok.Position], '\n') + 1
	lineEnd := len(src.source)
	if i := strings.IndexByte(src.source[tok.Position:], '\n'); i >= 0 {
		lineEnd = tok.Position + i
	}

	fmt.Fprintf(w, "  %s\n", LocationStyle.Render(fmt.Sprintf("--> %s:%d:%d", src.path, tok.Line, tok.Column)))
	fmt.Fprintf(w, "    %s\n", strings.TrimRight(src.source[lineStart:lineEnd], "\r"))
	fmt.Fprintf(w, "    %s%s\n", caretIndent(src.source[lineStart:tok.Position]), CaretStyle.Render("^"))
}

// caretIndent keeps tabs so the caret lines up with the echoed source
func caretIndent(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}
