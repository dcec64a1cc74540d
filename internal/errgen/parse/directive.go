package parse

import (
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
)

// directivePrefix starts every errgen directive. Like "//go:" directives, no
// space is allowed after the slashes.
const directivePrefix = "//errgen:"

// Directive names.
const (
	dirError       = "error"
	dirTransparent = "transparent"
	dirUnion       = "union"
	dirVariant     = "variant"
	dirPath        = "path"
)

// directive is a parsed "//errgen:name args..." comment line.
type directive struct {
	name string
	args []arg

	// comment is the comment line holding the directive.
	comment *ast.Comment
}

func (d directive) Pos() token.Pos { return d.comment.Pos() }
func (d directive) End() token.Pos { return d.comment.End() }

// arg is a token following the directive name.
type arg struct {
	tok token.Token
	lit string
	pos token.Pos
}

func (a arg) Pos() token.Pos { return a.pos }

// isDirective reports whether c looks like an errgen directive regardless of
// its validity.
func isDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, directivePrefix)
}

// parseDirective parses an errgen directive comment. Arguments are scanned as
// Go tokens, so a trailing line comment is ignored.
//
//	//errgen:error "not found: {Name}" // comment
//	         ^^^^^ ^^^^^^^^^^^^^^^^^^^
//	         name  args[0]
func parseDirective(c *ast.Comment) (directive, error) {
	text := strings.TrimPrefix(c.Text, directivePrefix)
	name, rest := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		name, rest = text[:i], text[i+1:]
	}
	if name == "" {
		return directive{}, fmt.Errorf("missing directive name after %s", directivePrefix)
	}

	d := directive{name: name, comment: c}

	// Position of rest in the source.
	base := c.Pos() + token.Pos(len(directivePrefix)+len(name)+1)

	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(rest))

	var scanErr error
	var s scanner.Scanner
	s.Init(file, []byte(rest), func(_ token.Position, msg string) {
		if scanErr == nil {
			scanErr = fmt.Errorf("malformed errgen:%s directive: %s", name, msg)
		}
	}, 0)

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			// Automatically inserted semicolon.
			continue
		}
		d.args = append(d.args, arg{tok, lit, base + token.Pos(file.Offset(pos))})
	}
	if scanErr != nil {
		return directive{}, scanErr
	}
	return d, nil
}

// noArgs checks that the directive takes no arguments.
func (d directive) noArgs() error {
	if len(d.args) != 0 {
		return fmt.Errorf("errgen:%s takes no arguments", d.name)
	}
	return nil
}

// stringArg returns the only string argument of the directive and the
// position of its first character in the source.
func (d directive) stringArg() (string, token.Pos, error) {
	if len(d.args) != 1 || d.args[0].tok != token.STRING {
		return "", token.NoPos, fmt.Errorf("errgen:%s needs a quoted string argument", d.name)
	}

	a := d.args[0]
	s, err := strconv.Unquote(a.lit)
	if err != nil {
		return "", token.NoPos, fmt.Errorf("errgen:%s has a malformed string argument %s", d.name, a.lit)
	}
	return s, a.pos, nil
}

// identArg returns the only identifier argument of the directive.
func (d directive) identArg() (string, error) {
	if len(d.args) != 1 || d.args[0].tok != token.IDENT {
		return "", fmt.Errorf("errgen:%s needs a type name argument", d.name)
	}
	return d.args[0].lit, nil
}

// offsetPos maps a byte offset of an unquoted string argument back to the
// source. If the literal has escape sequences, offsets are not mappable and
// the literal position is returned.
func offsetPos(lit string, litPos token.Pos, unquoted string, offset int) token.Pos {
	if len(lit) < 2 || lit[1:len(lit)-1] != unquoted {
		return litPos
	}
	return litPos + 1 + token.Pos(offset)
}
