package scanner

import (
	"fmt"

	"github.com/t14raptor/esparse/ast"
)

// Error is a lexical error together with the source range it covers.
type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (e Error) Error() string {
	return e.Message
}

// Span returns the range the error covers.
func (e Error) Span() ast.Span {
	return ast.Span{Start: e.Start, End: e.End}
}

func errorf(start, end ast.Idx, format string, args ...any) Error {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return Error{Message: format, Start: start, End: end}
}

func invalidCharacter(c rune, start, end ast.Idx) Error {
	return errorf(start, end, "invalid character `%c`", c)
}

func invalidUTF8(start, end ast.Idx) Error {
	return errorf(start, end, "invalid UTF-8 encoding")
}

func unterminatedString(start, end ast.Idx) Error {
	return errorf(start, end, "unterminated string")
}

func unterminatedTemplateLiteral(start, end ast.Idx) Error {
	return errorf(start, end, "unterminated template literal")
}

func unterminatedMultiLineComment(start, end ast.Idx) Error {
	return errorf(start, end, "unterminated multiline comment")
}

func unterminatedRegExp(start, end ast.Idx) Error {
	return errorf(start, end, "unterminated regular expression")
}

func invalidEscapeSequence(start, end ast.Idx) Error {
	return errorf(start, end, "invalid escape sequence")
}

func invalidNumber(start, end ast.Idx) Error {
	return errorf(start, end, "invalid number")
}

func invalidNumberEnd(start, end ast.Idx) Error {
	return errorf(start, end, "invalid characters after number")
}

func invalidUnicodeEscapeSequence(start, end ast.Idx) Error {
	return errorf(start, end, "invalid unicode escape sequence")
}

func regExpFlag(c rune, start, end ast.Idx) Error {
	return errorf(start, end, "invalid regular expression flag `%c`", c)
}

func regExpFlagTwice(c rune, start, end ast.Idx) Error {
	return errorf(start, end, "duplicate regular expression flag `%c`", c)
}

func invalidRegExp(err error, start, end ast.Idx) Error {
	return errorf(start, end, "invalid regular expression: %v", err)
}
