package ifc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"ifcsheet/domain/core"
)

// statement is one ';'-terminated unit of a STEP physical file with
// whitespace and comments outside string literals removed
type statement struct {
	text string
	line int
}

// scanner splits ISO-10303-21 text into statements. It tracks string
// literals ('' is an escaped quote), /* */ comments and parenthesis depth.
type scanner struct {
	r    *bufio.Reader
	line int
	buf  bytes.Buffer
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReaderSize(r, 64*1024), line: 1}
}

// next returns the following statement, io.EOF when only whitespace or
// comments remain, or a malformed-file error
func (s *scanner) next() (statement, error) {
	s.buf.Reset()
	start := 0
	depth := 0
	inString := false

	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			switch {
			case inString:
				return statement{}, fmt.Errorf("%w: unterminated string starting on line %d", core.ErrMalformedIFC, start)
			case s.buf.Len() > 0:
				return statement{}, fmt.Errorf("%w: statement on line %d is missing its ';'", core.ErrMalformedIFC, start)
			}
			return statement{}, io.EOF
		}
		if err != nil {
			return statement{}, err
		}
		if c == '\n' {
			s.line++
		}

		if inString {
			s.buf.WriteByte(c)
			if c == '\'' {
				if peek, err := s.r.Peek(1); err == nil && peek[0] == '\'' {
					s.r.ReadByte()
					s.buf.WriteByte('\'')
					continue
				}
				inString = false
			}
			continue
		}

		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '/':
			if peek, err := s.r.Peek(1); err == nil && peek[0] == '*' {
				s.r.ReadByte()
				if err := s.skipComment(); err != nil {
					return statement{}, err
				}
				continue
			}
		case '\'':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return statement{}, fmt.Errorf("%w on line %d", core.ErrUnbalancedParams, s.line)
			}
		case ';':
			if depth != 0 {
				return statement{}, fmt.Errorf("%w in statement starting on line %d", core.ErrUnbalancedParams, start)
			}
			return statement{text: s.buf.String(), line: start}, nil
		}

		if s.buf.Len() == 0 {
			start = s.line
		}
		s.buf.WriteByte(c)
	}
}

func (s *scanner) skipComment() error {
	from := s.line
	prev := byte(0)
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return fmt.Errorf("%w: unterminated comment starting on line %d", core.ErrMalformedIFC, from)
		}
		if err != nil {
			return err
		}
		if c == '\n' {
			s.line++
		}
		if prev == '*' && c == '/' {
			return nil
		}
		prev = c
	}
}

// stringLiterals returns the contents of the quoted strings in text, in order
func stringLiterals(text string) []string {
	var out []string
	for i := 0; i < len(text); i++ {
		if text[i] != '\'' {
			continue
		}
		var lit bytes.Buffer
		for i++; i < len(text); i++ {
			if text[i] == '\'' {
				if i+1 < len(text) && text[i+1] == '\'' {
					lit.WriteByte('\'')
					i++
					continue
				}
				break
			}
			lit.WriteByte(text[i])
		}
		out = append(out, lit.String())
	}
	return out
}
