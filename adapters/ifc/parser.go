package ifc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ifcsheet/domain/core"
	domain "ifcsheet/domain/ifc"
	"ifcsheet/internal"
)

const (
	magic   = "ISO-10303-21"
	trailer = "END-ISO-10303-21"
)

// Parser reads IFC files in the STEP physical file encoding (ISO 10303-21)
type Parser struct {
	logger *internal.Logger
}

// NewParser creates a parser logging through logger (DefaultLogger when nil)
func NewParser(logger *internal.Logger) *Parser {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Parser{logger: logger.With("ifc")}
}

// ParseBytes parses an in-memory IFC file
func (p *Parser) ParseBytes(data []byte) (*domain.Model, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, core.ErrEmptyUpload
	}
	return p.Parse(bytes.NewReader(data))
}

// Parse reads a whole IFC file. Any structural problem aborts the parse;
// there is no partial model.
func (p *Parser) Parse(r io.Reader) (*domain.Model, error) {
	br := bufio.NewReader(r)
	if err := checkMagic(br); err != nil {
		return nil, err
	}

	sc := newScanner(br)
	model := &domain.Model{}

	first, err := sc.next()
	if err != nil || first.text != magic {
		return nil, fmt.Errorf("%w: file does not start with %s", core.ErrNotIFC, magic)
	}

	if err := p.parseHeader(sc, &model.Header); err != nil {
		return nil, err
	}

	seen := make(map[int]int)
	sections := 0
	for {
		st, err := sc.next()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing %s", core.ErrMalformedIFC, trailer)
		}
		if err != nil {
			return nil, err
		}

		switch {
		case st.text == trailer:
			if sections == 0 {
				return nil, fmt.Errorf("%w: no DATA section", core.ErrMalformedIFC)
			}
			p.logger.Debug("parsed %d entities in %d DATA section(s), schema %v",
				len(model.Entities), sections, model.Header.Schemas)
			return model, nil
		case st.text == "DATA" || strings.HasPrefix(st.text, "DATA("):
			sections++
			if err := p.parseData(sc, model, seen); err != nil {
				return nil, err
			}
		case isSectionKeyword(st.text):
			if err := skipSection(sc); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q on line %d", core.ErrMalformedIFC, truncate(st.text), st.line)
		}
	}
}

// checkMagic rejects obviously foreign content (images, zip archives,
// spreadsheets) before the scanner walks the whole payload looking for ';'
func checkMagic(br *bufio.Reader) error {
	head, _ := br.Peek(512)
	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	head = bytes.TrimLeft(head, " \t\r\n")
	if len(head) == 0 {
		return core.ErrEmptyUpload
	}
	if bytes.HasPrefix(head, []byte("/*")) || bytes.HasPrefix(head, []byte(magic)) {
		return nil
	}
	return fmt.Errorf("%w: file does not start with %s", core.ErrNotIFC, magic)
}

func (p *Parser) parseHeader(sc *scanner, header *domain.Header) error {
	st, err := sc.next()
	if err != nil || st.text != "HEADER" {
		return fmt.Errorf("%w: missing HEADER section", core.ErrNotIFC)
	}

	for {
		st, err := sc.next()
		if err == io.EOF {
			return fmt.Errorf("%w: HEADER section is not closed", core.ErrMalformedIFC)
		}
		if err != nil {
			return err
		}
		if st.text == "ENDSEC" {
			break
		}

		name, _, _ := strings.Cut(st.text, "(")
		literals := stringLiterals(st.text)
		switch name {
		case "FILE_DESCRIPTION":
			if len(literals) > 0 {
				header.Description = literals[0]
			}
		case "FILE_NAME":
			if len(literals) > 0 {
				header.FileName = literals[0]
			}
		case "FILE_SCHEMA":
			header.Schemas = literals
		}
	}

	for _, schema := range header.Schemas {
		if strings.HasPrefix(strings.ToUpper(schema), "IFC") {
			return nil
		}
	}
	return fmt.Errorf("%w: FILE_SCHEMA %v names no IFC schema", core.ErrNotIFC, header.Schemas)
}

func (p *Parser) parseData(sc *scanner, model *domain.Model, seen map[int]int) error {
	for {
		st, err := sc.next()
		if err == io.EOF {
			return fmt.Errorf("%w: DATA section is not closed", core.ErrMalformedIFC)
		}
		if err != nil {
			return err
		}
		if st.text == "ENDSEC" {
			return nil
		}

		entity, err := parseInstance(st)
		if err != nil {
			return err
		}
		if prev, dup := seen[entity.ID]; dup {
			return fmt.Errorf("%w #%d on lines %d and %d", core.ErrDuplicateEntity, entity.ID, prev, st.line)
		}
		seen[entity.ID] = st.line
		model.Entities = append(model.Entities, entity)
	}
}

// parseInstance reads "#12=IFCWALL(...)" or the complex form
// "#12=(IFCA(...)IFCB(...))", which is labelled with its first record
func parseInstance(st statement) (domain.Entity, error) {
	bad := func(reason string) (domain.Entity, error) {
		return domain.Entity{}, fmt.Errorf("%w: %s on line %d: %q", core.ErrMalformedIFC, reason, st.line, truncate(st.text))
	}

	if !strings.HasPrefix(st.text, "#") {
		return bad("expected entity instance")
	}
	ref, rest, ok := strings.Cut(st.text[1:], "=")
	if !ok {
		return bad("missing '='")
	}
	id, err := strconv.Atoi(ref)
	if err != nil || id <= 0 {
		return bad("invalid instance name")
	}

	if strings.HasPrefix(rest, "(") {
		rest = rest[1:]
	}
	name, params, ok := strings.Cut(rest, "(")
	if !ok || !isKeyword(name) {
		return bad("invalid entity type")
	}
	if !strings.HasSuffix(params, ")") {
		return bad("missing parameter list")
	}

	return domain.Entity{ID: id, Type: strings.ToUpper(name), Line: st.line}, nil
}

func skipSection(sc *scanner) error {
	for {
		st, err := sc.next()
		if err == io.EOF {
			return fmt.Errorf("%w: section is not closed", core.ErrMalformedIFC)
		}
		if err != nil {
			return err
		}
		if st.text == "ENDSEC" {
			return nil
		}
	}
}

// isSectionKeyword matches the optional edition-3 sections that carry no entities
func isSectionKeyword(text string) bool {
	switch text {
	case "ANCHOR", "REFERENCE", "SIGNATURE":
		return true
	}
	return false
}

func isKeyword(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func truncate(s string) string {
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}
