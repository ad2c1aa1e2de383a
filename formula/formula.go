// Package formula parses the mini-language embedded in mesh object
// names: `name` or `name(arg, arg, ...)`, where each argument is a bare
// identifier or a double-quoted string.
package formula

import "fmt"

// parser is a cursor over the formula text. The grammar is small enough
// that characters are consumed directly, without a tokenizer.
type parser struct {
	src string
	pos int
}

func (p *parser) head() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) accept(c byte) bool {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) expect(c byte) error {
	if !p.accept(c) {
		return fmt.Errorf("expected %q", c)
	}
	return nil
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func (p *parser) identifier() string {
	start := p.pos
	for isIdentChar(p.head()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// quotedString consumes up to and including the closing quote. The
// opening quote has already been accepted.
func (p *parser) quotedString() (string, error) {
	start := p.pos
	for !p.accept('"') {
		if p.pos >= len(p.src) {
			return "", fmt.Errorf("expected %q", byte('"'))
		}
		p.pos++
	}
	return p.src[start : p.pos-1], nil
}

func (p *parser) argument() (string, error) {
	if p.accept('"') {
		return p.quotedString()
	}
	return p.identifier(), nil
}

// ParseCall parses a call expression and returns the called name
// followed by its arguments, in order. A name without a parenthesized
// list yields a single-element result. Whitespace is never skipped; the
// input comes from mesh object names, which the authoring pipeline
// writes without padding.
func ParseCall(text string) ([]string, error) {
	p := &parser{src: text}

	result := []string{p.identifier()}

	if p.accept('(') {
		first := true

		for !p.accept(')') {
			if p.pos >= len(p.src) {
				return nil, fmt.Errorf("expected %q", byte(')'))
			}

			if !first {
				if err := p.expect(','); err != nil {
					return nil, err
				}
			}

			arg, err := p.argument()
			if err != nil {
				return nil, err
			}
			result = append(result, arg)
			first = false
		}
	}

	return result, nil
}

// Parse splits a formula into the entity type name and its positional
// arguments: `door(3)` yields ("door", ["3"]), `crate` yields
// ("crate", []).
func Parse(text string) (typeName string, args []string, err error) {
	words, err := ParseCall(text)
	if err != nil {
		return "", nil, err
	}
	return words[0], words[1:], nil
}
