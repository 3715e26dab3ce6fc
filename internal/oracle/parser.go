package oracle

import (
	"fmt"
	"strconv"

	"glint/scanner"
	"glint/token"
)

// ParseError reports a failure to parse an expression.
type ParseError struct {
	Line    int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

// Parser is a recursive-descent parser over glint's scanner, built the
// same way the teacher's parser.Parser walks a token slice — but
// pulling tokens lazily from scanner.Scanner instead of a pre-scanned
// slice, one per advance(), since that is how glint's Scanner works.
type Parser struct {
	scanner  *scanner.Scanner
	current  token.Token
	previous token.Token
}

// Parse parses source as a single expression and returns its AST, or a
// ParseError if the source does not form a valid expression.
func Parse(source string) (Expression, error) {
	p := &Parser{scanner: scanner.New(source)}
	p.advance()

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != token.EOF {
		return nil, ParseError{Line: p.current.Line, Message: "Expect end of expression."}
	}
	return expr, nil
}

func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.scanner.ScanToken()
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.current.Kind == k {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, msg string) error {
	if p.current.Kind == kind {
		p.advance()
		return nil
	}
	return ParseError{Line: p.current.Line, Message: msg}
}

// expression is the grammar's entry rule; this core has no assignment,
// logical, or statement layer above equality.
func (p *Parser) expression() (Expression, error) {
	return p.equality()
}

func (p *Parser) equality() (Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		operator := p.previous
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.PLUS, token.MINUS) {
		operator := p.previous
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.STAR, token.SLASH) {
		operator := p.previous
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expression, error) {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expression, error) {
	switch {
	case p.match(token.FALSE):
		return Literal{Value: false}, nil
	case p.match(token.TRUE):
		return Literal{Value: true}, nil
	case p.match(token.NIL):
		return Literal{Value: nil}, nil
	case p.match(token.NUMBER):
		x, err := strconv.ParseFloat(p.previous.Lexeme, 64)
		if err != nil {
			return nil, ParseError{Line: p.previous.Line, Message: "invalid number literal"}
		}
		return Literal{Value: x}, nil
	case p.match(token.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return Grouping{Expression: expr}, nil
	}
	return nil, ParseError{Line: p.current.Line, Message: "Expect expression."}
}
