package query

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
	"cutlog/internal/timecode"
)

// Predicate is a compiled filter expression.
type Predicate struct {
	root node
	fps  float64
}

// Compile parses a filter expression such as
//
//	category == 'A-Camera' and duration > 5
//
// into a predicate. Supported: field comparisons (==, !=, <, <=, >, >=),
// and/or/not connectives, and parentheses. The duration pseudo-field is the
// event length in seconds at the supplied frame rate. An unparseable
// expression yields ErrFilter.
func Compile(expr string, fps float64) (*Predicate, error) {
	tokens, err := lex(expr)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFilter, "query", "compile", err.Error(), nil)
	}
	p := &parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFilter, "query", "compile", err.Error(), nil)
	}
	if !p.done() {
		return nil, pipeline.Wrap(pipeline.ErrFilter, "query", "compile", fmt.Sprintf("unexpected trailing input near %q", p.peek().text), nil)
	}
	return &Predicate{root: root, fps: fps}, nil
}

// Match evaluates the predicate against one event.
func (p *Predicate) Match(event edl.Event) bool {
	return p.root.eval(event, p.fps)
}

// Filter compiles the expression and returns the matching events in their
// original relative order. On an invalid expression the error is returned and
// no events are; the caller decides whether to fall back to the unfiltered
// collection.
func Filter(events []edl.Event, expr string, fps float64, logger *slog.Logger) ([]edl.Event, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	predicate, err := Compile(expr, fps)
	if err != nil {
		logger.Error("filter compilation failed", logging.String("expression", expr), logging.Error(err))
		return nil, err
	}
	matched := make([]edl.Event, 0, len(events))
	for _, event := range events {
		if predicate.Match(event) {
			matched = append(matched, event)
		}
	}
	logger.Info("applied filter",
		logging.String("expression", expr),
		logging.Int("matched", len(matched)),
		logging.Int("total", len(events)))
	return matched, nil
}

type node interface {
	eval(event edl.Event, fps float64) bool
}

type andNode struct{ left, right node }

func (n andNode) eval(e edl.Event, fps float64) bool { return n.left.eval(e, fps) && n.right.eval(e, fps) }

type orNode struct{ left, right node }

func (n orNode) eval(e edl.Event, fps float64) bool { return n.left.eval(e, fps) || n.right.eval(e, fps) }

type notNode struct{ inner node }

func (n notNode) eval(e edl.Event, fps float64) bool { return !n.inner.eval(e, fps) }

type compareNode struct {
	field   string
	numeric bool
	op      string
	text    string
	number  float64
}

func (n compareNode) eval(e edl.Event, fps float64) bool {
	if n.numeric {
		value, ok := numericField(e, n.field, fps)
		if !ok {
			return false
		}
		return compareFloats(value, n.op, n.number)
	}
	return compareStrings(e.Field(n.field), n.op, n.text)
}

func compareFloats(a float64, op string, b float64) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	default:
		return false
	}
}

func compareStrings(a, op, b string) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	default:
		return false
	}
}

// numericField resolves the two numeric pseudo-fields. A duration that cannot
// be computed (unreadable timecodes) makes the comparison false rather than
// failing the whole filter.
func numericField(e edl.Event, field string, fps float64) (float64, bool) {
	switch field {
	case "event":
		return float64(e.Number), true
	case "duration":
		frames, err := timecode.DurationFrames(fps, e.RecordIn, e.RecordOut)
		if err != nil {
			return 0, false
		}
		if fps <= 0 {
			return 0, false
		}
		return float64(frames) / fps, true
	default:
		return 0, false
	}
}

// identFields maps expression identifiers onto canonical column names.
var identFields = map[string]string{
	"clip_name":    edl.FieldClipName,
	"source_file":  edl.FieldSourceFile,
	"reel":         edl.FieldReel,
	"record_in":    edl.FieldRecordIn,
	"record_out":   edl.FieldRecordOut,
	"timecode_in":  edl.FieldTimecodeIn,
	"timecode_out": edl.FieldTimecodeOut,
	"transition":   edl.FieldTransition,
	"source_fps":   edl.FieldSourceFPS,
	"category":     edl.FieldCategory,
	"subtitles":    edl.FieldSubtitles,
	"video":        edl.FieldVideo,
}

func resolveField(name string) (field string, numeric bool, err error) {
	lowered := strings.ToLower(name)
	switch lowered {
	case "event", "event_number":
		return "event", true, nil
	case "duration":
		return "duration", true, nil
	}
	if field, ok := identFields[lowered]; ok {
		return field, false, nil
	}
	// Quoted column names address fields directly.
	probe := edl.Event{}
	if probe.HasField(name) {
		return name, false, nil
	}
	return "", false, fmt.Errorf("unknown field %q", name)
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokNumber
	tokOp
	tokLParen
	tokRParen
	tokAnd
	tokOr
	tokNot
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

func lex(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")"})
			i++
		case c == '\'' || c == '"':
			quote := c
			j := i + 1
			for j < len(runes) && runes[j] != quote {
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("unterminated string starting at %q", string(runes[i:]))
			}
			tokens = append(tokens, token{kind: tokString, text: string(runes[i+1 : j])})
			i = j + 1
		case c == '=' || c == '!' || c == '<' || c == '>':
			op := string(c)
			if i+1 < len(runes) && runes[i+1] == '=' {
				op += "="
				i++
			}
			i++
			if op == "=" || op == "!" {
				return nil, fmt.Errorf("invalid operator %q", op)
			}
			tokens = append(tokens, token{kind: tokOp, text: op})
		case c == '&' && i+1 < len(runes) && runes[i+1] == '&':
			tokens = append(tokens, token{kind: tokAnd, text: "and"})
			i += 2
		case c == '|' && i+1 < len(runes) && runes[i+1] == '|':
			tokens = append(tokens, token{kind: tokOr, text: "or"})
			i += 2
		case unicode.IsDigit(c) || c == '-' || c == '.':
			j := i
			if runes[j] == '-' {
				j++
			}
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			text := string(runes[i:j])
			if _, err := strconv.ParseFloat(text, 64); err != nil {
				return nil, fmt.Errorf("invalid number %q", text)
			}
			tokens = append(tokens, token{kind: tokNumber, text: text})
			i = j
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			word := string(runes[i:j])
			switch strings.ToLower(word) {
			case "and":
				tokens = append(tokens, token{kind: tokAnd, text: "and"})
			case "or":
				tokens = append(tokens, token{kind: tokOr, text: "or"})
			case "not":
				tokens = append(tokens, token{kind: tokNot, text: "not"})
			default:
				tokens = append(tokens, token{kind: tokIdent, text: word})
			}
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q", string(c))
		}
	}
	return append(tokens, token{kind: tokEOF}), nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) done() bool { return p.peek().kind == tokEOF }

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokNot:
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{inner: inner}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.next()
		return inner, nil
	default:
		return p.parseComparison()
	}
}

func (p *parser) parseComparison() (node, error) {
	fieldToken := p.next()
	if fieldToken.kind != tokIdent && fieldToken.kind != tokString {
		return nil, fmt.Errorf("expected field name, got %q", fieldToken.text)
	}
	field, numeric, err := resolveField(fieldToken.text)
	if err != nil {
		return nil, err
	}
	opToken := p.next()
	if opToken.kind != tokOp {
		return nil, fmt.Errorf("expected comparison operator after %q", fieldToken.text)
	}
	valueToken := p.next()
	switch valueToken.kind {
	case tokNumber:
		number, _ := strconv.ParseFloat(valueToken.text, 64)
		if !numeric {
			// Numeric literal against a string field compares its rendering.
			return compareNode{field: field, op: opToken.text, text: valueToken.text}, nil
		}
		return compareNode{field: field, numeric: true, op: opToken.text, number: number}, nil
	case tokString, tokIdent:
		if numeric {
			number, err := strconv.ParseFloat(valueToken.text, 64)
			if err != nil {
				return nil, fmt.Errorf("field %q needs a numeric value, got %q", fieldToken.text, valueToken.text)
			}
			return compareNode{field: field, numeric: true, op: opToken.text, number: number}, nil
		}
		return compareNode{field: field, op: opToken.text, text: valueToken.text}, nil
	default:
		return nil, fmt.Errorf("expected comparison value, got %q", valueToken.text)
	}
}
