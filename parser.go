// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfive

import "io"

// parseState is an entry of the parser's state stack: a continuation that
// says what the parser expects next.
type parseState uint8

const (
	psRoot        parseState = iota // the first token of a document
	psMemberValue                   // the value of an object member
	psArrayFirst                    // the first element of an array, or "]"
	psArrayElem                     // an array element after ","
	psArrayNext                     // "," or "]" after an array element
	psObjectFirst                   // the first key of an object, or "}"
	psObjectKey                     // an object key after ","
	psObjectColon                   // ":" after an object key
	psObjectNext                    // "," or "}" after a member value
	psArrayClose                    // "]" after a trailing ","
	psObjectClose                   // "}" after a trailing ","
	psEnd                           // the end of input after a document
	psProbe                         // end of input, or the start of another document
	psYield                         // a document is complete

	numParseStates
)

// action is what the parser does for a given state and token kind.
type action uint8

const (
	aError       action = iota // the token is not allowed here
	aValue                     // begin a value
	aKey                       // push an object key
	aColon                     // separate a key from its value
	aComma                     // add the finished child to its container and continue
	aReduceClose               // add the finished child to its container and close it
	aClose                     // close an empty container, or one ended by a trailing comma
	aTrailing                  // consume a comma that must be followed by a closer
	aEnd                       // finish a single document
	aProbe                     // look for another document
)

// continuation gives the state that replaces a value-expecting state when
// the value begins. The root state is popped instead.
var continuation = [numParseStates]parseState{
	psMemberValue: psObjectNext,
	psArrayFirst:  psArrayNext,
	psArrayElem:   psArrayNext,
}

// A grammar is the transition table of one dialect and root mode. The
// expected lists give, per state, the token kinds with an action, in the
// order they are reported in error messages.
type grammar struct {
	act    [numParseStates][numKinds]action
	expect [numParseStates][]Kind
}

func (g *grammar) set(s parseState, a action, ks ...Kind) {
	for _, k := range ks {
		g.act[s][k] = a
		g.expect[s] = append(g.expect[s], k)
	}
}

func newGrammar(json5, anyValue bool) *grammar {
	values := []Kind{LBrace, LSquare, Str, Num, Bool, Null}
	keys := []Kind{Str}
	if json5 {
		keys = append(keys, Ident)
	}

	g := new(grammar)
	if anyValue {
		g.set(psRoot, aValue, values...)
	} else {
		g.set(psRoot, aValue, LBrace, LSquare)
	}
	g.set(psMemberValue, aValue, values...)

	g.set(psArrayFirst, aValue, values...)
	g.set(psArrayFirst, aClose, RSquare)
	g.set(psArrayElem, aValue, values...)
	g.set(psArrayNext, aComma, Comma)
	g.set(psArrayNext, aReduceClose, RSquare)

	g.set(psObjectFirst, aKey, keys...)
	g.set(psObjectFirst, aClose, RBrace)
	g.set(psObjectKey, aKey, keys...)
	g.set(psObjectColon, aColon, Colon)
	g.set(psObjectNext, aComma, Comma)
	g.set(psObjectNext, aReduceClose, RBrace)

	if json5 {
		// Trailing commas. A comma directly before the closer is absorbed
		// wherever an element or key could begin, so "[,]" and "[1,,]" are
		// complete arrays.
		g.set(psArrayElem, aClose, RSquare)
		g.set(psObjectKey, aClose, RBrace)
		g.set(psArrayFirst, aTrailing, Comma)
		g.set(psArrayElem, aTrailing, Comma)
		g.set(psObjectFirst, aTrailing, Comma)
		g.set(psObjectKey, aTrailing, Comma)
		g.set(psArrayClose, aClose, RSquare)
		g.set(psObjectClose, aClose, RBrace)
	}

	g.set(psEnd, aEnd, End)
	for k := LBrace; k < numKinds; k++ {
		g.act[psProbe][k] = aProbe
	}
	return g
}

// grammars holds the tables indexed by [json5][anyValue].
var grammars = [2][2]*grammar{
	{newGrammar(false, false), newGrammar(false, true)},
	{newGrammar(true, false), newGrammar(true, true)},
}

func grammarFor(json5, anyValue bool) *grammar {
	return grammars[b2i(json5)][b2i(anyValue)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// entry is an element of the value stack: a finished or partial value, or
// a pending object key.
type entry[V any] struct {
	val V
	key string
}

// A Parser assembles documents from tokens, calling a Sink to construct
// values. Its state is held in two explicit stacks rather than on the call
// stack, so nesting depth is bounded only by available memory.
//
// A Parser may be reused, but is not safe for concurrent use.
type Parser[V any] struct {
	sink   Sink[V]
	cfg    Config
	states []parseState
	values []entry[V]
}

// NewParser constructs a Parser that builds values with sink. The dialect
// and root mode are taken from cfg.
func NewParser[V any](sink Sink[V], cfg Config) *Parser[V] {
	return &Parser[V]{sink: sink, cfg: cfg}
}

// Config returns the configuration of p.
func (p *Parser[V]) Config() Config { return p.cfg }

// Parse parses a single document from r, which must contain nothing else
// but white space (and comments, in JSON5).
func (p *Parser[V]) Parse(r io.Reader) (V, error) {
	return p.ParseReader(NewReader(r, p.cfg))
}

// ParseReader parses a single document from rd, which must contain nothing
// else. The dialect is that of rd.
func (p *Parser[V]) ParseReader(rd *Reader) (V, error) {
	p.Reset()
	p.states = append(p.states, psEnd, psRoot)
	return p.run(rd)
}

// parseNext parses the next document of a stream from rd. It reports io.EOF
// if the input holds no further documents.
func (p *Parser[V]) parseNext(rd *Reader) (V, error) {
	p.Reset()
	p.states = append(p.states, psProbe)
	return p.run(rd)
}

// Reset discards any partial state left by a failed parse.
func (p *Parser[V]) Reset() {
	p.states = p.states[:0]
	clear(p.values)
	p.values = p.values[:0]
}

func (p *Parser[V]) run(rd *Reader) (V, error) {
	var zero V
	var tok Token
	g := grammarFor(rd.JSON5(), p.cfg.AnyValue)
	for {
		top := p.states[len(p.states)-1]
		if top == psYield {
			p.popState()
			return p.popValue().val, nil
		}

		kind, err := rd.PeekKind()
		if err != nil {
			return zero, err
		}
		act := g.act[top][kind]
		switch act {
		case aError:
			return zero, rd.Errorf("unexpected %v, expected %s", kind, kindLabels(g.expect[top]))
		case aEnd:
			p.popState()
			return p.popValue().val, nil
		case aProbe:
			if kind == End {
				p.popState()
				return zero, io.EOF
			}
			p.setState(psYield)
			p.pushState(psRoot)
			continue
		}

		if err := rd.ReadToken(&tok); err != nil {
			return zero, err
		}
		switch act {
		case aValue:
			if top == psRoot {
				p.popState()
			} else {
				p.setState(continuation[top])
			}
			p.beginValue(&tok)

		case aKey:
			p.values = append(p.values, entry[V]{key: tok.Text})
			p.setState(psObjectColon)

		case aColon:
			p.setState(psMemberValue)

		case aComma:
			p.reduce(top)
			if top == psArrayNext {
				p.setState(psArrayElem)
			} else {
				p.setState(psObjectKey)
			}

		case aReduceClose:
			p.reduce(top)
			p.popState()

		case aClose:
			p.popState()

		case aTrailing:
			if top == psArrayFirst || top == psArrayElem {
				p.setState(psArrayClose)
			} else {
				p.setState(psObjectClose)
			}

		default:
			panic("jfive: invalid parser action")
		}
	}
}

// beginValue pushes the value that tok begins. A container also pushes the
// state that parses its contents.
func (p *Parser[V]) beginValue(tok *Token) {
	var v V
	switch tok.Kind {
	case LBrace:
		v = p.sink.Object()
		p.pushState(psObjectFirst)
	case LSquare:
		v = p.sink.Array()
		p.pushState(psArrayFirst)
	case Str:
		v = p.sink.String(tok.Text)
	case Num:
		v = p.sink.Number(tok.Number)
	case Bool:
		v = p.sink.Bool(tok.Bool)
	case Null:
		v = p.sink.Null()
	default:
		panic("jfive: token " + tok.Kind.String() + " does not begin a value")
	}
	p.values = append(p.values, entry[V]{val: v})
}

// reduce pops the finished child on top of the value stack and adds it to
// the container beneath it. For an object the key lies between them.
func (p *Parser[V]) reduce(top parseState) {
	child := p.popValue().val
	if top == psArrayNext {
		arr := &p.values[len(p.values)-1]
		arr.val = p.sink.Append(arr.val, child)
		return
	}
	key := p.popValue().key
	obj := &p.values[len(p.values)-1]
	obj.val = p.sink.Set(obj.val, key, child)
}

func (p *Parser[V]) pushState(s parseState) { p.states = append(p.states, s) }
func (p *Parser[V]) setState(s parseState)  { p.states[len(p.states)-1] = s }
func (p *Parser[V]) popState()              { p.states = p.states[:len(p.states)-1] }

func (p *Parser[V]) popValue() entry[V] {
	n := len(p.values) - 1
	e := p.values[n]
	p.values[n] = entry[V]{}
	p.values = p.values[:n]
	return e
}
