package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/abnffsm"
)

// grammarFile is the small JSON schema this CLI loads grammars from. It
// names already-built-in §6 character classes by name or gives an explicit
// byte/range/set — it is loader convenience, not an ABNF compiler (spec.md
// Non-goals).
type grammarFile struct {
	Name        string             `json:"name"`
	States      []grammarState     `json:"states"`
	Transitions []grammarTransition `json:"transitions"`
}

type grammarState struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"` // "start", "accept", "normal"
	Description string `json:"description"`
}

type grammarTransition struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Kind        string       `json:"kind"` // "class" (default) or "epsilon"
	Class       string       `json:"class,omitempty"`
	Byte        *int         `json:"byte,omitempty"`
	Range       []int        `json:"range,omitempty"`
	Set         []int        `json:"set,omitempty"`
	Priority    int          `json:"priority,omitempty"`
	Description string       `json:"description,omitempty"`
}

var namedClasses = map[string]func() abnffsm.CharClass{
	"ALPHA":  abnffsm.Alpha,
	"BIT":    abnffsm.Bit,
	"CHAR":   abnffsm.Char,
	"CR":     abnffsm.CR,
	"LF":     abnffsm.LF,
	"CRLF":   abnffsm.CRLF,
	"CTL":    abnffsm.CTL,
	"DIGIT":  abnffsm.Digit,
	"DQUOTE": abnffsm.DQuote,
	"HEXDIG": abnffsm.HexDig,
	"HTAB":   abnffsm.HTab,
	"LWSP":   abnffsm.LWSP,
	"OCTET":  abnffsm.Octet,
	"SP":     abnffsm.SP,
	"VCHAR":  abnffsm.VChar,
	"WSP":    abnffsm.WSP,
}

// loadGrammar reads a grammar file and builds an *abnffsm.FSM from it,
// failing on any structural issue (C10).
func loadGrammar(path string) (*abnffsm.FSM, error) {
	b, err := parseGrammar(path)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// loadGrammarUnchecked is loadGrammar without the structural-validation
// gate, for `graph validate` to inspect an invalid grammar's own issues.
func loadGrammarUnchecked(path string) (*abnffsm.FSM, error) {
	b, err := parseGrammar(path)
	if err != nil {
		return nil, err
	}
	return b.BuildUnchecked(), nil
}

func parseGrammar(path string) (*abnffsm.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar: %w", err)
	}

	var gf grammarFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	if gf.Name == "" {
		gf.Name = "grammar"
	}
	b := abnffsm.NewBuilder(gf.Name)

	for _, s := range gf.States {
		sb := b.State(s.Name)
		switch s.Kind {
		case "start":
			sb.Start()
		case "accept":
			sb.Accept()
		}
	}

	for _, tr := range gf.Transitions {
		opts := []abnffsm.TransitionOption{}
		if tr.Priority != 0 {
			opts = append(opts, abnffsm.WithPriority(tr.Priority))
		}
		if tr.Description != "" {
			opts = append(opts, abnffsm.WithDescription(tr.Description))
		}

		if tr.Kind == "epsilon" {
			b.State(tr.From).Epsilon(tr.To, opts...)
			continue
		}

		class, err := resolveClass(tr)
		if err != nil {
			return nil, fmt.Errorf("transition %s->%s: %w", tr.From, tr.To, err)
		}
		b.State(tr.From).On(class, tr.To, opts...)
	}

	return b, nil
}

func resolveClass(tr grammarTransition) (abnffsm.CharClass, error) {
	switch {
	case tr.Class != "":
		ctor, ok := namedClasses[tr.Class]
		if !ok {
			return abnffsm.CharClass{}, fmt.Errorf("unknown class %q", tr.Class)
		}
		return ctor(), nil
	case tr.Byte != nil:
		return abnffsm.Byte(byte(*tr.Byte)), nil
	case len(tr.Range) == 2:
		return abnffsm.ByteRange(byte(tr.Range[0]), byte(tr.Range[1])), nil
	case len(tr.Set) > 0:
		values := make([]byte, len(tr.Set))
		for i, v := range tr.Set {
			values[i] = byte(v)
		}
		return abnffsm.ByteSet(values...), nil
	default:
		return abnffsm.CharClass{}, fmt.Errorf("transition names no class, byte, range, or set")
	}
}
