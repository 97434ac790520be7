package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type AnswerKind int

const (
	AnswerSingle AnswerKind = iota + 1
	AnswerMultiple
	AnswerText
)

// Answer is the value recorded for one questionnaire question. Exactly one of
// Value (single, text) or Values (multiple) is meaningful, selected by Kind.
type Answer struct {
	Kind   AnswerKind
	Value  string
	Values []string
}

func Single(value string) Answer {
	return Answer{Kind: AnswerSingle, Value: value}
}

func Multiple(values ...string) Answer {
	a := Answer{Kind: AnswerMultiple, Values: make([]string, 0, len(values))}
	for _, v := range values {
		if !a.Has(v) {
			a.Values = append(a.Values, v)
		}
	}
	return a
}

func Text(value string) Answer {
	return Answer{Kind: AnswerText, Value: value}
}

// Has reports whether a multi-choice answer contains value.
func (a Answer) Has(value string) bool {
	for _, v := range a.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Toggle flips membership of value in a multi-choice answer, keeping
// selection order for the values that remain.
func (a Answer) Toggle(value string) Answer {
	out := Answer{Kind: AnswerMultiple, Values: make([]string, 0, len(a.Values)+1)}
	found := false
	for _, v := range a.Values {
		if v == value {
			found = true
			continue
		}
		out.Values = append(out.Values, v)
	}
	if !found {
		out.Values = append(out.Values, value)
	}
	return out
}

// String renders the answer for display: multi-choice values joined with ", ".
func (a Answer) String() string {
	if a.Kind == AnswerMultiple {
		return strings.Join(a.Values, ", ")
	}
	return a.Value
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == AnswerMultiple {
		values := a.Values
		if values == nil {
			values = []string{}
		}
		return json.Marshal(values)
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts the stored shapes: a string or an array of strings.
// Stored scalars carry no single/text distinction and decode as AnswerText.
// Other scalar JSON values are stringified.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Text("")
		return nil
	}

	switch data[0] {
	case '[':
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode multi-choice answer: %w", err)
		}
		values := make([]string, 0, len(raw))
		for _, v := range raw {
			values = append(values, fmt.Sprint(v))
		}
		*a = Multiple(values...)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode answer: %w", err)
		}
		*a = Text(s)
		return nil
	default:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode answer: %w", err)
		}
		*a = Text(fmt.Sprint(v))
		return nil
	}
}

// Answers maps question id to answer. Stored as a jsonb object.
type Answers map[string]Answer

func (a Answers) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]Answer(a))
}

func (a *Answers) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Answers{}
		return nil
	}

	m := map[string]Answer{}
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode questionnaire answers: %w", err)
	}
	*a = Answers(m)
	return nil
}

// Keys returns the question ids in lexical order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
