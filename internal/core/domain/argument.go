package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type ArgumentKind int

const (
	KindString ArgumentKind = iota
	KindNumber
	KindEnum
	KindUser
)

func (k ArgumentKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindEnum:
		return "Enum"
	case KindUser:
		return "User"
	default:
		return fmt.Sprintf("ArgumentKind(%d)", int(k))
	}
}

// ArgumentType is the kind of value a command parameter accepts. Enum types additionally carry a display name and
// the ordered list of accepted literals.
type ArgumentType struct {
	Kind     ArgumentKind
	EnumName string
	Variants []string
}

func StringType() ArgumentType {
	return ArgumentType{Kind: KindString}
}

func NumberType() ArgumentType {
	return ArgumentType{Kind: KindNumber}
}

func EnumType(name string, variants ...string) ArgumentType {
	return ArgumentType{Kind: KindEnum, EnumName: name, Variants: variants}
}

func UserType() ArgumentType {
	return ArgumentType{Kind: KindUser}
}

var (
	ErrEmptyEnum     = errors.New("enum type has no variants")
	ErrDuplicateEnum = errors.New("enum type has duplicate variants")
)

// Validate reports enum types that could never match or would match ambiguously.
func (t ArgumentType) Validate() error {
	if t.Kind != KindEnum {
		return nil
	}

	if len(t.Variants) == 0 {
		return fmt.Errorf("%s: %w", t.EnumName, ErrEmptyEnum)
	}

	seen := make(map[string]struct{}, len(t.Variants))
	for _, v := range t.Variants {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%s (%q): %w", t.EnumName, v, ErrDuplicateEnum)
		}
		seen[v] = struct{}{}
	}

	return nil
}

func (t ArgumentType) String() string {
	if t.Kind == KindEnum {
		return fmt.Sprintf("%s (%s)", t.EnumName, strings.Join(t.Variants, "|"))
	}

	return t.Kind.String()
}

// describe renders the type for user-facing messages, e.g. "a Number" or "one of hand (rock|paper)".
func (t ArgumentType) describe() string {
	switch t.Kind {
	case KindEnum:
		return "one of " + t.String()
	case KindUser:
		return "a User ID"
	default:
		return "a " + t.Kind.String()
	}
}

type ArgumentSignature struct {
	Name string
	Type ArgumentType
}

func NewArgumentSignature(name string, argType ArgumentType) ArgumentSignature {
	return ArgumentSignature{Name: name, Type: argType}
}

// Parse validates a single raw token against the signature. The token is used as-is, no trimming or case folding
// is applied.
func (s ArgumentSignature) Parse(token string) (ParsedArgument, bool) {
	var value ArgumentValue

	switch s.Type.Kind {
	case KindString:
		value = StringValue(token)
	case KindNumber:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return ParsedArgument{}, false
		}
		value = NumberValue(n)
	case KindEnum:
		found := false
		for _, v := range s.Type.Variants {
			if v == token {
				value = EnumValue(v)
				found = true
				break
			}
		}
		if !found {
			return ParsedArgument{}, false
		}
	case KindUser:
		// raw IDs only, mentions and nicknames are not resolved
		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return ParsedArgument{}, false
		}
		value = UserValue(id)
	default:
		return ParsedArgument{}, false
	}

	return ParsedArgument{Name: s.Name, Value: value}, true
}

func (s ArgumentSignature) String() string {
	return fmt.Sprintf("<%s: %s>", s.Name, s.Type)
}

// ArgumentValue is a parsed argument tagged with the kind of the signature that produced it.
type ArgumentValue struct {
	kind ArgumentKind
	text string
	num  int64
	user uint64
}

func StringValue(s string) ArgumentValue {
	return ArgumentValue{kind: KindString, text: s}
}

func NumberValue(n int64) ArgumentValue {
	return ArgumentValue{kind: KindNumber, num: n}
}

func EnumValue(variant string) ArgumentValue {
	return ArgumentValue{kind: KindEnum, text: variant}
}

func UserValue(id uint64) ArgumentValue {
	return ArgumentValue{kind: KindUser, user: id}
}

func (v ArgumentValue) Kind() ArgumentKind {
	return v.kind
}

func (v ArgumentValue) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

func (v ArgumentValue) AsNumber() (int64, bool) {
	return v.num, v.kind == KindNumber
}

func (v ArgumentValue) AsEnum() (string, bool) {
	return v.text, v.kind == KindEnum
}

func (v ArgumentValue) AsUser() (uint64, bool) {
	return v.user, v.kind == KindUser
}

func (v ArgumentValue) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatInt(v.num, 10)
	case KindUser:
		return strconv.FormatUint(v.user, 10)
	default:
		return v.text
	}
}

type ParsedArgument struct {
	Name  string
	Value ArgumentValue
}

// Example is a sample invocation of a command, shown by help.
type Example struct {
	Arguments   []string
	Description string
}

func NewExample(description string, arguments ...string) Example {
	return Example{Arguments: arguments, Description: description}
}
