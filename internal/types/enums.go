// Package types provides type definitions for the resume document and its records.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// EnumError reports a value outside one of the closed enumerations.
type EnumError struct {
	Kind  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Kind, e.Value)
}

// Template selects the renderer. It never affects stored content.
type Template string

// Known templates
const (
	TemplateModern   Template = "modern"
	TemplateClassic  Template = "classic"
	TemplateMinimal  Template = "minimal"
	TemplateCreative Template = "creative"
)

// Templates returns every template in display order.
func Templates() []Template {
	return []Template{TemplateModern, TemplateClassic, TemplateMinimal, TemplateCreative}
}

// Valid reports whether t is one of the known templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateMinimal, TemplateCreative:
		return true
	}
	return false
}

// ParseTemplate converts s into a Template, rejecting unknown names.
func ParseTemplate(s string) (Template, error) {
	return parseEnum("template", s, Template.Valid)
}

// UnmarshalJSON rejects unknown templates.
func (t *Template) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, "template", t, Template.Valid)
}

// AccentColor is the cosmetic color handed to renderers.
type AccentColor string

// Known accent colors
const (
	AccentBlue   AccentColor = "blue"
	AccentGreen  AccentColor = "green"
	AccentPurple AccentColor = "purple"
	AccentRed    AccentColor = "red"
	AccentOrange AccentColor = "orange"
	AccentTeal   AccentColor = "teal"
	AccentGray   AccentColor = "gray"
)

// AccentColors returns every accent color in display order.
func AccentColors() []AccentColor {
	return []AccentColor{AccentBlue, AccentGreen, AccentPurple, AccentRed, AccentOrange, AccentTeal, AccentGray}
}

// Valid reports whether c is one of the known accent colors.
func (c AccentColor) Valid() bool {
	switch c {
	case AccentBlue, AccentGreen, AccentPurple, AccentRed, AccentOrange, AccentTeal, AccentGray:
		return true
	}
	return false
}

// ParseAccentColor converts s into an AccentColor, rejecting unknown names.
func ParseAccentColor(s string) (AccentColor, error) {
	return parseEnum("accent color", s, AccentColor.Valid)
}

// UnmarshalJSON rejects unknown accent colors.
func (c *AccentColor) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, "accent color", c, AccentColor.Valid)
}

// SkillLevel is the optional self-assessed level of a skill.
type SkillLevel string

// Known skill levels
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// SkillLevels returns every level from lowest to highest.
func SkillLevels() []SkillLevel {
	return []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
}

// Valid reports whether l is one of the known levels.
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// Percent is the fill ratio renderers use for level bars.
func (l SkillLevel) Percent() int {
	switch l {
	case LevelExpert:
		return 100
	case LevelAdvanced:
		return 75
	case LevelIntermediate:
		return 50
	case LevelBeginner:
		return 25
	}
	return 0
}

// ParseSkillLevel converts s into a SkillLevel, rejecting unknown names.
func ParseSkillLevel(s string) (SkillLevel, error) {
	return parseEnum("skill level", s, SkillLevel.Valid)
}

// UnmarshalJSON rejects unknown levels.
func (l *SkillLevel) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, "skill level", l, SkillLevel.Valid)
}

// Proficiency is the optional spoken-language proficiency.
type Proficiency string

// Known proficiencies
const (
	ProficiencyBasic          Proficiency = "basic"
	ProficiencyConversational Proficiency = "conversational"
	ProficiencyFluent         Proficiency = "fluent"
	ProficiencyNative         Proficiency = "native"
)

// Proficiencies returns every proficiency from lowest to highest.
func Proficiencies() []Proficiency {
	return []Proficiency{ProficiencyBasic, ProficiencyConversational, ProficiencyFluent, ProficiencyNative}
}

// Valid reports whether p is one of the known proficiencies.
func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBasic, ProficiencyConversational, ProficiencyFluent, ProficiencyNative:
		return true
	}
	return false
}

// ParseProficiency converts s into a Proficiency, rejecting unknown names.
func ParseProficiency(s string) (Proficiency, error) {
	return parseEnum("proficiency", s, Proficiency.Valid)
}

// UnmarshalJSON rejects unknown proficiencies.
func (p *Proficiency) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, "proficiency", p, Proficiency.Valid)
}

func parseEnum[T ~string](kind, s string, valid func(T) bool) (T, error) {
	v := T(s)
	if !valid(v) {
		return "", &EnumError{Kind: kind, Value: s}
	}
	return v, nil
}

func unmarshalEnum[T ~string](b []byte, kind string, dst *T, valid func(T) bool) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%s must be a string: %w", kind, err)
	}
	v, err := parseEnum(kind, s, valid)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
