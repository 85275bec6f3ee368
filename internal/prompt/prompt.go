// Package prompt resolves an option schema into an answer set, asking
// interactively for whatever the CLI arguments did not already decide.
package prompt

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/stencil-dev/stencil/schema"
)

// Resolve evaluates s against the supplied CLI arguments. Options whose
// policy permits it and that remain unresolved are collected into a
// single interactive form; everything else falls back to the argument or
// the default. Every schema option is present in the returned set.
//
// With interactive false no form is ever shown, regardless of policy.
func Resolve(s *schema.Schema, args map[string]string, interactive bool) (schema.AnswerSet, error) {
	answers := make(schema.AnswerSet, s.Len())

	var fields []huh.Field
	var commits []func()

	for _, opt := range s.Options() {
		raw, hasArg := args[opt.Name]

		ask := interactive && opt.Prompt != schema.PromptNever
		if opt.Prompt == schema.PromptIfNoArg && hasArg {
			ask = false
		}

		if !ask {
			if hasArg {
				answers[opt.Name] = coerce(opt, raw)
			} else {
				answers[opt.Name] = opt.Default
			}
			continue
		}

		field, commit := buildField(opt, raw, hasArg, answers)
		fields = append(fields, field)
		commits = append(commits, commit)
	}

	if len(fields) > 0 {
		form := huh.NewForm(huh.NewGroup(fields...))
		if err := form.Run(); err != nil {
			return nil, fmt.Errorf("prompting: %w", err)
		}
	}
	for _, commit := range commits {
		commit()
	}
	return answers, nil
}

// buildField constructs the interactive control for one option, seeded
// from the CLI argument when present or the default otherwise. The
// returned commit writes the final value into answers after the form ran.
func buildField(opt schema.Option, raw string, hasArg bool, answers schema.AnswerSet) (huh.Field, func()) {
	name := opt.Name
	title := opt.Description
	if title == "" {
		title = name
	}

	switch opt.Kind {
	case schema.KindConfirm:
		v, _ := opt.Default.(bool)
		if hasArg {
			v, _ = strconv.ParseBool(raw)
		}
		value := v
		return huh.NewConfirm().Title(title).Value(&value), func() {
			answers[name] = value
		}

	case schema.KindSelect:
		value := stringDefault(opt)
		if hasArg {
			value = raw
		}
		sel := huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(opt.Choices...)...).
			Value(&value)
		return sel, func() {
			answers[name] = value
		}

	default:
		value := stringDefault(opt)
		if hasArg {
			value = raw
		}
		return huh.NewInput().Title(title).Value(&value), func() {
			answers[name] = value
		}
	}
}

func coerce(opt schema.Option, raw string) any {
	if opt.Kind == schema.KindConfirm {
		b, _ := strconv.ParseBool(raw)
		return b
	}
	return raw
}

func stringDefault(opt schema.Option) string {
	if s, ok := opt.Default.(string); ok {
		return s
	}
	if opt.Default == nil {
		return ""
	}
	return fmt.Sprint(opt.Default)
}
