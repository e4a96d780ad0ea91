package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	domainconfig "github.com/felixgeelhaar/story-go/domain/config"
)

var (
	// ${VAR}, ${VAR:-default}, ${VAR:?message}
	bracketPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*|:\?[^}]*)?\}`)
	// $VAR
	simplePattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// envExpander expands environment variable references in configuration text.
type envExpander struct {
	// strict reports unset variables without a default as missing.
	strict  bool
	missing []string
}

// Expand expands ${VAR}, ${VAR:-default}, ${VAR:?message} and $VAR.
func (e *envExpander) Expand(input string) (string, error) {
	e.missing = nil

	result := bracketPattern.ReplaceAllStringFunc(input, e.expandBracket)
	result = simplePattern.ReplaceAllStringFunc(result, func(match string) string {
		return e.lookup(match[1:])
	})

	if len(e.missing) > 0 {
		return "", fmt.Errorf("%w: %s", domainconfig.ErrMissingEnvVar, strings.Join(e.missing, ", "))
	}
	return result, nil
}

func (e *envExpander) expandBracket(match string) string {
	groups := bracketPattern.FindStringSubmatch(match)
	name, modifier := groups[1], groups[2]
	value, ok := os.LookupEnv(name)

	switch {
	case strings.HasPrefix(modifier, ":-"):
		if !ok || value == "" {
			return modifier[2:]
		}
		return value
	case strings.HasPrefix(modifier, ":?"):
		if !ok || value == "" {
			e.missing = append(e.missing, fmt.Sprintf("%s: %s", name, modifier[2:]))
			return match
		}
		return value
	default:
		return e.lookup(name)
	}
}

func (e *envExpander) lookup(name string) string {
	value, ok := os.LookupEnv(name)
	if !ok && e.strict {
		e.missing = append(e.missing, name)
	}
	return value
}

// ExpandEnv expands environment variables, leaving unset ones empty.
func ExpandEnv(input string) string {
	e := &envExpander{}
	result, _ := e.Expand(input)
	return result
}

// ExpandEnvStrict expands environment variables and returns an error for missing vars.
func ExpandEnvStrict(input string) (string, error) {
	e := &envExpander{strict: true}
	return e.Expand(input)
}
