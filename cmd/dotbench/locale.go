package main

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// localeEnv lists the variables consulted for number formatting, in POSIX
// precedence order.
var localeEnv = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// newPrinter returns a printer for the process locale, falling back to
// English when no variable is set or the value is not a BCP 47 tag after
// stripping the encoding (en_US.UTF-8 -> en-US). "C" and "POSIX" fall back
// the same way.
func newPrinter() *message.Printer {
	return message.NewPrinter(localeTag())
}

func localeTag() language.Tag {
	for _, env := range localeEnv {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		return parseLocale(val)
	}
	return language.English
}

func parseLocale(val string) language.Tag {
	name, _, _ := strings.Cut(val, ".")
	name, _, _ = strings.Cut(name, "@")
	name = strings.ReplaceAll(name, "_", "-")
	if name == "C" || name == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.English
	}
	return tag
}
