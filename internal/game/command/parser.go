package command

import "strings"

// ParseResult holds the parsed verb and noun phrase from a text line.
type ParseResult struct {
	// Verb is the first word of the input, lowercased.
	Verb string
	// Noun is the remaining words rejoined with single spaces; empty if absent.
	Noun string
	// Words are all lowercased tokens of the input, verb included.
	Words []string
}

// HasNoun reports whether a noun phrase followed the verb.
func (p ParseResult) HasNoun() bool {
	return p.Noun != ""
}

// Parse lowercases a text line and splits it into a verb and a noun phrase.
// Multi-word nouns such as "blue key card" are kept together.
//
// Postcondition: Returns a ParseResult. If line is blank, Verb is empty.
func Parse(line string) ParseResult {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return ParseResult{}
	}
	return ParseResult{
		Verb:  words[0],
		Noun:  strings.Join(words[1:], " "),
		Words: words,
	}
}
