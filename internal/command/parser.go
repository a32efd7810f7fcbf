package command

import (
	"regexp"
	"strconv"
	"strings"
)

// extractor pulls variables out of one regexp match. groups holds the
// submatch slice and matched the full matching substring.
type extractor func(groups []string, matched string) Variables

// pattern pairs a compiled regexp with its extractor.
type pattern struct {
	re      *regexp.Regexp
	extract extractor
}

// entry binds one kind to its ordered pattern list.
type entry struct {
	kind     Kind
	patterns []pattern
}

// grammar is the ordered pattern table. Order here is load-bearing:
// downstream behavior depends on first-match-wins across both kinds
// and patterns, so entries must not be reordered.
var grammar = []entry{
	{
		kind: KindDeleteWords,
		patterns: []pattern{
			{regexp.MustCompile(`delete (?:the )?last (\d+) words?`), extractCount},
			{regexp.MustCompile(`delete (\d+) words?`), extractCount},
		},
	},
	{
		kind: KindRepeat,
		patterns: []pattern{
			{regexp.MustCompile(`repeat (?:that |this )?(\d+) times?`), extractTimes},
			{regexp.MustCompile(`do (?:that |this )?(\d+) times?`), extractTimes},
		},
	},
	{
		kind: KindWait,
		patterns: []pattern{
			{regexp.MustCompile(`wait (?:for )?(\d+) ?(?:ms|s)\b`), extractWait},
			{regexp.MustCompile(`wait (?:for )?(\d+)`), extractWait},
		},
	},
	{
		kind: KindTypeText,
		patterns: []pattern{
			{regexp.MustCompile(`type "([^"]*)"`), extractText},
			{regexp.MustCompile(`type '([^']*)'`), extractText},
		},
	},
	{
		kind: KindPressKey,
		patterns: []pattern{
			{regexp.MustCompile(`press (?:key )?([a-z0-9+_]+)`), extractKey},
		},
	},
	{
		kind: KindClick,
		patterns: []pattern{
			{regexp.MustCompile(`click at (\d+)[,\s]+(\d+)`), extractClickAt},
			{regexp.MustCompile(`(left|right|middle) click`), extractClickButton},
			{regexp.MustCompile(`\bclick\b`), extractClickPlain},
		},
	},
	{
		kind: KindOpen,
		patterns: []pattern{
			{regexp.MustCompile(`open (.+)$`), extractTarget},
		},
	},
}

// Parse interprets free-form text against the grammar. It is
// state-free; the result is recomputed per input string. Unmatched
// text returns KindNone with empty variables.
func Parse(text string) (Kind, Variables) {
	normalized := normalizeNumbers(strings.ToLower(text))

	for _, e := range grammar {
		for _, p := range e.patterns {
			groups := p.re.FindStringSubmatch(normalized)
			if groups == nil {
				continue
			}
			return e.kind, p.extract(groups, groups[0])
		}
	}
	return KindNone, Variables{}
}

func extractCount(groups []string, _ string) Variables {
	return Variables{"count": atoi(groups[1])}
}

func extractTimes(groups []string, _ string) Variables {
	return Variables{"times": atoi(groups[1])}
}

// extractWait infers the unit from the matched substring: a match
// containing "s" but not "ms" is read as seconds and scaled to
// milliseconds. Callers depend on this exact substring check, crude as
// it is, so it must not be tightened.
func extractWait(groups []string, matched string) Variables {
	ms := atoi(groups[1])
	if strings.Contains(matched, "s") && !strings.Contains(matched, "ms") {
		ms *= 1000
	}
	return Variables{"duration_ms": ms}
}

func extractText(groups []string, _ string) Variables {
	return Variables{"text": groups[1]}
}

func extractKey(groups []string, _ string) Variables {
	return Variables{"key": groups[1]}
}

func extractClickAt(groups []string, _ string) Variables {
	return Variables{
		"x":      atoi(groups[1]),
		"y":      atoi(groups[2]),
		"button": "left",
	}
}

func extractClickButton(groups []string, _ string) Variables {
	return Variables{"button": groups[1]}
}

func extractClickPlain(_ []string, _ string) Variables {
	return Variables{"button": "left"}
}

func extractTarget(groups []string, _ string) Variables {
	return Variables{"target": strings.TrimSpace(groups[1])}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
