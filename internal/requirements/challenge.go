package requirements

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/sbc-solver/internal/contracts"
)

// Challenge pages list one requirement per line, e.g.
//
//	Players in Squad: 11
//	Min. Team Chemistry: 95
//	Same League Count: Max 5
//	Rarity: Gold
type lineRule struct {
	pattern *regexp.Regexp
	apply   func(raw contracts.RawRequirements, match []string)
}

// Rules are tried in order; the first match consumes the line.
var challengeRules = []lineRule{
	{regexp.MustCompile(`(?i)same\s+league\s+count\D*(\d+)`), setInt(contracts.KeyMaxSameLeague)},
	{regexp.MustCompile(`(?i)same\s+nation(?:ality)?\s+count\D*(\d+)`), setInt(contracts.KeyMaxSameNation)},
	{regexp.MustCompile(`(?i)same\s+club\s+count\D*(\d+)`), setInt(contracts.KeyMaxSameClub)},
	{regexp.MustCompile(`(?i)^leagues\s*:\s*min\.?\s*(\d+)`), setInt(contracts.KeyMinLeagues)},
	{regexp.MustCompile(`(?i)^(?:nations|nationalities)\s*:\s*min\.?\s*(\d+)`), setInt(contracts.KeyMinNations)},
	{regexp.MustCompile(`(?i)players(?:\s+in\s+(?:the\s+)?squad)?\s*:\s*(\d+)`), setInt(contracts.KeyPlayers)},
	{regexp.MustCompile(`(?i)chemistry\D*(\d+)`), setInt(contracts.KeyChemistry)},
	{regexp.MustCompile(`(?i)(?:team|squad)\s+rating\D*(\d+)`), setInt(contracts.KeyRating)},
	{regexp.MustCompile(`(?i)budget\D*(\d[\d,]*)`), setInt(contracts.KeyBudget)},
	{regexp.MustCompile(`(?i)rarity\s*:\s*(.+)$`), setRarity(contracts.KeyRarity)},
	{regexp.MustCompile(`(?i)^league\s*:\s*(.+)$`), setList(contracts.KeyLeagues)},
	{regexp.MustCompile(`(?i)^(?:nation|nationality)\s*:\s*(.+)$`), setList(contracts.KeyNations)},
	{regexp.MustCompile(`(?i)^club\s*:\s*(.+)$`), setList(contracts.KeyClubs)},
}

func setInt(key string) func(contracts.RawRequirements, []string) {
	return func(raw contracts.RawRequirements, match []string) {
		n, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
		if err != nil {
			// Keep the text so the normalizer reports the field instead of defaulting it.
			raw[key] = strings.TrimSpace(match[1])
			return
		}
		raw[key] = n
	}
}

var rarityWord = regexp.MustCompile(`(?i)\b(bronze|silver|gold)\b`)

// setRarity keeps only the tier words of a rarity line ("Rare Gold" is gold).
// A line naming no tier is kept verbatim so the normalizer rejects it.
func setRarity(key string) func(contracts.RawRequirements, []string) {
	return func(raw contracts.RawRequirements, match []string) {
		var tiers []string
		for _, word := range rarityWord.FindAllString(match[1], -1) {
			tier := strings.ToLower(word)
			if !slices.Contains(tiers, tier) {
				tiers = append(tiers, tier)
			}
		}
		if len(tiers) == 0 {
			tiers = []string{strings.TrimSpace(match[1])}
		}
		raw[key] = tiers
	}
}

func setList(key string) func(contracts.RawRequirements, []string) {
	return func(raw contracts.RawRequirements, match []string) {
		var values []string
		for _, part := range strings.FieldsFunc(match[1], func(r rune) bool { return r == ',' || r == '/' }) {
			if v := strings.TrimSpace(part); v != "" {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			raw[key] = values
		}
	}
}

// ParseChallengeText extracts a requirements record from challenge text.
// Unrecognised lines are ignored. A page that states no squad size is an 11-player
// challenge; a page that states no chemistry has no chemistry requirement.
func ParseChallengeText(text string) contracts.RawRequirements {
	raw := contracts.RawRequirements{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, rule := range challengeRules {
			if match := rule.pattern.FindStringSubmatch(line); match != nil {
				rule.apply(raw, match)
				break
			}
		}
	}

	if _, ok := raw[contracts.KeyPlayers]; !ok {
		raw[contracts.KeyPlayers] = DefaultConfig().Players
	}
	if _, ok := raw[contracts.KeyChemistry]; !ok {
		raw[contracts.KeyChemistry] = 0
	}

	return raw
}

// ParseChallengeHTML extracts a requirements record from a challenge page.
// Requirement list items are preferred; otherwise the body text is scanned line by line.
func ParseChallengeHTML(r io.Reader) (contracts.RawRequirements, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse challenge html: %w", err)
	}

	items := doc.Find(".sbc-requirements li")
	if items.Length() == 0 {
		items = doc.Find("li")
	}

	var lines []string
	items.Each(func(i int, item *goquery.Selection) {
		lines = append(lines, strings.Join(strings.Fields(item.Text()), " "))
	})

	if len(lines) == 0 {
		return ParseChallengeText(doc.Find("body").Text()), nil
	}
	return ParseChallengeText(strings.Join(lines, "\n")), nil
}
