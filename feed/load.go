package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/solacecommunity/feedstreams/errors"
)

// Feed is one loaded feed: its rules plus optional metadata.
type Feed struct {
	Name  string
	Info  *Info
	Rules []Rule
}

// LoadFile parses a feed rule file (a JSON array of rule objects),
// validates every rule against the embedded schema, and applies publish
// setting defaults. Loading fails fast on the first malformed rule,
// naming the offending event.
func LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Feed", "LoadFile", "read rule file")
	}

	var rawRules []json.RawMessage
	if err := json.Unmarshal(data, &rawRules); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%s: %w", filepath.Base(path), err),
			"Feed", "LoadFile", "parse rule array")
	}

	rules := make([]Rule, 0, len(rawRules))
	for i, raw := range rawRules {
		if err := validateRule(raw); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%s, rule %s: %w", filepath.Base(path), ruleIdentity(raw, i), err),
				"Feed", "LoadFile", "validate rule")
		}

		var rule Rule
		if err := json.Unmarshal(raw, &rule); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%s, rule %s: %w", filepath.Base(path), ruleIdentity(raw, i), err),
				"Feed", "LoadFile", "decode rule")
		}

		rule.applyDefaults()
		rules = append(rules, rule)
	}

	return rules, nil
}

// ruleIdentity extracts the event name from a raw rule for error messages,
// falling back to the array index when the name itself is missing.
func ruleIdentity(raw json.RawMessage, index int) string {
	var probe struct {
		EventName string `json:"eventName"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && probe.EventName != "" {
		return fmt.Sprintf("%q", probe.EventName)
	}
	return fmt.Sprintf("#%d", index)
}

// LoadInfo parses a feedinfo.json metadata file.
func LoadInfo(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Feed", "LoadInfo", "read info file")
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%s: %w", filepath.Base(path), err),
			"Feed", "LoadInfo", "decode info file")
	}
	return &info, nil
}

// LoadDir loads every feed under a directory. Each immediate subdirectory
// holding a feedrules.json is one feed; feedinfo.json is picked up when
// present. A feedrules.json directly in dir loads as a single unnamed feed.
func LoadDir(dir string) ([]Feed, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Feed", "LoadDir", "read feeds directory")
	}

	var feeds []Feed

	if _, err := os.Stat(filepath.Join(dir, "feedrules.json")); err == nil {
		feed, err := loadOne(filepath.Base(dir), dir)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rulesPath := filepath.Join(dir, entry.Name(), "feedrules.json")
		if _, err := os.Stat(rulesPath); err != nil {
			continue
		}
		feed, err := loadOne(entry.Name(), filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}

	if len(feeds) == 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("no feedrules.json found under %s", dir),
			"Feed", "LoadDir", "discover feeds")
	}

	sort.Slice(feeds, func(i, j int) bool { return feeds[i].Name < feeds[j].Name })
	return feeds, nil
}

func loadOne(name, dir string) (Feed, error) {
	rules, err := LoadFile(filepath.Join(dir, "feedrules.json"))
	if err != nil {
		return Feed{}, err
	}

	feed := Feed{Name: name, Rules: rules}

	infoPath := filepath.Join(dir, "feedinfo.json")
	if _, err := os.Stat(infoPath); err == nil {
		info, err := LoadInfo(infoPath)
		if err != nil {
			return Feed{}, err
		}
		feed.Info = info
	}

	return feed, nil
}
