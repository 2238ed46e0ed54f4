package common

import (
	"encoding/json"
	"sort"
)

// Properties is the structured property bag of a node: a small set of typed
// known keys plus an open extension map for everything else a dump carries.
// Values in Extra may be strings, numbers, or numeric vectors; they are
// validated once at ingestion, the query engine only reads them.
type Properties struct {
	Text           string    `json:"text,omitempty"`
	FullName       string    `json:"full_name,omitempty"`
	Definition     string    `json:"definition,omitempty"`
	SectionText    string    `json:"section_text,omitempty"`
	SectionHeading string    `json:"section_heading,omitempty"`
	SectionNum     string    `json:"section_num,omitempty"`
	Tag            string    `json:"tag,omitempty"`
	TitleNum       int       `json:"title_num,omitempty"`
	Embedding      []float64 `json:"embedding,omitempty"`

	Extra map[string]any `json:"-"`
}

var knownPropertyKeys = map[string]struct{}{
	"text":            {},
	"full_name":       {},
	"definition":      {},
	"section_text":    {},
	"section_heading": {},
	"section_num":     {},
	"tag":             {},
	"title_num":       {},
	"embedding":       {},
}

// StringValue returns the string stored under key, looking at the known keys
// first and the extension map second. Non-string extension values report
// absent rather than failing.
func (p *Properties) StringValue(key string) (string, bool) {
	switch key {
	case "text":
		return p.Text, p.Text != ""
	case "full_name":
		return p.FullName, p.FullName != ""
	case "definition":
		return p.Definition, p.Definition != ""
	case "section_text":
		return p.SectionText, p.SectionText != ""
	case "section_heading":
		return p.SectionHeading, p.SectionHeading != ""
	case "section_num":
		return p.SectionNum, p.SectionNum != ""
	case "tag":
		return p.Tag, p.Tag != ""
	}
	if v, ok := p.Extra[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// StringValues returns every non-empty string value in the bag, known keys
// first, extension keys in sorted order so the result is deterministic.
func (p *Properties) StringValues() []string {
	var values []string
	for _, v := range []string{
		p.Text, p.FullName, p.Definition, p.SectionText,
		p.SectionHeading, p.SectionNum, p.Tag,
	} {
		if v != "" {
			values = append(values, v)
		}
	}

	keys := make([]string, 0, len(p.Extra))
	for k := range p.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := p.Extra[k].(string); ok && s != "" {
			values = append(values, s)
		}
	}
	return values
}

// UnmarshalJSON decodes the bag, routing unknown keys into Extra so open-ended
// dumps survive a round trip.
func (p *Properties) UnmarshalJSON(data []byte) error {
	type plain Properties
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if _, ok := knownPropertyKeys[key]; ok {
			delete(raw, key)
		}
	}
	if len(raw) == 0 {
		raw = nil
	}

	*p = Properties(known)
	p.Extra = raw
	return nil
}

// MarshalJSON encodes known keys and extension keys into one flat object.
func (p Properties) MarshalJSON() ([]byte, error) {
	type plain Properties
	base, err := json.Marshal(plain(p))
	if err != nil {
		return nil, err
	}

	if len(p.Extra) == 0 {
		return base, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range p.Extra {
		if _, ok := knownPropertyKeys[k]; ok {
			continue
		}
		merged[k] = v
	}
	return json.Marshal(merged)
}
