package policy

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding of a rendered document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.:-]+)\s*\}\}`)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load parses a YAML policy template. JSON templates parse too, since
// JSON is a YAML subset.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("policy: parsing template: %w", err)
	}
	return &doc, nil
}

// Render substitutes params into every string value of the template and
// validates the result. It fails if any placeholder is left unresolved,
// naming the missing parameters.
func Render(doc *Document, params map[string]string) (*Document, error) {
	out := &Document{
		Version:   substitute(doc.Version, params),
		Statement: make([]Statement, len(doc.Statement)),
	}
	for i, st := range doc.Statement {
		out.Statement[i] = Statement{
			Sid:      substitute(st.Sid, params),
			Effect:   substitute(st.Effect, params),
			Action:   substituteList(st.Action, params),
			Resource: substituteList(st.Resource, params),
		}
		if st.Condition != nil {
			cond := make(map[string]map[string]StringOrList, len(st.Condition))
			for op, kv := range st.Condition {
				sub := make(map[string]StringOrList, len(kv))
				for key, vals := range kv {
					sub[substitute(key, params)] = substituteList(vals, params)
				}
				cond[op] = sub
			}
			out.Statement[i].Condition = cond
		}
	}
	if missing := unresolved(out); len(missing) > 0 {
		return nil, fmt.Errorf("policy: unresolved placeholders: %s", strings.Join(missing, ", "))
	}
	if err := validate.Struct(out); err != nil {
		return nil, fmt.Errorf("policy: invalid document: %w", err)
	}
	return out, nil
}

// Write encodes the document in the requested format.
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("policy: unknown format %q", format)
	}
}

func substitute(s string, params map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := params[name]; ok {
			return v
		}
		return m // left in place, reported by unresolved()
	})
}

func substituteList(in StringOrList, params map[string]string) StringOrList {
	out := make(StringOrList, len(in))
	for i, s := range in {
		out[i] = substitute(s, params)
	}
	return out
}

// unresolved collects the distinct placeholder names still present in
// the document, sorted for stable error messages.
func unresolved(doc *Document) []string {
	seen := map[string]bool{}
	collect := func(s string) {
		for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
			seen[m[1]] = true
		}
	}
	collect(doc.Version)
	for _, st := range doc.Statement {
		collect(st.Sid)
		collect(st.Effect)
		for _, s := range st.Action {
			collect(s)
		}
		for _, s := range st.Resource {
			collect(s)
		}
		for _, cond := range st.Condition {
			for key, vals := range cond {
				collect(key)
				for _, s := range vals {
					collect(s)
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
