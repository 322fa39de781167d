package pagenav

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/samber/lo"
)

// Vars are GET variables preserved across pagination links. A value is either a
// scalar (string, number, bool, fmt.Stringer) or a list ([]string, []any).
type Vars map[string]any

const arraySuffix = "[]"

var _htmlAttrEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// Encode builds the canonical query string "?k=v&k2=v2" with keys in lexical order.
//
// Lists are joined with commas into a single value when arrayToCSV is set, otherwise
// they are written in repeated bracket notation:
//
//	Vars{"a": "x", "b": []string{"1", "2"}}.Encode(true)  // ?a=x&b=1%2C2
//	Vars{"a": "x", "b": []string{"1", "2"}}.Encode(false) // ?a=x&b%5B%5D=1&b%5B%5D=2
//
// Empty vars encode to an empty string.
func (v Vars) Encode(arrayToCSV bool) string {
	if len(v) == 0 {
		return ""
	}

	keys := lo.Keys(v)
	slices.Sort(keys)

	var sb strings.Builder
	sb.WriteByte('?')
	for _, key := range keys {
		values, isList := listValues(v[key])
		switch {
		case !isList:
			writePair(&sb, key, stringValue(v[key]))
		case arrayToCSV:
			writePair(&sb, key, strings.Join(values, ","))
		default:
			for _, value := range values {
				writePair(&sb, key+arraySuffix, value)
			}
		}
	}

	return strings.TrimRight(_htmlAttrEscaper.Replace(sb.String()), "?&")
}

func writePair(sb *strings.Builder, key, value string) {
	sb.WriteString(url.QueryEscape(key))
	sb.WriteByte('=')
	sb.WriteString(url.QueryEscape(value))
	sb.WriteByte('&')
}

func listValues(value any) ([]string, bool) {
	switch vt := value.(type) {
	case []string:
		return vt, true
	case []any:
		return lo.Map(vt, func(item any, _ int) string {
			return stringValue(item)
		}), true
	default:
		return nil, false
	}
}

func stringValue(value any) string {
	switch vt := value.(type) {
	case nil:
		return ""
	case string:
		return vt
	case fmt.Stringer:
		return vt.String()
	default:
		return fmt.Sprint(vt)
	}
}

// PreservedVars selects GET variables to carry over to pagination links.
//
// explicit takes priority whenever it is not empty. Otherwise the whitelisted request
// variables are kept: a variable repeated in the request, or sent in bracket notation
// ("k[]"), becomes a list.
func PreservedVars(request url.Values, whitelist []string, explicit Vars) Vars {
	if len(explicit) > 0 {
		return lo.Assign(explicit)
	}

	ret := make(Vars, len(whitelist))
	for _, key := range whitelist {
		key = strings.TrimSuffix(key, arraySuffix)
		if values, ok := request[key+arraySuffix]; ok {
			ret[key] = slices.Clone(values)
			continue
		}

		values, ok := request[key]
		if !ok {
			continue
		}
		ret[key] = lo.Ternary[any](len(values) == 1, values[0], slices.Clone(values))
	}

	return ret
}

// VarsFromStruct converts a struct tagged for github.com/google/go-querystring into Vars.
//
// Usage:
//
//	type Filter struct {
//		Query string   `url:"q,omitempty"`
//		Tags  []string `url:"tag,omitempty"`
//	}
//
//	vars, err := VarsFromStruct(Filter{Query: "go", Tags: []string{"a", "b"}})
func VarsFromStruct(v any) (Vars, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot encode vars: %v", ErrInvalidConfiguration, err)
	}

	ret := make(Vars, len(values))
	for key, list := range values {
		key, isList := strings.CutSuffix(key, arraySuffix)
		if len(list) == 1 && !isList {
			ret[key] = list[0]
			continue
		}
		ret[key] = list
	}

	return ret, nil
}
