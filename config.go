package pagenav

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template placeholders.
const (
	PlaceholderContent = "{content}"
	PlaceholderClass   = "{class}"
	PlaceholderURL     = "{url}"
	PlaceholderLabel   = "{label}"
)

// DefaultPageNumURLPrefix names the page segment ("page2") or the page query parameter ("page=2").
const DefaultPageNumURLPrefix = "page"

// Classes holds the CSS classes assigned to items. Classes are additive: an item gets the
// class of its type plus every positional class that applies to it.
type Classes struct {
	Previous  string `yaml:"previous"`
	Next      string `yaml:"next"`
	First     string `yaml:"first"`
	Last      string `yaml:"last"`
	Number    string `yaml:"number"`
	Current   string `yaml:"current"`
	Separator string `yaml:"separator"`

	// FirstItem and LastItem mark the first and the last item of the list.
	FirstItem string `yaml:"first_item"`
	LastItem  string `yaml:"last_item"`
	// FirstNumber and LastNumber mark the first and the last numbered page of the list.
	FirstNumber string `yaml:"first_number"`
	LastNumber  string `yaml:"last_number"`
}

func (c Classes) forType(t ItemType) string {
	switch t {
	case ItemPrevious:
		return c.Previous
	case ItemNext:
		return c.Next
	case ItemFirst:
		return c.First
	case ItemLast:
		return c.Last
	case ItemNumber:
		return c.Number
	case ItemCurrent:
		return c.Current
	case ItemSeparator:
		return c.Separator
	default:
		return ""
	}
}

// RenderConfig describes how a plan turns into markup and URLs.
type RenderConfig struct {
	// ListTemplate wraps the whole list, {content} receives the rendered items.
	ListTemplate string `yaml:"list_template"`
	// ItemTemplate wraps every item, {class} receives its classes, {content} its link.
	ItemTemplate string `yaml:"item_template"`
	// LinkTemplate renders a link to a page from {url} and {label}.
	LinkTemplate string `yaml:"link_template"`
	// CurrentLinkTemplate replaces LinkTemplate for the current page.
	CurrentLinkTemplate string `yaml:"current_link_template"`

	PreviousLabel  string `yaml:"previous_label"`
	NextLabel      string `yaml:"next_label"`
	FirstLabel     string `yaml:"first_label"`
	LastLabel      string `yaml:"last_label"`
	SeparatorLabel string `yaml:"separator_label"`

	Classes Classes `yaml:"classes"`

	// NumPageLinks is the maximum number of consecutive pages shown around the current one.
	NumPageLinks int `yaml:"num_page_links"`
	// BaseURL is the URL of the first page. Left empty, links are relative to the
	// current URL and the first page links to "?" (or "/" with AllowPageNum).
	BaseURL string `yaml:"base_url"`
	// QueryString is the canonical query string appended to every URL, see Vars.Encode.
	QueryString string `yaml:"query_string"`
	// ArrayToCSV makes Vars.Encode join lists with commas instead of bracket notation.
	ArrayToCSV bool `yaml:"array_to_csv"`

	// AllowPageNum puts the page number into the path (/page2) instead of the query (?page=2).
	AllowPageNum bool `yaml:"allow_page_num"`
	// SlashURLs enforces a trailing slash on the base URL.
	SlashURLs bool `yaml:"slash_urls"`
	// SlashPageNum appends a trailing slash after the page segment (/page2/).
	SlashPageNum bool `yaml:"slash_page_num"`
	// PageNumURLPrefix precedes the page number in the path, or names the query parameter.
	PageNumURLPrefix string `yaml:"page_num_url_prefix"`
}

// DefaultRenderConfig returns a config producing a Bootstrap-like list.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ListTemplate:        `<ul class="pagination">{content}</ul>`,
		ItemTemplate:        `<li class="{class}">{content}</li>`,
		LinkTemplate:        `<a href="{url}">{label}</a>`,
		CurrentLinkTemplate: `<a href="{url}" aria-current="page">{label}</a>`,

		PreviousLabel:  DefaultPreviousLabel,
		NextLabel:      DefaultNextLabel,
		FirstLabel:     DefaultFirstLabel,
		LastLabel:      DefaultLastLabel,
		SeparatorLabel: DefaultSeparatorLabel,

		Classes: Classes{
			Previous:  "prev",
			Next:      "next",
			First:     "first",
			Last:      "last",
			Current:   "active",
			Separator: "disabled",
		},

		NumPageLinks:     DefaultPageLinks,
		PageNumURLPrefix: DefaultPageNumURLPrefix,
	}
}

// LoadRenderConfig decodes a YAML document on top of DefaultRenderConfig. Keys missing
// from the document keep their defaults, unknown keys are ignored.
func LoadRenderConfig(data []byte) (RenderConfig, error) {
	cfg := DefaultRenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("%w: cannot decode render config: %v", ErrInvalidConfiguration, err)
	}

	if err := cfg.validate(); err != nil {
		return RenderConfig{}, err
	}

	return cfg, nil
}

// Merge returns a copy of the config with options applied on top. Options use the
// YAML keys of RenderConfig; nested classes are given as a map under "classes".
// Unknown keys are ignored.
//
// Usage:
//
//	cfg, err := DefaultRenderConfig().Merge(map[string]any{
//		"num_page_links": 7,
//		"classes":        map[string]any{"current": "is-current"},
//	})
func (c RenderConfig) Merge(options map[string]any) (RenderConfig, error) {
	if len(options) > 0 {
		data, err := yaml.Marshal(options)
		if err != nil {
			return RenderConfig{}, fmt.Errorf("%w: cannot encode render options: %v", ErrInvalidConfiguration, err)
		}

		if err = yaml.Unmarshal(data, &c); err != nil {
			return RenderConfig{}, fmt.Errorf("%w: cannot apply render options: %v", ErrInvalidConfiguration, err)
		}
	}

	if err := c.validate(); err != nil {
		return RenderConfig{}, err
	}

	return c, nil
}

func (c RenderConfig) validate() error {
	if c.NumPageLinks < 1 {
		return fmt.Errorf("%w: num_page_links must be >= 1, got %d", ErrInvalidConfiguration, c.NumPageLinks)
	}

	if !c.AllowPageNum && c.PageNumURLPrefix == "" {
		return fmt.Errorf("%w: page_num_url_prefix is required for query string page numbers", ErrInvalidConfiguration)
	}

	return nil
}
