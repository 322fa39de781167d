package pagenav

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Result is the rendered pagination.
type Result struct {
	// HTML is the complete markup, empty when there is nothing to paginate.
	HTML string
	// PreviousURL and NextURL point to the pages adjacent to the current one. They are
	// meant for rel="prev" / rel="next" links in the page head, see HeadLinks.
	PreviousURL string
	NextURL     string
	// IsLastPage reports whether the current page is the last one. It is nil when
	// nothing was rendered.
	IsLastPage *bool
}

// HeadLinks returns <link rel="prev"> and <link rel="next"> tags for the adjacent pages,
// one per line. Publishing them is up to the caller.
func (r Result) HeadLinks() string {
	links := make([]string, 0, 2)
	if r.PreviousURL != "" {
		links = append(links, fmt.Sprintf(`<link rel="prev" href="%s">`, r.PreviousURL))
	}
	if r.NextURL != "" {
		links = append(links, fmt.Sprintf(`<link rel="next" href="%s">`, r.NextURL))
	}

	return strings.Join(links, "\n")
}

// Renderer turns a plan into markup.
type Renderer interface {
	Render(plan Plan, cfg RenderConfig) Result
}

// RendererFunc is a function adapter that implements Renderer.
type RendererFunc func(plan Plan, cfg RenderConfig) Result

// Render implements Renderer.
func (f RendererFunc) Render(plan Plan, cfg RenderConfig) Result {
	return f(plan, cfg)
}

// DefaultRenderer renders plans with Render.
var DefaultRenderer Renderer = RendererFunc(Render)

var (
	_emptyClassAttr = regexp.MustCompile(`\s+class\s*=\s*(?:"\s*"|'\s*')`)
	_digits         = []rune("0123456789")
)

// Render builds the markup of the plan.
//
// Every item except separators links to its page through cfg.PageURL. Its link is put
// into LinkTemplate (CurrentLinkTemplate for the current page), the link into
// ItemTemplate, and all items into ListTemplate. An item left without classes loses
// its class attribute.
func Render(plan Plan, cfg RenderConfig) Result {
	if len(plan) == 0 {
		return Result{}
	}

	isLastPage := len(plan) == 1
	numeric := func(item Item) bool {
		return isPlainNumber(cfg.label(item))
	}
	_, firstNumber, _ := lo.FindIndexOf(plan, numeric)
	_, lastNumber, _ := lo.FindLastIndexOf(plan, numeric)

	urls := lo.Map(plan, func(item Item, _ int) string {
		return lo.Ternary(item.Type == ItemSeparator, "", cfg.PageURL(item.Page))
	})

	// The neighbour of the current page may be a separator when the window is
	// narrow, the adjacent page URL is then built directly.
	adjacentURL := func(idx, page int) string {
		if idx < 0 || idx >= len(plan) {
			return ""
		}
		if plan[idx].Type == ItemSeparator {
			return cfg.PageURL(page)
		}

		return urls[idx]
	}

	var (
		res Result
		sb  strings.Builder
	)
	for i, item := range plan {
		classes := []string{cfg.Classes.forType(item.Type)}
		if i == 0 {
			classes = append(classes, cfg.Classes.FirstItem)
		}
		if i == len(plan)-1 {
			classes = append(classes, cfg.Classes.LastItem)
		}
		if i == firstNumber {
			classes = append(classes, cfg.Classes.FirstNumber)
		}
		if i == lastNumber {
			classes = append(classes, cfg.Classes.LastNumber)
			if item.Type == ItemCurrent {
				isLastPage = true
			}
		}

		if item.Type == ItemCurrent {
			res.PreviousURL = adjacentURL(i-1, item.Page-1)
			res.NextURL = adjacentURL(i+1, item.Page+1)
		}

		sb.WriteString(renderItem(cfg, item, urls[i], classes))
	}

	res.HTML = strings.ReplaceAll(cfg.ListTemplate, PlaceholderContent, sb.String())
	res.IsLastPage = lo.ToPtr(isLastPage)

	return res
}

func renderItem(cfg RenderConfig, item Item, url string, classes []string) string {
	label := cfg.label(item)

	content := label
	if item.Type != ItemSeparator {
		tpl := lo.Ternary(item.Type == ItemCurrent && cfg.CurrentLinkTemplate != "",
			cfg.CurrentLinkTemplate, cfg.LinkTemplate)
		content = strings.NewReplacer(PlaceholderURL, url, PlaceholderLabel, label).Replace(tpl)
	}

	class := strings.TrimSpace(strings.Join(lo.Compact(classes), " "))
	rendered := strings.NewReplacer(PlaceholderClass, class, PlaceholderContent, content).Replace(cfg.ItemTemplate)
	if class == "" {
		rendered = _emptyClassAttr.ReplaceAllString(rendered, "")
	}

	return rendered
}

// label returns the configured label of control items, falling back to the planned one.
func (c RenderConfig) label(item Item) string {
	switch item.Type {
	case ItemPrevious:
		return lo.CoalesceOrEmpty(c.PreviousLabel, item.Label)
	case ItemNext:
		return lo.CoalesceOrEmpty(c.NextLabel, item.Label)
	case ItemFirst:
		return lo.CoalesceOrEmpty(c.FirstLabel, item.Label)
	case ItemLast:
		return lo.CoalesceOrEmpty(c.LastLabel, item.Label)
	case ItemSeparator:
		return lo.CoalesceOrEmpty(c.SeparatorLabel, item.Label)
	default:
		return item.Label
	}
}

// isPlainNumber reports whether a rendered label is made of decimal digits only.
func isPlainNumber(label string) bool {
	return label != "" && lo.Every(_digits, []rune(label))
}
