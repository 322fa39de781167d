package pagenav

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// PageURL builds the URL of the given page.
//
// The first page is always BaseURL followed by QueryString. When both are empty it is
// "?" for query string page numbers and "/" for path segments. For other pages the page
// number goes either into the path or into the query string:
//
//	AllowPageNum = true:  /articles/page3/?sort=asc (trailing slash with SlashPageNum)
//	AllowPageNum = false: /articles?sort=asc&page=3
func (c RenderConfig) PageURL(page int) string {
	base := c.BaseURL
	if c.SlashURLs && base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}

	if page <= 1 {
		// An empty href resolves to the current page, not the first one.
		return lo.CoalesceOrEmpty(base+c.QueryString, lo.Ternary(c.AllowPageNum, "/", "?"))
	}

	var sb strings.Builder
	sb.WriteString(base)

	if c.AllowPageNum {
		if !strings.HasSuffix(base, "/") {
			sb.WriteByte('/')
		}
		sb.WriteString(c.PageNumURLPrefix)
		sb.WriteString(strconv.Itoa(page))
		if c.SlashPageNum {
			sb.WriteByte('/')
		}
		sb.WriteString(c.QueryString)

		return sb.String()
	}

	sb.WriteString(c.QueryString)
	sb.WriteString(lo.Ternary(c.QueryString != "", "&", "?"))
	sb.WriteString(url.QueryEscape(c.PageNumURLPrefix))
	sb.WriteByte('=')
	sb.WriteString(strconv.Itoa(page))

	return sb.String()
}
