// Package pagenav renders "page N of M" navigation for paged result sets.
//
// Overview
//
// Rendering happens in two steps:
//   - Planning: NewPlan decides which items to show for the given total, page size
//     and current page. It keeps a window of pages around the current one, always
//     shows the first and the last page, and puts separators into the gaps. Previous
//     and next controls surround the list.
//   - Rendering: Render builds the URL of every item, assigns CSS classes, fills in
//     the templates of RenderConfig and reports the URLs of the adjacent pages for
//     rel="prev" / rel="next" links.
//
// Key concepts
//   - Plan: ordered list of Items, each with a type (previous, number, current,
//     separator, next, ...), a label and a page.
//   - RenderConfig: templates, labels, classes and the URL scheme. Page numbers go
//     either into the path (/page3) or into the query string (?page=3).
//   - Vars: GET variables preserved across links, canonicalized by Vars.Encode.
//   - Source: where the total, the page size and the offset come from. GORMSource
//     counts and pages a gorm query.
//   - Navigator: ties a Source, a Planner and a Renderer together.
//
// Usage:
//
//	nav, err := pagenav.NewNavigator(pagenav.DefaultRenderConfig())
//	if err != nil {
//		return err
//	}
//
//	res, err := nav.NavigatePage(95, 10, 5, pagenav.Vars{"q": "go"})
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(res.HTML)        // <ul class="pagination">...</ul>
//	fmt.Println(res.HeadLinks()) // <link rel="prev" href="?q=go&page=4">...
package pagenav
