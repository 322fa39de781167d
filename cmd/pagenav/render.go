package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagenav"
)

type renderOptions struct {
	total      int
	perPage    int
	page       int
	offset     int
	links      int
	baseURL    string
	configPath string
	vars       []string
	csv        bool
	pathStyle  bool
	head       bool
}

func newRenderCmd(logger *logrus.Logger) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the pagination of one page",
		Long: `Renders the pagination list of a page as HTML.

The page is given either by number (--page) or by the offset of its first
item (--offset). Templates, classes and the URL scheme come from a YAML
config file; flags override single settings.`,
		Example: `  # Page 5 of 95 items, 10 per page
  pagenav render --total 95 --per-page 10 --page 5 --base-url /news

  # Keep filters across pages and print rel=prev/next links
  pagenav render --total 95 --page 5 --var q=go --var tag=a --var tag=b --head`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, logger, opts)
		},
	}

	cmd.Flags().IntVar(&opts.total, "total", 0, "total number of items")
	cmd.Flags().IntVar(&opts.perPage, "per-page", pagenav.DefaultLimit, "items per page")
	cmd.Flags().IntVar(&opts.page, "page", 1, "current page, starting at 1")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "offset of the first item of the current page")
	cmd.Flags().IntVar(&opts.links, "links", pagenav.DefaultPageLinks, "number of page links around the current page")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "URL of the first page")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML render config file")
	cmd.Flags().StringArrayVar(&opts.vars, "var", nil, "query variable to keep, key=value; repeat a key for lists")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "join list variables with commas")
	cmd.Flags().BoolVar(&opts.pathStyle, "path-style", false, "put page numbers into the path")
	cmd.Flags().BoolVar(&opts.head, "head", false, "also print rel=prev/next link tags")

	cmd.MarkFlagsMutuallyExclusive("page", "offset")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func runRender(cmd *cobra.Command, logger *logrus.Logger, opts *renderOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	overrides := map[string]any{}
	if cmd.Flags().Changed("links") {
		overrides["num_page_links"] = opts.links
	}
	if cmd.Flags().Changed("base-url") {
		overrides["base_url"] = opts.baseURL
	}
	if cmd.Flags().Changed("csv") {
		overrides["array_to_csv"] = opts.csv
	}
	if cmd.Flags().Changed("path-style") {
		overrides["allow_page_num"] = opts.pathStyle
	}

	cfg, err = cfg.Merge(overrides)
	if err != nil {
		return fmt.Errorf("cannot apply flags: %w", err)
	}

	vars, err := parseVars(opts.vars)
	if err != nil {
		return err
	}

	nav, err := pagenav.NewNavigator(cfg)
	if err != nil {
		return err
	}
	nav = nav.WithLogger(logger)

	var res pagenav.Result
	if cmd.Flags().Changed("offset") {
		res, err = nav.Navigate(pagenav.StaticSource{
			TotalItems: int64(opts.total),
			PageSize:   opts.perPage,
			Start:      opts.offset,
		}, vars)
	} else {
		res, err = nav.NavigatePage(opts.total, opts.perPage, opts.page, vars)
	}
	if err != nil {
		return err
	}

	logger.WithField("last_page", res.IsLastPage != nil && *res.IsLastPage).Debug("rendered")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.HTML)
	if opts.head {
		if links := res.HeadLinks(); links != "" {
			fmt.Fprintln(out, links)
		}
	}

	return nil
}

func loadConfig(path string) (pagenav.RenderConfig, error) {
	if path == "" {
		return pagenav.DefaultRenderConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pagenav.RenderConfig{}, fmt.Errorf("cannot read config: %w", err)
	}

	return pagenav.LoadRenderConfig(data)
}

// parseVars turns repeated key=value flags into Vars. A repeated key, or a key
// written as "key[]", becomes a list.
func parseVars(raw []string) (pagenav.Vars, error) {
	vars := make(pagenav.Vars, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid variable '%s', want key=value", kv)
		}

		key, isList := strings.CutSuffix(key, "[]")
		switch prev := vars[key].(type) {
		case nil:
			if isList {
				vars[key] = []string{value}
			} else {
				vars[key] = value
			}
		case string:
			vars[key] = []string{prev, value}
		case []string:
			vars[key] = append(prev, value)
		}
	}

	return vars, nil
}
