package pagenav

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Navigator renders pagination for data sources with a fixed RenderConfig. It holds no
// per-call state and is safe for concurrent use.
type Navigator struct {
	config   RenderConfig
	planner  Planner
	renderer Renderer
	logger   logrus.FieldLogger
}

// NewNavigator returns a Navigator using DefaultPlanner and DefaultRenderer.
func NewNavigator(cfg RenderConfig) (*Navigator, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("cannot create navigator: %w", err)
	}

	return &Navigator{
		config:   cfg,
		planner:  DefaultPlanner,
		renderer: DefaultRenderer,
		logger:   discardLogger(),
	}, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// WithPlanner replaces the planner. A nil planner restores DefaultPlanner.
func (n *Navigator) WithPlanner(p Planner) *Navigator {
	n.planner = p
	if p == nil {
		n.planner = DefaultPlanner
	}

	return n
}

// WithRenderer replaces the renderer. A nil renderer restores DefaultRenderer.
func (n *Navigator) WithRenderer(r Renderer) *Navigator {
	n.renderer = r
	if r == nil {
		n.renderer = DefaultRenderer
	}

	return n
}

// WithLogger sets the logger receiving debug entries about planning.
func (n *Navigator) WithLogger(l logrus.FieldLogger) *Navigator {
	n.logger = l
	if l == nil {
		n.logger = discardLogger()
	}

	return n
}

// Config returns a copy of the render config.
func (n *Navigator) Config() RenderConfig {
	return n.config
}

// Navigate renders the navigation of the page src points at. vars, when not empty,
// replace the configured query string of every link.
func (n *Navigator) Navigate(src Source, vars Vars) (Result, error) {
	total, err := src.Total()
	if err != nil {
		n.logger.WithError(err).Debug("pagination source failed")
		return Result{}, fmt.Errorf("cannot navigate: %w", err)
	}

	totalItems, err := countToInt(total)
	if err != nil {
		return Result{}, fmt.Errorf("cannot navigate: %w", err)
	}

	limit := src.Limit()
	current, err := CurrentPage(src.Offset(), limit)
	if err != nil {
		return Result{}, fmt.Errorf("cannot navigate: %w", err)
	}

	return n.NavigatePage(totalItems, limit, current, vars)
}

// countToInt converts an item count reported by a Source, rejecting counts int cannot hold.
func countToInt(total int64) (int, error) {
	if total < 0 {
		return 0, fmt.Errorf("%w: total items must not be negative, got %d", ErrInvalidConfiguration, total)
	}
	if total > math.MaxInt {
		return 0, fmt.Errorf("%w: total items %d overflow int", ErrInvalidConfiguration, total)
	}

	return int(total), nil
}

// NavigatePage renders the navigation of currentPage out of totalItems shown
// itemsPerPage at a time.
func (n *Navigator) NavigatePage(totalItems, itemsPerPage, currentPage int, vars Vars) (Result, error) {
	plan, err := n.planner.Plan(totalItems, itemsPerPage, currentPage, n.config.NumPageLinks)
	if err != nil {
		return Result{}, fmt.Errorf("cannot navigate: %w", err)
	}

	if err = plan.validate(); err != nil {
		return Result{}, fmt.Errorf("cannot navigate: invalid plan: %w", err)
	}

	cfg := n.config
	if len(vars) > 0 {
		cfg.QueryString = vars.Encode(cfg.ArrayToCSV)
	}

	entry := n.logger.WithFields(logrus.Fields{
		"total_items":    totalItems,
		"items_per_page": itemsPerPage,
		"current_page":   currentPage,
		"items":          len(plan),
	})
	if item, _, ok := plan.Current(); ok && item.Page != currentPage {
		entry = entry.WithField("clamped_page", item.Page)
	}
	entry.Debug("pagination planned")

	return n.renderer.Render(plan, cfg), nil
}
