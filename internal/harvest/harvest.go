package harvest

import (
	"context"
	"errors"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"golang.org/x/text/cases"
)

const (
	DefaultSelector = "li"
	maxNameLength   = 64
)

var ErrInvalidURL = errors.New("invalid harvest url")

type Options struct {
	Selector string
	Limit    int
	Delay    time.Duration
	Timeout  time.Duration
}

// Harvester collects skill names from the text of HTML elements matching a
// CSS selector, e.g. a tags or topics index page.
type Harvester struct {
	selector string
	limit    int
	delay    time.Duration
	timeout  time.Duration
	logger   *log.Logger
}

func New(opts Options, logger *log.Logger) *Harvester {
	if logger == nil {
		logger = log.Default()
	}
	selector := strings.TrimSpace(opts.Selector)
	if selector == "" {
		selector = DefaultSelector
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Harvester{
		selector: selector,
		limit:    opts.Limit,
		delay:    opts.Delay,
		timeout:  timeout,
		logger:   logger,
	}
}

// Harvest visits pageURL once and returns the distinct names found, in
// document order. Names are compared case-insensitively; the first spelling
// wins.
func (h *Harvester) Harvest(ctx context.Context, pageURL string) ([]string, error) {
	pageURL = strings.TrimSpace(pageURL)
	allowed, err := hostFromURL(pageURL)
	if err != nil {
		return nil, err
	}

	c := colly.NewCollector(colly.AllowedDomains(allowed))
	c.SetRequestTimeout(h.timeout)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: h.delay})

	fold := cases.Fold()
	names := make([]string, 0)
	seen := map[string]struct{}{}

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML(h.selector, func(e *colly.HTMLElement) {
		if h.limit > 0 && len(names) >= h.limit {
			return
		}
		name := normalizeName(e.Text)
		if name == "" || len([]rune(name)) > maxNameLength {
			return
		}
		key := fold.String(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		names = append(names, name)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(pageURL); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	h.logger.Printf("Harvest page done | url=%s names=%d", pageURL, len(names))
	return names, nil
}

// HarvestAll harvests every page concurrently and merges the results in the
// order the pages were given. The limit applies to the merged list.
func (h *Harvester) HarvestAll(ctx context.Context, pages []string, workers int) ([]string, error) {
	results := make([][]string, len(pages))
	errs := make([]error, len(pages))

	p := newPool(workers, len(pages))
	done := p.Run(ctx)
	for i, page := range pages {
		i, page := i, page
		p.Submit(func(ctx context.Context) error {
			names, err := h.Harvest(ctx, page)
			results[i] = names
			errs[i] = err
			return err
		})
	}
	p.Close()
	for range done {
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	fold := cases.Fold()
	out := make([]string, 0)
	seen := map[string]struct{}{}
	for _, names := range results {
		for _, name := range names {
			if h.limit > 0 && len(out) >= h.limit {
				return out, nil
			}
			key := fold.String(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, name)
		}
	}
	return out, nil
}

func normalizeName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func hostFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidURL
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h, nil
	}
	return u.Host, nil
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "SkillSwapHarvester/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}
