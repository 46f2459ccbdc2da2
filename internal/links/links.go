// Package links harvests anchor targets from HTML documents so a crawled page
// can serve as a URL sample.
package links

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/coregx/coregex"
)

type ExtractOptions struct {
	// SameHost keeps only links on the base URL's host.
	SameHost bool
	// Filter, when set, keeps only links it matches.
	Filter *coregex.Regex
}

// Extract returns the absolute http and https targets of every a[href] in
// the document, resolved against base, in document order without duplicates.
func Extract(r io.Reader, base *url.URL, opts ExtractOptions) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	// <base href> overrides the document URL for relative links.
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			if base == nil {
				base = ref
			} else {
				base = base.ResolveReference(ref)
			}
		}
	}

	var out []string
	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}

		link, ok := resolve(base, href)
		if !ok {
			return
		}
		if opts.SameHost && base != nil && !strings.EqualFold(link.Host, base.Host) {
			return
		}

		target := link.String()
		if opts.Filter != nil && !opts.Filter.MatchString(target) {
			return
		}
		if _, dup := seen[target]; dup {
			return
		}
		seen[target] = struct{}{}
		out = append(out, target)
	})
	return out, nil
}

func resolve(base *url.URL, href string) (*url.URL, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}

	switch strings.ToLower(ref.Scheme) {
	case "http", "https":
	default:
		return nil, false
	}
	if ref.Host == "" {
		return nil, false
	}
	return ref, true
}
