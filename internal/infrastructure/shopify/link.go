package shopify

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tomnomnom/linkheader"
)

// looseNextPattern is the last-resort match for Link headers linkheader cannot split
var looseNextPattern = regexp.MustCompile(`page_info=([^>&]+).*rel="next"`)

// NextPageInfo extracts the page_info cursor advertised by the rel="next" link.
// It reports false when there is no next page or no cursor can be recovered; the
// cursor itself is treated as opaque and never validated.
func NextPageInfo(header string) (string, bool) {
	if header == "" || !strings.Contains(header, `rel="next"`) {
		return "", false
	}

	next := linkheader.Parse(header).FilterByRel("next")
	for _, link := range next {
		u, err := url.Parse(link.URL)
		if err != nil {
			continue
		}
		if cursor := u.Query().Get("page_info"); cursor != "" {
			return cursor, true
		}
	}
	if len(next) > 0 {
		return "", false
	}

	if m := looseNextPattern.FindStringSubmatch(header); m != nil {
		return m[1], true
	}
	return "", false
}
