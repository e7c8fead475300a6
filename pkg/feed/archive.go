package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/pdtriglav/alpcontent/pkg/config"
	"github.com/pdtriglav/alpcontent/pkg/domain"
)

// ArchiveMethodology marks events imported from the on this day archive
const ArchiveMethodology = "Imported from the zsa.si on this day archive"

// errIncomplete is returned for event pages without a title, a year or a calendar day
var errIncomplete = errors.New("incomplete event page")

// months maps Slovenian and English month names and their abbreviations
var months = map[string]time.Month{
	"januar": 1, "januarja": 1, "januarju": 1, "january": 1, "jan": 1,
	"februar": 2, "februarja": 2, "februarju": 2, "february": 2, "feb": 2,
	"marec": 3, "marca": 3, "marcu": 3, "march": 3, "mar": 3,
	"april": 4, "aprila": 4, "aprilu": 4, "apr": 4,
	"maj": 5, "maja": 5, "maju": 5, "may": 5,
	"junij": 6, "junija": 6, "juniju": 6, "june": 6, "jun": 6,
	"julij": 7, "julija": 7, "juliju": 7, "july": 7, "jul": 7,
	"avgust": 8, "avgusta": 8, "avgustu": 8, "august": 8, "avg": 8, "aug": 8,
	"september": 9, "septembra": 9, "septembru": 9, "sep": 9,
	"oktober": 10, "oktobra": 10, "oktobru": 10, "october": 10, "okt": 10, "oct": 10,
	"november": 11, "novembra": 11, "novembru": 11, "nov": 11,
	"december": 12, "decembra": 12, "decembru": 12, "dec": 12,
}

var (
	monthDayRe   = regexp.MustCompile(`(?:^|[^\p{L}])(\p{L}{3,9})\s+(\d{1,2})(?:\D|$)`) // "avg 11, 2023"
	dayMonthRe   = regexp.MustCompile(`(?:^|\D)(\d{1,2})\.?\s*(\p{L}{3,9})(?:[^\p{L}]|$)`) // "11. avgust"
	yearRe       = regexp.MustCompile(`(?:^|\D)(1[5-9]\d{2}|20\d{2})(?:\D|$)`)
	yearPrefixRe = regexp.MustCompile(`^(\d{4})[:\-\s]+(.+)`)
	personRe     = regexp.MustCompile(`\p{Lu}\p{Ll}+\s+\p{Lu}\p{Ll}+`)
	locationRe   = regexp.MustCompile(`(?:^|\s)(?:na|v|pri)\s+(\p{Lu}[\p{L} ]+?)(?:[,.]|$)`)

	titleDayMonthRe = regexp.MustCompile(`\d{1,2}\.\s*\p{L}+`)
	titleMonthDayRe = regexp.MustCompile(`(?i)\b[a-z]{3}\s+\d{1,2},?\s*(?:\d{4})?`)
	titleMetaRe     = regexp.MustCompile(`(?i)\s*[-\x{2013}\x{2014}]\s*(?:rojen|umrl|na današnji dan).*$`)
	spacesRe        = regexp.MustCompile(`\s+`)
)

var (
	genericTitles = []string{"na današnji dan", "rojen", "umrl"}
	skipParagraph = []string{"kategorije", "objavljeno", "avtor", "preberi"}
	metaSelectors = []string{".entry-meta", ".post-meta", ".entry-date", ".published", "time"}
)

// ArchiveCrawler turns the posts of a WordPress "on this day" category into curated events
type ArchiveCrawler struct {
	client *http.Client
	cfg    config.ArchiveConfig
	gate   *intervalGate
}

// NewArchiveCrawler makes a crawler, requests are spaced by cfg.Delay
func NewArchiveCrawler(cfg config.ArchiveConfig) *ArchiveCrawler {
	return &ArchiveCrawler{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		gate:   &intervalGate{interval: cfg.Delay},
	}
}

// Crawl collects event links from the category pages and scrapes up to MaxEvents of them.
// Pages which fail or miss a year or a day are skipped.
func (c *ArchiveCrawler) Crawl(ctx context.Context) ([]domain.HistoricalEvent, error) {
	links, err := c.EventURLs(ctx)
	if err != nil {
		return nil, err
	}
	if c.cfg.MaxEvents > 0 && len(links) > c.cfg.MaxEvents {
		links = links[:c.cfg.MaxEvents]
	}

	res := make([]domain.HistoricalEvent, 0, len(links))
	for _, link := range links {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		ev, err := c.Event(ctx, link)
		if err != nil {
			log.Printf("[WARN] skip archive page %s: %v", link, err)
			continue
		}
		res = append(res, ev)
	}
	log.Printf("[INFO] archive crawl: %d of %d pages imported", len(res), len(links))
	return res, nil
}

// EventURLs follows the category pagination and returns links of all posts
func (c *ArchiveCrawler) EventURLs(ctx context.Context) ([]string, error) {
	var res []string
	seen := map[string]bool{}
	pageURL := c.cfg.URL
	for page := 0; pageURL != "" && (c.cfg.MaxPages <= 0 || page < c.cfg.MaxPages); page++ {
		doc, base, err := c.load(ctx, pageURL)
		if err != nil {
			if page == 0 {
				return nil, fmt.Errorf("load archive %s: %w", pageURL, err)
			}
			log.Printf("[WARN] stop archive pagination at %s: %v", pageURL, err)
			break
		}
		doc.Find("h2.entry-title a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			if link, err := base.Parse(strings.TrimSpace(href)); err == nil && !seen[link.String()] {
				seen[link.String()] = true
				res = append(res, link.String())
			}
		})

		pageURL = ""
		if next, ok := doc.Find("a.next.page-numbers").First().Attr("href"); ok {
			if link, err := base.Parse(strings.TrimSpace(next)); err == nil {
				pageURL = link.String()
			}
		}
	}
	return res, nil
}

// Event scrapes one post into a curated event
func (c *ArchiveCrawler) Event(ctx context.Context, pageURL string) (domain.HistoricalEvent, error) {
	doc, _, err := c.load(ctx, pageURL)
	if err != nil {
		return domain.HistoricalEvent{}, err
	}
	ev, err := parseArchivePage(doc)
	if err != nil {
		return domain.HistoricalEvent{}, err
	}
	ev.URL = pageURL
	return ev, nil
}

// load fetches a page with retries, waiting for the gate before every attempt
func (c *ArchiveCrawler) load(ctx context.Context, pageURL string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse url: %w", err)
	}

	var doc *goquery.Document
	retrier := repeater.NewBackoff(3, 2*c.cfg.Delay, repeater.WithMaxDelay(8*time.Second))
	err = retrier.Do(ctx, func() error {
		if err := c.gate.Wait(ctx); err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		setRequestHeaders(req, c.cfg.UserAgent, acceptHTML)
		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch page: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
			return fmt.Errorf("parse page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return doc, base, nil
}

func parseArchivePage(doc *goquery.Document) (domain.HistoricalEvent, error) {
	titleSel := doc.Find("h1.entry-title").First()
	content := doc.Find("div.entry-content").First()
	if titleSel.Length() == 0 || content.Length() == 0 {
		return domain.HistoricalEvent{}, fmt.Errorf("%w: no title or content", errIncomplete)
	}
	rawTitle := strings.TrimSpace(titleSel.Text())
	fullText := strings.TrimSpace(content.Text())

	var meta []string
	for _, sel := range metaSelectors {
		if m := doc.Find(sel).First(); m.Length() > 0 {
			meta = append(meta, m.Text())
		}
	}
	month, day, ok := findDay(strings.Join(meta, " "))
	if !ok {
		month, day, ok = findDay(fullText)
	}
	if !ok {
		return domain.HistoricalEvent{}, fmt.Errorf("%w: no day in %q", errIncomplete, rawTitle)
	}

	m := yearRe.FindStringSubmatch(fullText)
	if m == nil {
		return domain.HistoricalEvent{}, fmt.Errorf("%w: no year in %q", errIncomplete, rawTitle)
	}
	year, _ := strconv.Atoi(m[1])

	paragraphs, contentTitle := archiveParagraphs(content)
	if len(paragraphs) == 0 {
		return domain.HistoricalEvent{}, fmt.Errorf("%w: no description in %q", errIncomplete, rawTitle)
	}

	return domain.HistoricalEvent{
		Month:       int(month),
		Day:         day,
		Year:        year,
		Title:       archiveTitle(rawTitle, contentTitle, paragraphs),
		Description: archiveDescription(paragraphs),
		Location:    archiveLocation(paragraphs),
		People:      archivePeople(paragraphs),
		Category:    domain.CategoryAchievement,
		Methodology: ArchiveMethodology,
	}, nil
}

// findDay returns the first month and day found in text, "avg 11" style first, then "11. avgust"
func findDay(text string) (time.Month, int, bool) {
	text = strings.ToLower(text)
	for _, m := range monthDayRe.FindAllStringSubmatch(text, -1) {
		if month, day, ok := calendarDay(m[1], m[2]); ok {
			return month, day, true
		}
	}
	for _, m := range dayMonthRe.FindAllStringSubmatch(text, -1) {
		if month, day, ok := calendarDay(m[2], m[1]); ok {
			return month, day, true
		}
	}
	return 0, 0, false
}

func calendarDay(monthName, dayStr string) (time.Month, int, bool) {
	month, ok := months[monthName]
	if !ok {
		return 0, 0, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 {
		return 0, 0, false
	}
	// 2000 is a leap year, so 29 February is accepted
	if time.Date(2000, month, day, 0, 0, 0, 0, time.UTC).Month() != month {
		return 0, 0, false
	}
	return month, day, true
}

// archiveParagraphs returns substantial paragraphs of the post and the title of a "1953: title" paragraph
func archiveParagraphs(content *goquery.Selection) (paragraphs []string, contentTitle string) {
	var lines []string
	content.Find("p, li, h2, h3").Each(func(_ int, s *goquery.Selection) {
		lines = append(lines, s.Text())
	})
	if len(lines) == 0 {
		lines = strings.Split(content.Text(), "\n")
	}

	for _, line := range lines {
		line = strings.TrimSpace(spacesRe.ReplaceAllString(line, " "))
		if utf8.RuneCountInString(line) <= 20 || containsAny(strings.ToLower(line), skipParagraph) {
			continue
		}
		if m := yearPrefixRe.FindStringSubmatch(line); m != nil && contentTitle == "" {
			contentTitle = strings.TrimSpace(m[2])
		}
		paragraphs = append(paragraphs, line)
	}
	return paragraphs, contentTitle
}

// archiveTitle prefers the cleaned heading, then the year-prefixed paragraph, then the first paragraph
func archiveTitle(raw, contentTitle string, paragraphs []string) string {
	cleaned := titleDayMonthRe.ReplaceAllString(raw, "")
	cleaned = titleMonthDayRe.ReplaceAllString(cleaned, "")
	cleaned = yearPrefixRe.ReplaceAllString(cleaned, "$2")
	cleaned = titleMetaRe.ReplaceAllString(cleaned, "")
	cleaned = strings.Trim(spacesRe.ReplaceAllString(cleaned, " "), " -\u2013\u2014")

	switch {
	case utf8.RuneCountInString(cleaned) > 10 && !containsAny(strings.ToLower(cleaned), genericTitles):
		return cleaned
	case contentTitle != "":
		return contentTitle
	default:
		return Truncate(paragraphs[0], 100)
	}
}

func archiveDescription(paragraphs []string) string {
	if len(paragraphs) > 3 {
		paragraphs = paragraphs[:3]
	}
	desc := strings.Join(paragraphs, " ")
	if utf8.RuneCountInString(desc) > 600 {
		desc = string([]rune(desc)[:600]) + "..."
	}
	return desc
}

func archivePeople(paragraphs []string) []string {
	res := []string{}
	seen := map[string]bool{}
	for _, p := range paragraphs {
		for _, name := range personRe.FindAllString(p, -1) {
			if !seen[name] && len(res) < 5 {
				seen[name] = true
				res = append(res, name)
			}
		}
	}
	return res
}

func archiveLocation(paragraphs []string) string {
	for _, p := range paragraphs {
		if m := locationRe.FindStringSubmatch(p); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
