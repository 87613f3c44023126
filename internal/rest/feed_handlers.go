package rest

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-backend/internal/blog"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// Feed handles GET /feed
// @Summary RSS feed of the newest published posts
// @Produce xml
// @Success 200 {object} rest.rssFeed
// @Failure 500 {object} map[string]string
// @Router /feed [get]
func (h *BlogHandler) Feed(c echo.Context) error {
	items, err := h.m.FeedItems(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Blog",
			Link:        h.m.SiteURL(),
			Description: "New posts of the blog.",
			Items:       Map(items, newRSSItem),
		},
	}

	return c.XML(http.StatusOK, feed)
}

// Sitemap handles GET /sitemap.xml
// @Summary Sitemap over all published posts
// @Produce xml
// @Success 200 {object} rest.sitemapURLSet
// @Failure 500 {object} map[string]string
// @Router /sitemap.xml [get]
func (h *BlogHandler) Sitemap(c echo.Context) error {
	entries, err := h.m.SitemapEntries(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	urlset := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  Map(entries, newSitemapURL),
	}

	return c.XML(http.StatusOK, urlset)
}

func newRSSItem(item blog.FeedItem) rssItem {
	return rssItem{
		Title:       item.Title,
		Link:        item.URL,
		Description: item.Summary,
		PubDate:     item.PublishedAt.Format(time.RFC1123Z),
	}
}

func newSitemapURL(entry blog.SitemapEntry) sitemapURL {
	return sitemapURL{
		Loc:     entry.URL,
		LastMod: entry.LastMod.Format("2006-01-02"),
	}
}
