package dtos

import "encoding/xml"

const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURL struct {
	Loc string `xml:"loc"`
}

// SitemapResponse is the body of GET /sitemap.xml.
type SitemapResponse struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}
