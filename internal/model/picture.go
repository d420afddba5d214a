package model

import (
	"strings"
	"time"
)

// Picture is a picture-of-the-day record.
type Picture struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	Copyright   string `json:"copyright,omitempty"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
}

// IsImage reports whether the record is an image (and not, e.g., a video).
func (p *Picture) IsImage() bool {
	return p.MediaType == "image"
}

// ImageURL returns the high-resolution URL if present, otherwise the regular
// one.
func (p *Picture) ImageURL() string {
	if p.HDURL != "" {
		return p.HDURL
	}
	return p.URL
}

// DisplayDate formats the record's date as e.g. "October 18, 2026".
// If the date cannot be parsed, it is returned unchanged.
func (p *Picture) DisplayDate() string {
	d, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return p.Date
	}
	return d.Format("January 2, 2006")
}

// CopyrightLine is the attribution text for the record.
func (p *Picture) CopyrightLine() string {
	return CopyrightLine(p.Copyright)
}

// CopyrightLine returns "Copyright: <holder>" or "Public Domain" when no
// holder is given or the holder is literally public domain.
func CopyrightLine(copyright string) string {
	c := strings.TrimSpace(copyright)
	if c == "" || strings.EqualFold(c, "public domain") {
		return "Public Domain"
	}
	return "Copyright: " + c
}
