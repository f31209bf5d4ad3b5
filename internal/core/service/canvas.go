package service

import (
	"strings"

	"stoik.com/voicedesk/internal/core/domain"
)

var audioExtensions = []string{".mp3", ".wav", ".m4a", ".mp4"}

func isAudioURL(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range audioExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ExtractAudioLinks walks the canvas blocks in order and collects every audio
// URL: file blocks contribute their download URL, rich_text blocks are
// scanned for link elements at any nesting depth. Duplicates are kept; each
// link is an independent audio segment. An empty result is a valid outcome.
func ExtractAudioLinks(doc *domain.CanvasDocument) []string {
	if doc == nil {
		return nil
	}

	var links []string
	for _, block := range doc.Blocks {
		switch block.Type {
		case "file":
			if block.File != nil && isAudioURL(block.File.DownloadURL) {
				links = append(links, block.File.DownloadURL)
			}
		case "rich_text":
			links = collectLinks(block.Elements, links)
		}
	}
	return links
}

func collectLinks(elements []domain.CanvasElement, links []string) []string {
	for _, el := range elements {
		if el.Type == "link" && isAudioURL(el.URL) {
			links = append(links, el.URL)
		}
		links = collectLinks(el.Elements, links)
	}
	return links
}
