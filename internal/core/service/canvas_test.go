package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stoik.com/voicedesk/internal/core/domain"
)

func TestExtractAudioLinks_NilDocument(t *testing.T) {
	assert.Nil(t, ExtractAudioLinks(nil))
}

func TestExtractAudioLinks_FileBlocks(t *testing.T) {
	doc := &domain.CanvasDocument{
		Blocks: []domain.CanvasBlock{
			{Type: "file", File: &domain.CanvasFile{DownloadURL: "https://files/voice.MP3"}},
			{Type: "file", File: &domain.CanvasFile{DownloadURL: "https://files/report.pdf"}},
			{Type: "file", File: nil},
			{Type: "file", File: &domain.CanvasFile{DownloadURL: "https://files/memo.m4a"}},
		},
	}

	links := ExtractAudioLinks(doc)

	assert.Equal(t, []string{"https://files/voice.MP3", "https://files/memo.m4a"}, links)
}

func TestExtractAudioLinks_NestedRichTextElements(t *testing.T) {
	doc := &domain.CanvasDocument{
		Blocks: []domain.CanvasBlock{
			{
				Type: "rich_text",
				Elements: []domain.CanvasElement{
					{
						Type: "rich_text_section",
						Elements: []domain.CanvasElement{
							{Type: "link", URL: "https://files/first.wav"},
							{Type: "text"},
							{
								Type: "rich_text_list",
								Elements: []domain.CanvasElement{
									{Type: "link", URL: "https://files/second.mp4"},
									{Type: "link", URL: "https://example.com/page.html"},
								},
							},
						},
					},
				},
			},
		},
	}

	links := ExtractAudioLinks(doc)

	assert.Equal(t, []string{"https://files/first.wav", "https://files/second.mp4"}, links)
}

func TestExtractAudioLinks_DuplicatesKept(t *testing.T) {
	doc := &domain.CanvasDocument{
		Blocks: []domain.CanvasBlock{
			{Type: "file", File: &domain.CanvasFile{DownloadURL: "https://files/voice.mp3"}},
			{
				Type: "rich_text",
				Elements: []domain.CanvasElement{
					{Type: "link", URL: "https://files/voice.mp3"},
				},
			},
		},
	}

	links := ExtractAudioLinks(doc)

	assert.Len(t, links, 2)
}

func TestExtractAudioLinks_NoAudio(t *testing.T) {
	doc := &domain.CanvasDocument{
		Blocks: []domain.CanvasBlock{
			{Type: "heading"},
			{
				Type: "rich_text",
				Elements: []domain.CanvasElement{
					{Type: "link", URL: "https://example.com/doc.pdf"},
				},
			},
		},
	}

	assert.Empty(t, ExtractAudioLinks(doc))
}
