package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoik.com/voicedesk/internal/core/domain"
)

func TestFileInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files.info", r.URL.Path)
		assert.Equal(t, "F456", r.URL.Query().Get("file"))
		assert.Equal(t, "Bearer xoxb-test", r.Header.Get("Authorization"))

		fmt.Fprint(w, `{"ok":true,"file":{"id":"F456","name":"voice.mp3","mimetype":"audio/mpeg","size":2048,"url_private_download":"https://files.slack.test/download/voice.mp3"}}`)
	}))
	t.Cleanup(server.Close)

	c := NewSlackClient("xoxb-test", server.URL)
	file, err := c.FileInfo(context.Background(), "F456")

	require.NoError(t, err)
	assert.Equal(t, "F456", file.ID)
	assert.Equal(t, "voice.mp3", file.Name)
	assert.Equal(t, "audio/mpeg", file.MimeType)
	assert.Equal(t, int64(2048), file.Size)
	assert.Equal(t, "https://files.slack.test/download/voice.mp3", file.DownloadURL)
}

func TestFileInfo_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"ok":false,"error":"file_not_found"}`)
	}))
	t.Cleanup(server.Close)

	c := NewSlackClient("xoxb-test", server.URL)
	_, err := c.FileInfo(context.Background(), "F456")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file_not_found")
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer xoxb-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "audio/mpeg")
		fmt.Fprint(w, "fake audio bytes")
	}))
	t.Cleanup(server.Close)

	c := NewSlackClient("xoxb-test", "")
	body, contentType, err := c.Fetch(context.Background(), server.URL+"/some/file.mp3")

	require.NoError(t, err)
	assert.Equal(t, "fake audio bytes", string(body))
	assert.Equal(t, "audio/mpeg", contentType)
}

func TestFetch_Non200IsTypedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "not authed")
	}))
	t.Cleanup(server.Close)

	c := NewSlackClient("xoxb-test", "")
	_, _, err := c.Fetch(context.Background(), server.URL+"/some/file.mp3")

	require.Error(t, err)
	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusForbidden, fetchErr.Status)
	assert.Contains(t, fetchErr.Snippet, "not authed")
}

func TestCanvasInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/canvas.info", r.URL.Path)
		assert.Equal(t, "F789", r.URL.Query().Get("canvas_id"))

		fmt.Fprint(w, `{
			"ok": true,
			"canvas": {
				"blocks": [
					{"type": "file", "file": {"url_private_download": "https://files.slack.test/voice.mp3"}},
					{"type": "rich_text", "elements": [
						{"type": "rich_text_section", "elements": [
							{"type": "link", "url": "https://files.slack.test/memo.m4a"}
						]}
					]}
				]
			}
		}`)
	}))
	t.Cleanup(server.Close)

	c := NewSlackClient("xoxb-test", server.URL)
	doc, err := c.CanvasInfo(context.Background(), "F789")

	require.NoError(t, err)
	assert.Equal(t, "F789", doc.CanvasID)
	require.Len(t, doc.Blocks, 2)

	require.NotNil(t, doc.Blocks[0].File)
	assert.Equal(t, "https://files.slack.test/voice.mp3", doc.Blocks[0].File.DownloadURL)

	assert.Nil(t, doc.Blocks[1].File)
	require.Len(t, doc.Blocks[1].Elements, 1)
	require.Len(t, doc.Blocks[1].Elements[0].Elements, 1)
	assert.Equal(t, "link", doc.Blocks[1].Elements[0].Elements[0].Type)
	assert.Equal(t, "https://files.slack.test/memo.m4a", doc.Blocks[1].Elements[0].Elements[0].URL)
}

func TestPostFeedback(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat.postMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprint(w, `{"ok":true}`)
	}))
	t.Cleanup(server.Close)

	c := NewSlackClient("xoxb-test", server.URL)
	err := c.PostFeedback(context.Background(), "C456", "1724680000.000100", "Transcript posted to helpdesk ticket #1001")

	require.NoError(t, err)
	assert.Equal(t, "C456", received["channel"])
	assert.Equal(t, "1724680000.000100", received["thread_ts"])
	assert.Equal(t, "Transcript posted to helpdesk ticket #1001", received["text"])
}

func TestPostFeedback_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"ok":false,"error":"channel_not_found"}`)
	}))
	t.Cleanup(server.Close)

	c := NewSlackClient("xoxb-test", server.URL)
	err := c.PostFeedback(context.Background(), "C456", "", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}
