// Package audio normalizes downloaded payloads into the mp3 container the
// default transcription provider expects, by shelling out to ffmpeg.
package audio

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	targetExtension = ".mp3"
	convertTimeout  = 60 * time.Second
)

// Converter transcodes audio files to mp3 at 128 kbps / 44.1 kHz. When
// ffmpeg is missing or conversion fails, the original path is passed through
// unchanged: providers reject incompatible payloads explicitly, which keeps
// the failure per-file instead of aborting the pipeline.
type Converter struct {
	ffmpegPath string
}

func NewConverter() *Converter {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		log.Warn("ffmpeg not found in PATH, audio conversion disabled")
		return &Converter{}
	}
	return &Converter{ffmpegPath: path}
}

// Normalize returns the path of an mp3 copy of the payload, or the original
// path when no conversion is needed or possible.
func (c *Converter) Normalize(ctx context.Context, path string) (string, error) {
	if strings.HasSuffix(strings.ToLower(path), targetExtension) {
		return path, nil
	}
	if c.ffmpegPath == "" {
		return path, nil
	}

	output := strings.TrimSuffix(path, extensionOf(path)) + "_converted" + targetExtension

	convertCtx, cancel := context.WithTimeout(ctx, convertTimeout)
	defer cancel()

	cmd := exec.CommandContext(convertCtx, c.ffmpegPath,
		"-i", path,
		"-acodec", "mp3",
		"-ab", "128k",
		"-ar", "44100",
		"-y",
		output,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		log.WithError(err).WithField("output", string(out)).Warn("Audio conversion failed, passing original file through")
		os.Remove(output)
		return path, nil
	}

	return output, nil
}

func extensionOf(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx:]
	}
	return ""
}
