package service

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/core/domain"
	"stoik.com/voicedesk/internal/core/port"
	"stoik.com/voicedesk/internal/metrics"
)

// SegmentDelimiter separates per-segment transcripts in canvas-origin
// tickets.
const SegmentDelimiter = "\n\n--- Audio Segment ---\n\n"

const canvasExcerptLimit = 1000

// PipelineDeps wires the driven adapters into the orchestrator.
type PipelineDeps struct {
	Store      port.DedupStore
	Source     port.FileSource
	Normalizer port.AudioNormalizer
	Transcribe port.Transcriber
	Helpdesk   port.Helpdesk
	Feedback   port.FeedbackNotifier
	Events     port.EventNotifier
}

// PipelineService sequences the processing steps per incoming event and
// enforces the dedup contract. Events run on a bounded worker pool; Submit
// returns as soon as the claim succeeds.
type PipelineService struct {
	store      port.DedupStore
	source     port.FileSource
	normalizer port.AudioNormalizer
	transcribe port.Transcriber
	helpdesk   port.Helpdesk
	feedback   port.FeedbackNotifier
	events     port.EventNotifier

	jobQueue     chan domain.FileEvent
	wg           sync.WaitGroup
	numWorkers   int
	eventTimeout time.Duration
}

func NewPipelineService(deps PipelineDeps, numWorkers, queueSize int, eventTimeout time.Duration) *PipelineService {
	return &PipelineService{
		store:        deps.Store,
		source:       deps.Source,
		normalizer:   deps.Normalizer,
		transcribe:   deps.Transcribe,
		helpdesk:     deps.Helpdesk,
		feedback:     deps.Feedback,
		events:       deps.Events,
		jobQueue:     make(chan domain.FileEvent, queueSize),
		numWorkers:   numWorkers,
		eventTimeout: eventTimeout,
	}
}

// Start launches the worker pool. Call this before submitting events.
func (p *PipelineService) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Infof("Started %d pipeline workers", p.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (p *PipelineService) Stop(ctx context.Context) {
	close(p.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All pipeline workers stopped after drain")
	case <-ctx.Done():
		log.Warn("Pipeline shutdown deadline reached before drain finished")
	}
}

// Submit claims the event's fingerprint and enqueues it for background
// processing. The claim is the linearization point: once it succeeds, no
// other worker will ever touch this fingerprint.
func (p *PipelineService) Submit(ctx context.Context, event domain.FileEvent) (bool, *domain.ProcessingRecord, error) {
	now := time.Now().UTC()
	record := &domain.ProcessingRecord{
		Fingerprint: event.Fingerprint(),
		FileName:    event.Name,
		FileURL:     event.URL,
		UserID:      event.UserID,
		ChannelID:   event.ChannelID,
		Status:      domain.StatusProcessing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	alreadyClaimed, existing, err := p.store.CheckAndClaim(ctx, record)
	if err != nil {
		return false, nil, fmt.Errorf("dedup claim: %w", err)
	}
	if alreadyClaimed {
		metrics.DuplicatesSuppressed.Inc()
		log.WithFields(log.Fields{
			"file":   event.Name,
			"status": existing.Status,
		}).Info("Duplicate file event suppressed")
		return true, existing, nil
	}

	// Blocks if the queue is full, providing backpressure
	p.jobQueue <- event

	return false, nil, nil
}

func (p *PipelineService) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[Worker %d] Context cancelled, stopping", workerID)
			return
		case event, ok := <-p.jobQueue:
			if !ok {
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, p.eventTimeout)
			p.process(jobCtx, event)
			cancel()
		}
	}
}

func (p *PipelineService) process(ctx context.Context, event domain.FileEvent) {
	logger := log.WithFields(log.Fields{
		"file":    event.Name,
		"user":    event.UserID,
		"channel": event.ChannelID,
	})
	logger.Info("Processing file event")

	ticket, err := p.run(ctx, event)
	if err != nil {
		logger.WithError(err).Error("Pipeline failed")
		p.finish(event, domain.StatusFailed, "", err.Error())
		return
	}

	ticketID := ""
	if ticket != nil {
		ticketID = ticket.ID
	}
	logger.WithField("ticket_id", ticketID).Info("Pipeline completed")
	p.finish(event, domain.StatusCompleted, ticketID, "")
}

func (p *PipelineService) run(ctx context.Context, event domain.FileEvent) (*domain.Ticket, error) {
	if event.IsCanvas() {
		return p.runCanvas(ctx, event)
	}
	return p.runAudio(ctx, event)
}

func (p *PipelineService) runAudio(ctx context.Context, event domain.FileEvent) (*domain.Ticket, error) {
	transcript, err := p.transcribeURL(ctx, event.URL, suffixFor(event))
	if err != nil {
		return nil, err
	}

	return p.helpdesk.Upsert(ctx, domain.TicketRequest{
		Transcript: transcript,
		Contact:    ExtractContactInfo(transcript),
		Event:      event,
	})
}

func (p *PipelineService) runCanvas(ctx context.Context, event domain.FileEvent) (*domain.Ticket, error) {
	fileID := event.FileID
	if fileID == "" {
		fileID = ExtractFileID(event.URL)
	}
	if fileID == "" {
		return nil, fmt.Errorf("cannot determine canvas file id from url %q", event.URL)
	}

	info, err := p.source.FileInfo(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("canvas file info: %w", err)
	}

	canvasText := ""
	if info.DownloadURL != "" {
		body, _, fetchErr := p.source.Fetch(ctx, info.DownloadURL)
		if fetchErr != nil {
			log.WithError(fetchErr).Warn("Could not fetch canvas body, continuing without excerpt")
		} else {
			canvasText = string(body)
		}
	}

	doc, err := p.source.CanvasInfo(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("canvas info: %w", err)
	}

	links := ExtractAudioLinks(doc)
	if len(links) == 0 {
		log.WithField("file", event.Name).Info("Canvas contains no audio links")
		return nil, nil
	}

	var transcripts []string
	for i, url := range links {
		transcript, segErr := p.transcribeURL(ctx, url, ".mp4")
		if segErr != nil {
			// Partial success: one failed segment does not abort the others
			log.WithError(segErr).Warnf("Audio segment %d/%d failed", i+1, len(links))
			continue
		}
		transcripts = append(transcripts, transcript)
	}

	if len(transcripts) == 0 {
		return nil, &domain.TranscriptionError{Detail: fmt.Sprintf("all %d audio segments failed", len(links))}
	}

	combined := strings.Join(transcripts, SegmentDelimiter)

	return p.helpdesk.Upsert(ctx, domain.TicketRequest{
		Transcript:    combined,
		Contact:       ExtractContactInfo(combined),
		Event:         event,
		CanvasExcerpt: truncate(canvasText, canvasExcerptLimit),
		AudioSegments: len(links),
	})
}

// transcribeURL runs the fetch → normalize → transcribe leg for one audio
// URL. All on-disk artifacts are removed before it returns.
func (p *PipelineService) transcribeURL(ctx context.Context, url, suffix string) (string, error) {
	path, err := p.download(ctx, url, suffix)
	if err != nil {
		return "", err
	}
	defer removeQuiet(path)

	normalized, err := p.normalizer.Normalize(ctx, path)
	if err != nil {
		log.WithError(err).Warn("Audio normalization failed, passing original to transcription")
		normalized = path
	}
	if normalized != path {
		defer removeQuiet(normalized)
	}

	result, err := p.transcribe.Transcribe(ctx, normalized)
	if err != nil {
		return "", err
	}
	if !result.Success {
		return "", &domain.TranscriptionError{Detail: result.Err}
	}
	return result.Transcript, nil
}

func (p *PipelineService) download(ctx context.Context, url, suffix string) (string, error) {
	data, _, err := p.source.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "voicedesk-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		removeQuiet(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		removeQuiet(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}

// finish records the terminal status and emits the out-of-band feedback and
// broker notifications. It runs on a fresh context: the per-event deadline
// may already have expired, and the terminal transition must still happen.
func (p *PipelineService) finish(event domain.FileEvent, status domain.ProcessingStatus, ticketID, errorSummary string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fp := event.Fingerprint()
	if err := p.store.MarkTerminal(ctx, fp, status, ticketID, errorSummary); err != nil {
		log.WithError(err).WithField("fingerprint", fp).Error("Failed to record terminal status")
	}
	metrics.FilesProcessed.WithLabelValues(string(status)).Inc()

	if p.feedback != nil && status == domain.StatusCompleted {
		text := fmt.Sprintf("No audio found in %s", event.Name)
		if ticketID != "" {
			text = fmt.Sprintf("Transcript posted to helpdesk ticket #%s", ticketID)
		}
		if err := p.feedback.PostFeedback(ctx, event.ChannelID, event.Timestamp, text); err != nil {
			// Feedback is fire-and-forget, never a pipeline failure
			log.WithError(err).Warn("Failed to post feedback message")
		}
	}

	if p.events != nil {
		msg := &domain.FileProcessedMessage{
			EventID:     uuid.New(),
			Fingerprint: fp,
			FileName:    event.Name,
			Status:      status,
			TicketID:    ticketID,
			Error:       errorSummary,
			ProcessedAt: time.Now().UTC(),
		}
		if err := p.events.FileProcessed(ctx, msg); err != nil {
			log.WithError(err).Warn("Failed to publish processed event")
		}
	}
}

var fileIDPatterns = []*regexp.Regexp{
	// Private download URLs: /files-pri/TEAM-FILEID/name
	regexp.MustCompile(`/files-pri/[^/-]+-([^/]+)/`),
	// Permalinks: /files/USERID/FILEID/name
	regexp.MustCompile(`/files/[^/]+/([^/]+)/`),
}

// ExtractFileID recovers a file id from a private download URL when the
// payload does not carry one explicitly.
func ExtractFileID(url string) string {
	for _, pattern := range fileIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

func suffixFor(event domain.FileEvent) string {
	if event.FileType != "" {
		return "." + event.FileType
	}
	if idx := strings.LastIndex(event.Name, "."); idx >= 0 {
		return event.Name[idx:]
	}
	return ".bin"
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

func removeQuiet(path string) {
	if err := os.Remove(path); err != nil {
		log.WithError(err).Warnf("Failed to clean up temporary file %s", path)
	}
}
