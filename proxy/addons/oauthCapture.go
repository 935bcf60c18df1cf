package addons

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	px "github.com/proxati/mitmproxy/proxy"

	"github.com/proxati/oauth_capture/config"
	"github.com/proxati/oauth_capture/proxy/addons/capturedumper"
	"github.com/proxati/oauth_capture/schema"
	"github.com/proxati/oauth_capture/schema/proxyadapters/mitm"
)

// captureQueueSize is how many records can wait for the writers before the proxy hooks block
const captureQueueSize = 256

type captureJob struct {
	identifier string
	container  *schema.CaptureLogContainer
}

// OAuthCaptureAddon inspects every flow, and writes a record of the in-scope requests and
// responses to the configured log destinations. Records are built inside the hook, because the
// flow belongs to the proxy and may be reused once the hook returns. Writes happen on a single
// background goroutine, so the records of one flow are written in the order they were seen.
type OAuthCaptureAddon struct {
	px.BaseAddon
	builder      *schema.CaptureRecordBuilder
	filter       *capturedumper.RecordFilter
	destinations []capturedumper.LogDestination
	queue        chan captureJob
	queueMu      sync.RWMutex // held for writing only while the queue is closed
	wg           sync.WaitGroup
	closed       atomic.Bool
	logger       *slog.Logger
}

// Request is called after the full request body has been read
func (a *OAuthCaptureAddon) Request(f *px.Flow) {
	if f == nil || f.Request == nil {
		return
	}
	logger := configLoggerFieldsWithFlow(a.logger, f)

	if a.closed.Load() {
		logger.Warn("OAuthCaptureAddon is being closed, not capturing a request")
		return
	}

	record, ok := a.builder.OnRequest(mitm.NewProxyRequestAdapter(f.Request))
	if !ok {
		return
	}
	logger.Info("Captured request")
	a.enqueue(logger, flowID(f), record)
}

// Response is called after the full response body has been read
func (a *OAuthCaptureAddon) Response(f *px.Flow) {
	if f == nil || f.Response == nil {
		return
	}
	logger := configLoggerFieldsWithFlow(a.logger, f)

	if a.closed.Load() {
		logger.Warn("OAuthCaptureAddon is being closed, not capturing a response")
		return
	}

	record, ok := a.builder.OnResponse(mitm.NewProxyResponseAdapter(f.Response, f.Request))
	if !ok {
		return
	}
	logger.Info("Captured response")
	a.enqueue(logger, flowID(f), record)
}

func (a *OAuthCaptureAddon) enqueue(logger *slog.Logger, id string, record *schema.CaptureRecord) {
	job := captureJob{
		identifier: id + "_" + directionSuffix(record.Direction),
		container:  schema.NewCaptureLogContainer(id, a.filter.Apply(record)),
	}

	a.queueMu.RLock()
	defer a.queueMu.RUnlock()
	if a.closed.Load() {
		logger.Warn("OAuthCaptureAddon closed while capturing, record dropped")
		return
	}
	a.queue <- job
}

// run drains the queue until it is closed
func (a *OAuthCaptureAddon) run() {
	defer a.wg.Done()
	for job := range a.queue {
		a.sendToLogDestinations(job)
	}
}

// sendToLogDestinations writes a container to every configured log destination
func (a *OAuthCaptureAddon) sendToLogDestinations(job captureJob) {
	for i := range a.destinations {
		ld := &a.destinations[i]
		wLogger := a.logger.With("logDestination", ld.String(), "identifier", job.identifier)

		bytesWritten, err := ld.Write(job.identifier, job.container)
		if err != nil {
			wLogger.Error("Could not write capture record", "error", err)
			continue
		}
		wLogger.Debug("Wrote capture record", "bytesWritten", bytesWritten)
	}
}

func (a *OAuthCaptureAddon) String() string {
	return "OAuthCaptureAddon"
}

// Close stops accepting new records, waits for the queued records to be written, then closes
// the log destinations. Calling Close more than once is a no-op.
func (a *OAuthCaptureAddon) Close() error {
	if a.closed.Swap(true) {
		return nil
	}
	a.logger.Debug("Closing...")

	a.queueMu.Lock()
	close(a.queue)
	a.queueMu.Unlock()

	a.wg.Wait()
	return capturedumper.CloseLogDestinations(a.destinations)
}

// Classifier returns the scope rules used by this addon
func (a *OAuthCaptureAddon) Classifier() *schema.FlowClassifier {
	return a.builder.Classifier()
}

func directionSuffix(d schema.Direction) string {
	if d == schema.DirectionResponse {
		return "response"
	}
	return "request"
}

// flowID returns the proxy's id for the flow, or a new random id when the flow has none
func flowID(f *px.Flow) string {
	id := f.Id.String()
	if id == "" || id == uuid.Nil.String() {
		return uuid.NewString()
	}
	return id
}

// NewOAuthCaptureAddon creates the capture addon and starts its writer goroutine
func NewOAuthCaptureAddon(
	logger *slog.Logger, // the DI'd logger
	classifier *schema.FlowClassifier, // which flows to capture, nil means the default OAuth scope
	logTarget string, // comma-delimited output targets, empty means stdout
	logFormatConfig config.LogFormat, // what format to write the capture records
	logSources config.LogSourceConfig, // which parts of the record to write
	filterReqHeaders *config.HeaderFilterGroup, // request headers removed before writing
	filterRespHeaders *config.HeaderFilterGroup, // response headers removed before writing
) (*OAuthCaptureAddon, error) {
	logger = logger.WithGroup("addons.OAuthCaptureAddon")
	logger.Debug("Set capture output", "logTarget", logTarget)

	destinations, err := capturedumper.NewLogDestinations(logger, logTarget, logFormatConfig)
	if err != nil {
		return nil, fmt.Errorf("log destination validation error: %w", err)
	}
	for i := range destinations {
		logger.Debug("Configured log destination", "destination", destinations[i].String())
	}

	return newOAuthCaptureAddon(
		logger,
		schema.NewCaptureRecordBuilder(logger, classifier),
		capturedumper.NewRecordFilter(logSources, filterReqHeaders, filterRespHeaders),
		destinations,
	), nil
}

func newOAuthCaptureAddon(
	logger *slog.Logger,
	builder *schema.CaptureRecordBuilder,
	filter *capturedumper.RecordFilter,
	destinations []capturedumper.LogDestination,
) *OAuthCaptureAddon {
	a := &OAuthCaptureAddon{
		builder:      builder,
		filter:       filter,
		destinations: destinations,
		queue:        make(chan captureJob, captureQueueSize),
		logger:       logger,
	}
	a.closed.Store(false)

	a.wg.Add(1)
	go a.run()
	return a
}
