package capturedumper

import (
	"github.com/proxati/oauth_capture/config"
	"github.com/proxati/oauth_capture/schema"
)

// RecordFilter removes the parts of a record that were turned off on the command line. It
// always works on a copy, the record given to Apply is never changed.
type RecordFilter struct {
	logSources        config.LogSourceConfig
	filterReqHeaders  *config.HeaderFilterGroup
	filterRespHeaders *config.HeaderFilterGroup
}

// NewRecordFilter creates a RecordFilter, nil header groups filter nothing
func NewRecordFilter(
	logSources config.LogSourceConfig,
	filterReqHeaders *config.HeaderFilterGroup,
	filterRespHeaders *config.HeaderFilterGroup,
) *RecordFilter {
	return &RecordFilter{
		logSources:        logSources,
		filterReqHeaders:  filterReqHeaders,
		filterRespHeaders: filterRespHeaders,
	}
}

// Apply returns a filtered copy of the record
func (rf *RecordFilter) Apply(record *schema.CaptureRecord) *schema.CaptureRecord {
	if record == nil {
		return nil
	}
	out := record.Clone()

	var logHeaders, logBody bool
	var headerGroup *config.HeaderFilterGroup
	switch record.Direction {
	case schema.DirectionRequest:
		logHeaders, logBody = rf.logSources.LogRequestHeaders, rf.logSources.LogRequestBody
		headerGroup = rf.filterReqHeaders
	case schema.DirectionResponse:
		logHeaders, logBody = rf.logSources.LogResponseHeaders, rf.logSources.LogResponseBody
		headerGroup = rf.filterRespHeaders
	default:
		return out
	}

	if !logHeaders {
		out.Headers = nil
	} else if headerGroup != nil && !headerGroup.IsEmpty() {
		out.Headers = out.Headers.Without(headerGroup.IsHeaderInGroup)
	}

	if !logBody {
		out.Body = schema.DecodedBody{}
		out.BodyLength = 0
	}
	return out
}
