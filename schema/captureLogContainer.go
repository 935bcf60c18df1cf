package schema

import "time"

const SchemaVersion string = "v1"
const ObjectTypeDefault string = "oauth_capture_record"

// CaptureLogContainer wraps a CaptureRecord with the metadata needed to store or ship it. The
// timestamp lives here so that two records built from the same flow compare equal.
type CaptureLogContainer struct {
	ObjectType    string         `json:"object_type,omitempty"`
	SchemaVersion string         `json:"schema,omitempty"`
	Timestamp     time.Time      `json:"timestamp,omitempty"`
	FlowID        string         `json:"flow_id,omitempty"`
	Record        *CaptureRecord `json:"record,omitempty"`
}

// NewCaptureLogContainer returns a container holding a copy of the record
func NewCaptureLogContainer(flowID string, record *CaptureRecord) *CaptureLogContainer {
	return &CaptureLogContainer{
		ObjectType:    ObjectTypeDefault,
		SchemaVersion: SchemaVersion,
		Timestamp:     time.Now(),
		FlowID:        flowID,
		Record:        record.Clone(),
	}
}

// NewCaptureLogContainerWithDefaults returns an empty container, used by formatter tests
func NewCaptureLogContainerWithDefaults() *CaptureLogContainer {
	return &CaptureLogContainer{
		ObjectType:    ObjectTypeDefault,
		SchemaVersion: SchemaVersion,
		Timestamp:     time.Now(),
	}
}
