package capturedumper

// LogDestinationKind is an enum for the destination for where the records are stored
type LogDestinationKind int

const (
	// WriteToFile appends records to a single rotating file
	WriteToFile LogDestinationKind = iota

	// WriteToDir writes one file per record in a directory
	WriteToDir

	// WriteToStdOut prints records to standard out
	WriteToStdOut

	// WriteToREST sends records to an HTTP endpoint
	WriteToREST
)

func (ld LogDestinationKind) String() string {
	switch ld {
	case WriteToFile:
		return "WriteToFile"
	case WriteToDir:
		return "WriteToDir"
	case WriteToStdOut:
		return "WriteToStdOut"
	case WriteToREST:
		return "WriteToREST"
	default:
		return ""
	}
}
