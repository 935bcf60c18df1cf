package config

// TrafficLogger stores config filtering options for the *output* of captured records. To
// turn off logging of a part of the transaction, if needed.
type TrafficLogger struct {
	Output           string    // Comma-delimited list of directories, files, or URLs to write records
	TrafficLogFmt    LogFormat // Record output format (json, txt)
	NoLogReqHeaders  bool      // if true, do not log request headers
	NoLogReqBody     bool      // if true, do not log request body
	NoLogRespHeaders bool      // if true, do not log response headers
	NoLogRespBody    bool      // if true, do not log response body
}
