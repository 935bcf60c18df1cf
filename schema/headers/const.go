package headers

const (
	// ContentType is used to decide if a body should be parsed as a form
	ContentType = "Content-Type"

	// ContentEncoding is used to reverse gzip/deflate/br compression before rendering a body
	ContentEncoding = "Content-Encoding"

	// FormURLEncoded is the media type that enables structured form parsing
	FormURLEncoded = "application/x-www-form-urlencoded"

	// CaptureIdentifier is a request header sent to REST log destinations, with the flow ID
	CaptureIdentifier = "X-Oauth_capture-identifier"
)
