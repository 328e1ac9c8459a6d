package constant

import "time"

const (
	REQUEST_SUCCESSFUL   = "Request processed successfully"
	REQUEST_UNSUCCESSFUL = "Request failed to process"
)

// Every repository query runs under this timeout.
const QUERY_TIMEOUT_DURATION = 5 * time.Second

const (
	PDF_CONTENT_TYPE = "application/pdf"

	// A PDF has at least one page. Used when the page counter cannot
	// parse the uploaded bytes.
	DEFAULT_PAGE_COUNT = 1

	DEFAULT_ZOOM_LEVEL = 1.0
)
