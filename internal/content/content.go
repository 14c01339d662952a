// Package content provides the client for the upstream educational
// content API and the response types it serves. The API wraps every
// payload in a success envelope; failures surface as an error string
// inside the envelope, never as a transport-level error to callers.
package content

// Envelope is the upstream API's response wrapper. Data is present
// only when Success is true.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Subject is one theory subject in the catalog.
type Subject struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	FileCount int    `json:"fileCount"`
}

// TheoryFile is a theory document's metadata. Title and Description
// may be JSON null upstream.
type TheoryFile struct {
	Filename    string   `json:"filename"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

// TheoryContent is a theory document with its full MDX body.
type TheoryContent struct {
	TheoryFile
	Content string `json:"content"`
}

// TheoryFileList is the payload of a subject's file listing.
type TheoryFileList struct {
	Subject string       `json:"subject"`
	Files   []TheoryFile `json:"files"`
}

// SearchResult is one keyword search hit.
type SearchResult struct {
	Subject        string  `json:"subject"`
	Filename       string  `json:"filename"`
	Title          *string `json:"title"`
	MatchedContent string  `json:"matchedContent"`
	MatchCount     int     `json:"matchCount"`
}

// SearchResponse is the payload of a keyword search.
type SearchResponse struct {
	Query        string         `json:"query"`
	TotalResults int            `json:"totalResults"`
	Results      []SearchResult `json:"results"`
}

// ExamRegistrationFile is an exam registration document's metadata.
type ExamRegistrationFile struct {
	Filename    string   `json:"filename"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

// ExamRegistrationContent is an exam registration document with its
// full MDX body.
type ExamRegistrationContent struct {
	ExamRegistrationFile
	Content string `json:"content"`
}

// ExamRegistrationFileList is the payload of the exam registration
// file listing.
type ExamRegistrationFileList struct {
	Files []ExamRegistrationFile `json:"files"`
}
