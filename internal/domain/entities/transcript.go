package entities

// TranscriptFormat tags the representation of Transcript.Text
type TranscriptFormat string

const (
	// TranscriptFormatVTT is the raw WebVTT body as downloaded
	TranscriptFormatVTT TranscriptFormat = "vtt"
	// TranscriptFormatText is the normalized, timing-free plain text
	TranscriptFormatText TranscriptFormat = "text"
)

// Transcript is a meeting transcript fetched for a single request
type Transcript struct {
	Text        string           `json:"transcript"`
	Format      TranscriptFormat `json:"transcriptFormat"`
	DownloadURL string           `json:"downloadUrl"`
	FileID      string           `json:"transcriptFileId"`
}

// ZoomCredentials are the server-to-server OAuth app credentials
type ZoomCredentials struct {
	ClientID     string
	ClientSecret string
	AccountID    string
}
