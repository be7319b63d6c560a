package zoom

// RecordingsQuery binds GET /api/zoom/recordings
type RecordingsQuery struct {
	MeetingID string `query:"meetingId"`
	// Format "vtt" returns the raw WebVTT body
	Format string `query:"format"`
}

// TranscriptResponse is the body of GET /api/zoom/recordings
type TranscriptResponse struct {
	Transcript       string `json:"transcript"`
	TranscriptFormat string `json:"transcriptFormat" example:"text"`
	DownloadURL      string `json:"downloadUrl"`
	TranscriptFileID string `json:"transcriptFileId"`
}
