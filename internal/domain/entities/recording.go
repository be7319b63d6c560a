package entities

// FileTypeTranscript marks the recording asset holding the meeting transcript
const FileTypeTranscript = "TRANSCRIPT"

// RecordingAsset is one file of a cloud meeting recording
type RecordingAsset struct {
	ID            string `json:"id"`
	FileType      string `json:"file_type"`
	FileExtension string `json:"file_extension"`
	DownloadURL   string `json:"download_url"`
}

// IsTranscript reports whether the asset is a downloadable transcript
func (a RecordingAsset) IsTranscript() bool {
	return a.FileType == FileTypeTranscript && a.DownloadURL != ""
}

// FindTranscriptAsset returns the first downloadable transcript in provider order
func FindTranscriptAsset(assets []RecordingAsset) (*RecordingAsset, bool) {
	for i := range assets {
		if assets[i].IsTranscript() {
			asset := assets[i]
			return &asset, true
		}
	}
	return nil, false
}
