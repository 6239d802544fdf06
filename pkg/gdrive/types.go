package gdrive

// UploadPhotoRequest is the input for archiving an item photo.
type UploadPhotoRequest struct {
	Name     string // file name in Drive, e.g. "linen-shirt.jpg"
	MIMEType string // e.g. "image/jpeg"
	FolderID string // optional parent folder; root when empty
	Data     []byte // decoded image bytes
}

// Photo is a simplified representation of an archived Drive file.
type Photo struct {
	ID          string
	Name        string
	WebViewLink string
}
