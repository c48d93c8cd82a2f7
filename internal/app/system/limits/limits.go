// internal/app/system/limits/limits.go
package limits

// Request body and upload size limits. These keep oversized requests from
// exhausting memory before validation runs.
const (
	// MaxJSONBodySize caps ordinary JSON request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxUploadSize caps resume and logo files.
	MaxUploadSize = 5 << 20 // 5 MB

	// MaxMultipartBodySize caps the whole multipart body: the file plus
	// form fields and multipart framing overhead.
	MaxMultipartBodySize = MaxUploadSize + (1 << 20)
)

// Accepted upload content types.
const (
	// ResumeContentType is the only MIME type accepted for resumes.
	ResumeContentType = "application/pdf"

	// ImageContentTypePrefix matches any image/* MIME type for logos.
	ImageContentTypePrefix = "image/"
)
