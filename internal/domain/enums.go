package domain

// FileType represents the document formats accepted for extraction.
type FileType string

const (
	FileTypeTXT  FileType = "txt"
	FileTypeDOCX FileType = "docx"
	FileTypePDF  FileType = "pdf"
)

// MIME types of the supported formats.
const (
	MIMETypeText = "text/plain"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypePDF  = "application/pdf"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypeTXT:  MIMETypeText,
	FileTypeDOCX: MIMETypeDOCX,
	FileTypePDF:  MIMETypePDF,
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	MIMETypeText: FileTypeTXT,
	MIMETypeDOCX: FileTypeDOCX,
	MIMETypePDF:  FileTypePDF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"txt":  FileTypeTXT,
	"docx": FileTypeDOCX,
	"pdf":  FileTypePDF,
}

// ProviderKind selects the request/response shape used to talk to a provider.
type ProviderKind string

const (
	ProviderKindOpenAICompatible ProviderKind = "openai_compatible"
	ProviderKindAnthropic        ProviderKind = "anthropic"
	ProviderKindLocal            ProviderKind = "local"
)

// Provider identifiers known to the registry.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGroq      = "groq"
	ProviderLocal     = "local"
)
