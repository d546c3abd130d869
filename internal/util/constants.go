package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 测验相关常量
const (
	QuizQuestionLimit  = 10 // 每次测验随机抽题上限
	DefaultHistoryPage = 20 // 历史记录默认条数
	PassPercentage     = 40.0 // 及格线百分比
)

// 文件上传相关常量
const (
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeText        = "text/"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedNoteExtensions = []string{".pdf", ".doc", ".docx", ".ppt", ".pptx", ".txt", ".zip"}

	// AllowedNoteMimeTypes 资料文件允许的嗅探结果。docx/pptx 嗅探为 zip，
	// 老版 Office 格式嗅探不出来，落到 octet-stream
	AllowedNoteMimeTypes = []string{MimePDF, "application/zip", "text/plain", MimeOctetStream}
)
