package model

// Log levels stored in ApplicationLog.Level.
const (
	LevelDebug    = "DEBUG"
	LevelInfo     = "INFO"
	LevelWarning  = "WARNING"
	LevelError    = "ERROR"
	LevelCritical = "CRITICAL"
)

// ValidLevel reports whether s is one of the stored log levels.
func ValidLevel(s string) bool {
	switch s {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return true
	}
	return false
}

// ApplicationLog is a persisted application log record.
type ApplicationLog struct {
	Base
	Level      string  `gorm:"size:10;not null;index" json:"level"`
	LoggerName string  `gorm:"size:100;not null;index" json:"logger_name"`
	Message    string  `gorm:"type:text;not null" json:"message"`
	Module     *string `gorm:"size:100" json:"module"`
	Function   *string `gorm:"size:100" json:"function"`
	LineNumber *int    `json:"line_number"`
	StackTrace *string `gorm:"type:text" json:"stack_trace"`
}

func (ApplicationLog) TableName() string { return "application_logs" }

// APILog is one handled HTTP request.
type APILog struct {
	Base
	Method       string  `gorm:"size:10;not null;index" json:"method"`
	Endpoint     string  `gorm:"size:500;not null" json:"endpoint"`
	StatusCode   int     `gorm:"not null;index" json:"status_code"`
	ResponseTime int     `gorm:"not null" json:"response_time"`
	UserID       *uint   `gorm:"index" json:"user_id"`
	IPAddress    *string `gorm:"size:45" json:"ip_address"`
	UserAgent    *string `gorm:"size:500" json:"user_agent"`
	RequestBody  *string `gorm:"type:text" json:"request_body"`
	ResponseBody *string `gorm:"type:text" json:"response_body"`
}

func (APILog) TableName() string { return "api_logs" }
