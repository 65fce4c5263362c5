package gridapi

// Logger interface for logging. The SDK has no logging framework
// dependency; host applications adapt whatever they use.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
