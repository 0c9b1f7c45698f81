package apierrors

const (
	MsgFailListTasks      = "failListTasks"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgUnknownFilterField = "unknownFilterField"
	MsgMissingText        = "missingText"
	MsgAINotConfigured    = "aiNotConfigured"
	MsgAIProviderError    = "aiProviderError"
	MsgTooManyRequests    = "tooManyRequests"
)
