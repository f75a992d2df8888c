package domain

type NotificationKind string

const (
	KindInfo    NotificationKind = "info"
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

// Notification is a modal style message for the user.
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
}

func Info(title, message string) *Notification {
	return &Notification{Kind: KindInfo, Title: title, Message: message}
}

func Success(title, message string) *Notification {
	return &Notification{Kind: KindSuccess, Title: title, Message: message}
}

func Failure(title, message string) *Notification {
	return &Notification{Kind: KindError, Title: title, Message: message}
}
