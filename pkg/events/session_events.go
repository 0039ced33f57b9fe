package events

import "time"

const (
	TypeUserLogin      = "USER_LOGIN"
	TypeUserLogout     = "USER_LOGOUT"
	TypeSessionExpired = "SESSION_EXPIRED"
)

func NewUserLogin(username string) Event {
	return BaseEvent{
		Type:       TypeUserLogin,
		Data:       map[string]interface{}{"username": username},
		OccurredAt: time.Now(),
	}
}

func NewUserLogout(username string) Event {
	return BaseEvent{
		Type:       TypeUserLogout,
		Data:       map[string]interface{}{"username": username},
		OccurredAt: time.Now(),
	}
}

// NewSessionExpired carries the token so transports can route the notice back
// to the client that timed out.
func NewSessionExpired(token, username string) Event {
	return BaseEvent{
		Type: TypeSessionExpired,
		Data: map[string]interface{}{
			"token":    token,
			"username": username,
		},
		OccurredAt: time.Now(),
	}
}
