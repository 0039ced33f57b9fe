// FILE: internal/constant/session_constant.go
package constant

const (
	// TopicSessionEvents is the in-process watermill topic carrying login,
	// logout and expiry events.
	TopicSessionEvents = "SESSION_EVENTS"

	// CatalogCompare is the selection key of the capped comparison catalog.
	// Sheet-tab catalogs use their tab name as key and are uncapped.
	CatalogCompare = "compare"

	// BlankValuePlaceholder renders an absent attribute in quote text.
	BlankValuePlaceholder = "-"

	// NoticeAutoLogout is the websocket notice type for an inactivity expiry.
	NoticeAutoLogout = "AUTO_LOGOUT"
)
