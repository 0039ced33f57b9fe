// FILE: internal/repository/contract/session_repository.go
package contract

import "salesdesk-be/internal/entity"

// SessionRepository is the injected session store: load/save/clear per token.
// The session service is the only writer.
type SessionRepository interface {
	Save(session *entity.Session)
	Get(token string) (*entity.Session, bool)
	Delete(token string)
}
