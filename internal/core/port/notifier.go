package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
)

// NotifierPort - контракт best-effort доставки бизнес-событий во внешнюю
// автоматизацию. Notify не возвращает ошибку сознательно: запись в БД уже
// состоялась, и ее судьба не должна зависеть от вебхука. Реализация обязана
// проглотить любую ошибку доставки (залогировав ее) и никогда не паниковать.
type NotifierPort interface {
	Notify(ctx context.Context, event domain.NotificationEvent, payload domain.NotificationPayload)
}
