package domain

// NotificationEvent - тег бизнес-события, которое мы отправляем во внешнюю автоматизацию.
// Набор тегов фиксированный, новые добавляются только вместе с записью в eventParts.
type NotificationEvent string

const (
	EventCoachCreated        NotificationEvent = "COACH_CREATED"
	EventCoachUpdated        NotificationEvent = "COACH_UPDATED"
	EventCoachDeleted        NotificationEvent = "COACH_DELETED"
	EventPlayerCreated       NotificationEvent = "PLAYER_CREATED"
	EventPlayerUpdated       NotificationEvent = "PLAYER_UPDATED"
	EventPlayerDeleted       NotificationEvent = "PLAYER_DELETED"
	EventTeamCreated         NotificationEvent = "TEAM_CREATED"
	EventEvaluationSubmitted NotificationEvent = "EVALUATION_SUBMITTED"
	EventDrillCreated        NotificationEvent = "DRILL_CREATED"
	EventHomeworkAssigned    NotificationEvent = "HOMEWORK_ASSIGNED"
)

// EventParts - пара (entity, action), на которую раскладывается тег события.
type EventParts struct {
	Entity string
	Action string
}

// eventParts - явная таблица соответствия вместо разбора строки в рантайме.
// Так таблицу можно проверить тестом целиком, а опечатка в теге не превратится
// в "кривую" пару entity/action на проде.
var eventParts = map[NotificationEvent]EventParts{
	EventCoachCreated:        {Entity: "COACH", Action: "CREATED"},
	EventCoachUpdated:        {Entity: "COACH", Action: "UPDATED"},
	EventCoachDeleted:        {Entity: "COACH", Action: "DELETED"},
	EventPlayerCreated:       {Entity: "PLAYER", Action: "CREATED"},
	EventPlayerUpdated:       {Entity: "PLAYER", Action: "UPDATED"},
	EventPlayerDeleted:       {Entity: "PLAYER", Action: "DELETED"},
	EventTeamCreated:         {Entity: "TEAM", Action: "CREATED"},
	EventEvaluationSubmitted: {Entity: "EVALUATION", Action: "SUBMITTED"},
	EventDrillCreated:        {Entity: "DRILL", Action: "CREATED"},
	EventHomeworkAssigned:    {Entity: "HOMEWORK", Action: "ASSIGNED"},
}

// KnownEvents возвращает все зарегистрированные теги. Нужно в основном тестам
// и для валидации на границе.
func KnownEvents() []NotificationEvent {
	events := make([]NotificationEvent, 0, len(eventParts))
	for ev := range eventParts {
		events = append(events, ev)
	}
	return events
}

// IsKnown сообщает, зарегистрирован ли тег в таблице.
func (e NotificationEvent) IsKnown() bool {
	_, ok := eventParts[e]
	return ok
}

// Parts возвращает пару (entity, action) для тега.
// Для незарегистрированного тега возвращает ok=false - вызывающий сам решает,
// отправлять ли событие с пустыми полями или не отправлять вовсе.
func (e NotificationEvent) Parts() (EventParts, bool) {
	parts, ok := eventParts[e]
	return parts, ok
}

// NotificationPayload - то, что сервисы передают нотификатору вместе с тегом.
// Entity/Action - необязательные переопределения значений из таблицы.
// Body - плоский набор полей, который раскладывается в корень исходящего сообщения.
type NotificationPayload struct {
	Entity string
	Action string
	Body   map[string]interface{}
}
