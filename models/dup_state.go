package models

// DupState - результат проверки кандидата на дубликат.
// Порядок приоритета фиксированный: Rejected -> Joined -> ActiveList
type DupState string

const (
	DupStateNotFound     DupState = "NotFound"
	DupStateInRejected   DupState = "InRejected"
	DupStateJoined       DupState = "Joined"
	DupStateInActiveList DupState = "InActiveList"
)

// сообщения контракта поиска, фронт завязан на точный текст
var dupStateMessage = map[DupState]string{
	DupStateNotFound:     "Candidate not found, you can proceed",
	DupStateInRejected:   "Candidate is in Rejected list",
	DupStateJoined:       "Candidate is already joined",
	DupStateInActiveList: "Candidate is already in Active List",
}

func (s DupState) Message() string {
	if msg, exist := dupStateMessage[s]; exist {
		return msg
	}
	return string(s)
}
