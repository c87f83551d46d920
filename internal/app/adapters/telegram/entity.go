package telegram

// SendResponse is the narrow shape the scheduler needs from a successful
// send call. Anything that does not fit (ok=false, missing result, missing
// ids) maps to "skip scheduling", never to a failure of the proxied call.
type SendResponse struct {
	OK     bool         `json:"ok"`
	Result *SentMessage `json:"result"`
}

type SentMessage struct {
	MessageID int64 `json:"message_id"`
	Chat      Chat  `json:"chat"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type DeleteMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}
