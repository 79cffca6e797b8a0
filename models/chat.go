package models

// ChatTurn is a single prior message from the conversation. Matching ignores
// prior turns; they are carried for the fallback prompt only.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the chat widget into /api/chat.
type ChatRequest struct {
	Message          string     `json:"message"`
	Language         string     `json:"language,omitempty"`
	PreviousMessages []ChatTurn `json:"previousMessages,omitempty"`
}

// ChatResponse is what the chat endpoint returns to the widget.
type ChatResponse struct {
	Response            string `json:"response"`
	ShowReservationForm bool   `json:"showReservationForm"`
}
