package dto

// Envelope is the response shape every endpoint uses: {success, data}
// on success (count added for listings), {success, message} on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKList(data any, count int) Envelope {
	return Envelope{Success: true, Count: &count, Data: data}
}

func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func Error(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
