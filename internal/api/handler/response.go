package handler

// envelope is the response shape shared by every endpoint:
// {success, message?, count?, data?, token?}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
}

// countOf returns a pointer so that count renders even when zero.
func countOf(n int) *int {
	return &n
}
