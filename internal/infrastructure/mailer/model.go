package mailer

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}
