package gateway

// Wire types for the hosted-checkout provider API. Amounts travel as
// decimal strings, matching the provider's contract.

type buyerPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type basketItemPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category1"`
	Price    string `json:"price"`
}

type initializeRequest struct {
	ConversationID string              `json:"conversationId"`
	Price          string              `json:"price"`
	PaidPrice      string              `json:"paidPrice"`
	Currency       string              `json:"currency"`
	BasketID       string              `json:"basketId"`
	CallbackURL    string              `json:"callbackUrl"`
	Buyer          buyerPayload        `json:"buyer"`
	BasketItems    []basketItemPayload `json:"basketItems"`
}

type initializeResponse struct {
	Status              string `json:"status"`
	ErrorMessage        string `json:"errorMessage"`
	Token               string `json:"token"`
	CheckoutFormContent string `json:"checkoutFormContent"`
}

type retrieveRequest struct {
	Token string `json:"token"`
}

type retrieveResponse struct {
	Status        string `json:"status"`
	ErrorMessage  string `json:"errorMessage"`
	PaymentStatus string `json:"paymentStatus"`
	BasketID      string `json:"basketId"`
}

const (
	statusSuccess        = "success"
	paymentStatusSuccess = "SUCCESS"
)
