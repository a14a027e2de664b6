package publisher

type PurchaseEvent struct {
	OrderID  uint64  `json:"order_id"`
	UserID   string  `json:"user_id"`
	TrackID  uint64  `json:"track_id"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
