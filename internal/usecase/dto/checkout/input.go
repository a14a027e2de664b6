package checkoutdto

type InitiateSessionInput struct {
	UserID    string
	UserEmail string
	UserName  string
	// TrackIDs is the untrusted basket from client-side cart state.
	TrackIDs []uint64
}

type ReconcileInput struct {
	// Token is the opaque session token from the gateway callback body.
	Token string
}
