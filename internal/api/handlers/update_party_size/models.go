package update_party_size

// UpdatePartySizeRequest HTTP request model.
// force учитывается только на административном маршруте.
type UpdatePartySizeRequest struct {
	PartySize int  `json:"partySize"`
	Force     bool `json:"force,omitempty"`
}
