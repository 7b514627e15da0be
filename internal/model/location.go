package model

// UnknownLocationName is shown for documents whose location no longer exists.
const UnknownLocationName = "Local Desconhecido"

// Location is a site that documents are attached to.
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
