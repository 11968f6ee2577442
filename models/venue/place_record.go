package venue

// PlaceRecord is a row as served by the upstream tourism catalog. All four
// catalog endpoints share this shape; eateries leave the opening hours empty.
type PlaceRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"nama_tempat"`
	Kind      string `json:"kategori"`
	Address   string `json:"alamat"`
	OpensAt   string `json:"jam_buka,omitempty"`
	ClosesAt  string `json:"jam_tutup,omitempty"`
	Price     int    `json:"htm"`
	MapsLink  string `json:"link_gmaps"`
	PhotoLink string `json:"link_foto"`
}
