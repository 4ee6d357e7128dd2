package model

// BankServer is a registered endpoint for a commercial bank's own systems.
// Name and address are globally unique.
type BankServer struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ServerIPAddress string `json:"server_ip_address"`
}
