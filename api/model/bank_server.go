package model

import "github.com/moneyapi/moneyapi/model"

type CreateBankServer struct {
	Name            string `json:"name"`
	ServerIPAddress string `json:"server_ip_address"`
}

func (s *CreateBankServer) ToBankServer() model.BankServer {
	return model.BankServer{
		Name:            s.Name,
		ServerIPAddress: s.ServerIPAddress,
	}
}
