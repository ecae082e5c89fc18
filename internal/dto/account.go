package dto

// CreateAccountRequest collects the answers of the account creation dialogue:
// the new customer's details and the account to open for them
type CreateAccountRequest struct {
	Name           string `json:"name" validate:"required,letters,max=100"`
	Age            int    `json:"age" validate:"required,gt=0"`
	Contact        string `json:"contact" validate:"required,contact"`
	Address        string `json:"address" validate:"required,max=255"`
	CustomerType   string `json:"customer_type" validate:"required,customer_type"`
	AccountType    string `json:"account_type" validate:"required,account_type"`
	InitialDeposit string `json:"initial_deposit" validate:"required,amount,non_negative_amount"`
}
