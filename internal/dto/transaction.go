package dto

// TransactionRequest represents a deposit or withdrawal entered at the console
type TransactionRequest struct {
	AccountNumber string `json:"account_number" validate:"required,account_number"`
	Type          string `json:"type" validate:"required,transaction_type"`
	Amount        string `json:"amount" validate:"required,amount,non_negative_amount"`
}

// ConfirmationRequest is the operator's answer to the transaction preview
type ConfirmationRequest struct {
	Answer string `json:"answer" validate:"required,oneof=Y N y n"`
}
