package dto

type InteractionResponse struct {
	Success                    bool     `json:"success"`
	Message                    string   `json:"message"`
	TotalInteractionsInSession int64    `json:"totalInteractionsInSession"`
	Filters                    []string `json:"filters"`
	Timestamp                  string   `json:"timestamp"`
}
