package dto

// IngestResponse is returned by a successful ingestion run
type IngestResponse struct {
	Status           string `json:"status"`
	RecordsProcessed int    `json:"records_processed"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status         string `json:"status"`
	Service        string `json:"service"`
	TotalCustomers *int   `json:"total_customers,omitempty"`
}
