package models

type Notification struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	ProductName     string `json:"productName"`
	ProductCategory string `json:"productCategory"`
	Quantity        string `json:"quantity"`
	Image           string `json:"image"`
}

type CareStage struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Details  []string `json:"details"`
}

type PlantCareGuide struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Image  string      `json:"image"`
	Tags   []string    `json:"tags"`
	Stages []CareStage `json:"stages"`
}

type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SearchEntry is one item of the device's recent searches.
type SearchEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

type SaveSearchRequest struct {
	Query string `json:"query" validate:"required"`
}
