package model

// GeneratedText is the payload of an AI text-generation response.
type GeneratedText struct {
	Text string `json:"text"`
}
