package secretModel

type Secrets struct {
	GooglePlacesApiKey        string `json:"GooglePlacesApiKey"`
	YelpApiKey                string `json:"YelpApiKey"`
	GptApiKey                 string `json:"GptApiKey"`
	SlackToken                string `json:"SlackToken"`
	ImportAlertSlackChannelId string `json:"ImportAlertSlackChannelId"`
}
