package responses

import (
	"strings"
)

// Card version supported by the companion app.
const cardVersion = 1

// The only card type available.
const cardTypeGenericDefault = "GENERIC_DEFAULT"

// CardAction is a card action link: one of the internal deep links below or
// any external http/https URL.
type CardAction string

const (
	// CardActionSkills presents the skill details view.
	CardActionSkills CardAction = "internal://deeplink/skills"
	// CardActionOverview presents an overview of all devices.
	CardActionOverview CardAction = "internal://deeplink/speakeroverview"
	// CardActionDetails presents the details page of the device that was
	// spoken into to generate this card.
	CardActionDetails CardAction = "internal://deeplink/speakerdetails"
	// CardActionFeedback presents the feedback page in the app.
	CardActionFeedback CardAction = "internal://deeplink/feedback"
	// CardActionNews links to the news section of the app.
	CardActionNews CardAction = "internal://deeplink/news"
	// CardActionResponseText presents the full response text in an overlay.
	CardActionResponseText CardAction = "internal://showResponseText"
	// CardActionCall initiates a call to the given phone number.
	CardActionCall CardAction = "internal://deeplink/call/{number}"
	// CardActionOpenApp opens a specified app, or the app store when the
	// app is not installed.
	CardActionOpenApp CardAction = "internal://deeplink/openapp?aos={aos_package_name}&iosScheme={ios_url_scheme}&iosAppStoreId={ios_app_store_id}"
)

// ListItem is one entry of a card's list section.
type ListItem struct {
	Title   string `json:"title"`
	IconURL string `json:"iconUrl,omitempty"`
}

// ListSection is a titled list displayed in a card.
type ListSection struct {
	Title string     `json:"title,omitempty"`
	Items []ListItem `json:"items"`
}

// Card is displayed in the companion app of the user.
type Card struct {
	TitleText           string        `json:"titleText,omitempty"`
	TypeDescription     string        `json:"typeDescription,omitempty"`
	ProminentText       string        `json:"prominentText,omitempty"`
	Text                string        `json:"text,omitempty"`
	SubText             string        `json:"subText,omitempty"`
	Action              string        `json:"action,omitempty"`
	ActionText          string        `json:"actionText,omitempty"`
	ActionProminentText string        `json:"actionProminentText,omitempty"`
	IconURL             string        `json:"iconUrl,omitempty"`
	ListSections        []ListSection `json:"listSections,omitempty"`
}

// WithAction sets the card action. Placeholders in internal deep links, like
// the number in CardActionCall, are substituted from params.
func (c *Card) WithAction(actionText string, action CardAction, params map[string]string) *Card {
	link := string(action)
	for k, v := range params {
		link = strings.ReplaceAll(link, "{"+k+"}", v)
	}
	c.ActionText = actionText
	c.Action = link
	return c
}

// cardWire is the card envelope: type and version are fixed, all display
// properties travel in the camelCase data object.
type cardWire struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Data    any    `json:"data"`
}

// MarshalJSON wraps the card into its wire envelope.
func (c Card) MarshalJSON() ([]byte, error) {
	type data Card // drop the method to avoid recursion
	return json.Marshal(cardWire{
		Type:    cardTypeGenericDefault,
		Version: cardVersion,
		Data:    data(c),
	})
}
