package models

// Conferences
const (
	ConferenceEastern = "Eastern"
	ConferenceWestern = "Western"
)

// ValidConferences defines allowed team conferences
var ValidConferences = map[string]bool{
	ConferenceEastern: true,
	ConferenceWestern: true,
}

// Team represents an NBA team
type Team struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	City           string `json:"city" db:"city"`
	Abbreviation   string `json:"abbreviation,omitempty" db:"abbreviation"`
	Conference     string `json:"conference" db:"conference"`
	Division       string `json:"division" db:"division"`
	PrimaryColor   string `json:"primary_color,omitempty" db:"primary_color"`
	SecondaryColor string `json:"secondary_color,omitempty" db:"secondary_color"`
}

// FullName returns the team's city-qualified name, e.g. "Oklahoma City Thunder"
func (t *Team) FullName() string {
	return t.City + " " + t.Name
}
