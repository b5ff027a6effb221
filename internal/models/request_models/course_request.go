package request_models

// CourseRequest is the body of the itinerary-generation endpoint. UserType
// and Character are required; everything else only steers the prompt.
type CourseRequest struct {
	UserType    string            `json:"userType"`
	Character   string            `json:"character"`
	Description string            `json:"description"`
	Filters     map[string]string `json:"filters"`
	FilterText  CourseFilterText  `json:"filterText"`
	SpotType    string            `json:"spotType"`
	Preferences CoursePreferences `json:"preferences"`
}

// CourseFilterText carries the human-readable filter labels that go into
// the prompt verbatim.
type CourseFilterText struct {
	Region    string `json:"region"`
	Mood      string `json:"mood"`
	Weather   string `json:"weather"`
	Companion string `json:"companion"`
}

type CoursePreferences struct {
	// Duration is one of "당일", "1박 2일", "2박 3일"; anything else is
	// clamped to the default.
	Duration string `json:"duration"`
	// Budget is a free-form preference label ("절약", "보통", "넉넉히").
	Budget string `json:"budget"`
}
