package response_models

// Course is the fixed itinerary schema returned to the frontend. It is
// built per request, normalized, and never persisted.
//
// Day2 and Day3 are nil when the requested duration does not cover them;
// the frontend keys its layout off those nulls.
type Course struct {
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	Duration      string             `json:"duration"`
	Day1          *CourseDay         `json:"day1"`
	Day2          *CourseDay         `json:"day2"`
	Day3          *CourseDay         `json:"day3"`
	Restaurants   []CourseRestaurant `json:"restaurants"`
	Accommodation *Accommodation     `json:"accommodation"`
	SpecialTips   []string           `json:"specialTips"`
	TotalBudget   string             `json:"totalBudget"`
	TransportTips string             `json:"transportTips"`
}

type CourseDay struct {
	Morning   []CourseActivity `json:"morning"`
	Afternoon []CourseActivity `json:"afternoon"`
	Evening   []CourseActivity `json:"evening"`
}

type CourseActivity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
}

type CourseRestaurant struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Specialty string `json:"specialty"`
	Reason    string `json:"reason"`
}

type Accommodation struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

// CourseResponse is the success envelope of the generation endpoint.
type CourseResponse struct {
	Success     bool    `json:"success"`
	Course      *Course `json:"course"`
	UserType    string  `json:"userType"`
	GeneratedAt string  `json:"generatedAt"`
}
