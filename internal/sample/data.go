package sample

// defaultDomain is the fallback email domain when none is provided.
const defaultDomain = "example.com"

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Emily",
	"Andrew", "Donna", "Kevin", "Amanda", "Brian", "Melissa", "Jason", "Laura",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Thompson", "White", "Harris", "Clark", "Lewis", "Walker", "Young",
	"Allen", "King", "Wright", "Hill", "Green", "Adams", "Baker", "O'Neil",
}

// place ties a city to the state, county and zip prefix it sits in so a
// generated address is internally consistent.
type place struct {
	city      string
	state     string
	county    string
	zipPrefix string
}

var places = []place{
	{"Springfield", "IL", "Sangamon", "627"},
	{"Portland", "OR", "Multnomah", "972"},
	{"Austin", "TX", "Travis", "787"},
	{"Columbus", "OH", "Franklin", "432"},
	{"Denver", "CO", "Denver", "802"},
	{"Nashville", "TN", "Davidson", "372"},
	{"Raleigh", "NC", "Wake", "276"},
	{"Madison", "WI", "Dane", "537"},
	{"Boise", "ID", "Ada", "837"},
	{"Tucson", "AZ", "Pima", "857"},
	{"Richmond", "VA", "Henrico", "232"},
	{"Omaha", "NE", "Douglas", "681"},
	{"Tampa", "FL", "Hillsborough", "336"},
	{"Sacramento", "CA", "Sacramento", "958"},
	{"Albany", "NY", "Albany", "122"},
	{"Burlington", "VT", "Chittenden", "054"},
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Elm", "Pine", "Walnut", "Lake",
	"Hill", "Washington", "Park", "River", "Spring", "Church", "High",
	"Meadow", "Lincoln", "Willow", "Madison", "Market", "Union", "Liberty",
}

var streetSuffixes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Ct", "Pl", "Way", "Rd",
}

var unitKinds = []string{"Apt", "Suite", "Unit", "Fl"}
