package generator

import "math/rand"

// Character alphabets for the length-bounded string rules.
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_-+=<>?/[]{}"
	hexChars    = "0123456789abcdef"
	base58Chars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	nanoidChars = lowerChars + upperChars + digitChars + "-_"
)

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
	"et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat", "duis", "aute", "irure",
	"in", "reprehenderit", "voluptate", "velit", "esse", "cillum", "eu",
	"fugiat", "nulla", "pariatur", "excepteur", "sint", "occaecat",
	"cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum",
}

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard",
		"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Nancy",
		"Daniel", "Lisa", "Wei", "Margaret", "Anthony", "Sandra", "Priya",
		"Ashley", "Mark", "Kimberly", "Yusuf", "Emily", "Hiroshi", "Amara",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
		"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
		"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris",
		"Sanchez", "Clark", "Nguyen", "Lewis", "Walker", "Okafor", "Tanaka",
	}
	namePrefixes = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Prof."}
	nameSuffixes = []string{"Jr.", "Sr.", "II", "III", "IV", "MD", "PhD", "DDS"}
	sexes        = []string{"female", "male"}

	jobDescriptors = []string{
		"Lead", "Senior", "Direct", "Corporate", "Dynamic", "Principal",
		"Global", "Chief", "Regional", "District", "Central", "Forward",
	}
	jobAreas = []string{
		"Solutions", "Program", "Brand", "Security", "Research", "Marketing",
		"Operations", "Accounts", "Data", "Infrastructure", "Integration",
	}
	jobTypes = []string{
		"Supervisor", "Associate", "Executive", "Liaison", "Officer",
		"Manager", "Engineer", "Specialist", "Director", "Coordinator",
		"Administrator", "Architect", "Analyst", "Designer", "Planner",
	}
)

var (
	streetNames = []string{
		"Maple", "Oak", "Cedar", "Elm", "Pine", "Washington", "Lake",
		"Hill", "Park", "Main", "Church", "High", "Mill", "River",
		"Sunset", "Railroad", "Jefferson", "Willow", "Chestnut", "Meadow",
	}
	streetSuffixes = []string{
		"Street", "Avenue", "Boulevard", "Drive", "Lane", "Road", "Court",
		"Place", "Terrace", "Way",
	}
	cityNames = []string{
		"Springfield", "Riverton", "Fairview", "Georgetown", "Franklin",
		"Clinton", "Greenville", "Bristol", "Salem", "Madison", "Oakland",
		"Ashland", "Burlington", "Manchester", "Milton", "Newport",
		"Kingston", "Dover", "Hudson", "Auburn",
	}
	stateNames = []string{
		"Alabama", "Alaska", "Arizona", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
		"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Maine",
		"Maryland", "Michigan", "Minnesota", "Montana", "Nebraska",
		"Nevada", "Ohio", "Oregon", "Texas", "Utah", "Vermont",
		"Virginia", "Washington", "Wisconsin", "Wyoming",
	}
	countryCodes = []string{
		"US", "GB", "DE", "FR", "JP", "CA", "AU", "BR", "IN", "CN", "MX",
		"ES", "IT", "NL", "SE", "CH", "SG", "KR", "ZA", "NG", "AR", "PL",
	}
	timeZones = []string{
		"America/New_York", "America/Chicago", "America/Denver",
		"America/Los_Angeles", "America/Sao_Paulo", "Europe/London",
		"Europe/Paris", "Europe/Berlin", "Europe/Madrid", "Europe/Warsaw",
		"Africa/Lagos", "Asia/Tokyo", "Asia/Singapore", "Asia/Kolkata",
		"Asia/Shanghai", "Australia/Sydney", "Pacific/Auckland",
	}
)

type currency struct {
	code   string
	name   string
	symbol string
}

var currencies = []currency{
	{"USD", "US Dollar", "$"},
	{"EUR", "Euro", "€"},
	{"GBP", "British Pound", "£"},
	{"JPY", "Japanese Yen", "¥"},
	{"CHF", "Swiss Franc", "CHF"},
	{"CAD", "Canadian Dollar", "CA$"},
	{"AUD", "Australian Dollar", "A$"},
	{"CNY", "Chinese Yuan", "¥"},
	{"INR", "Indian Rupee", "₹"},
	{"BRL", "Brazilian Real", "R$"},
	{"MXN", "Mexican Peso", "MX$"},
	{"SGD", "Singapore Dollar", "S$"},
	{"SEK", "Swedish Krona", "kr"},
	{"ZAR", "South African Rand", "R"},
}

var transactionTypes = []string{"deposit", "withdrawal", "payment", "invoice"}

type airlineEntry struct {
	name     string
	iataCode string
}

var airlines = []airlineEntry{
	{"American Airlines", "AA"},
	{"United Airlines", "UA"},
	{"Delta Air Lines", "DL"},
	{"Southwest Airlines", "WN"},
	{"British Airways", "BA"},
	{"Lufthansa", "LH"},
	{"Air France", "AF"},
	{"KLM Royal Dutch Airlines", "KL"},
	{"Qantas", "QF"},
	{"Singapore Airlines", "SQ"},
	{"Emirates", "EK"},
	{"Japan Airlines", "JL"},
	{"LATAM Airlines", "LA"},
	{"Ethiopian Airlines", "ET"},
}

type airplaneEntry struct {
	name         string
	iataTypeCode string
}

var airplanes = []airplaneEntry{
	{"Airbus A320", "320"},
	{"Airbus A321", "321"},
	{"Airbus A330-300", "333"},
	{"Airbus A350-900", "359"},
	{"Airbus A380-800", "388"},
	{"Boeing 737-800", "738"},
	{"Boeing 737 MAX 8", "7M8"},
	{"Boeing 747-8", "748"},
	{"Boeing 777-300ER", "77W"},
	{"Boeing 787-9", "789"},
	{"Embraer E175", "E75"},
	{"Bombardier CRJ900", "CR9"},
}

type airportEntry struct {
	name     string
	iataCode string
}

var airports = []airportEntry{
	{"Hartsfield-Jackson Atlanta International Airport", "ATL"},
	{"Dallas Fort Worth International Airport", "DFW"},
	{"Denver International Airport", "DEN"},
	{"Chicago O'Hare International Airport", "ORD"},
	{"Los Angeles International Airport", "LAX"},
	{"John F. Kennedy International Airport", "JFK"},
	{"London Heathrow Airport", "LHR"},
	{"Paris Charles de Gaulle Airport", "CDG"},
	{"Amsterdam Airport Schiphol", "AMS"},
	{"Frankfurt Airport", "FRA"},
	{"Tokyo Haneda Airport", "HND"},
	{"Singapore Changi Airport", "SIN"},
	{"Dubai International Airport", "DXB"},
	{"Sydney Kingsford Smith Airport", "SYD"},
}

var (
	departments = []string{
		"Books", "Movies", "Music", "Games", "Electronics", "Computers",
		"Home", "Garden", "Tools", "Grocery", "Health", "Beauty", "Toys",
		"Kids", "Baby", "Clothing", "Shoes", "Jewelry", "Sports",
		"Outdoors", "Automotive", "Industrial",
	}
	products = []string{
		"Chair", "Car", "Computer", "Keyboard", "Mouse", "Bike", "Ball",
		"Gloves", "Pants", "Shirt", "Table", "Shoes", "Hat", "Towels",
		"Soap", "Tuna", "Chicken", "Fish", "Cheese", "Bacon", "Pizza",
		"Salad", "Sausages", "Chips",
	}
	productAdjectives = []string{
		"Small", "Ergonomic", "Electronic", "Rustic", "Intelligent",
		"Gorgeous", "Incredible", "Fantastic", "Practical", "Modern",
		"Recycled", "Sleek", "Awesome", "Generic", "Handcrafted",
		"Handmade", "Licensed", "Refined", "Unbranded", "Tasty",
	}
	productMaterials = []string{
		"Steel", "Bronze", "Wooden", "Concrete", "Plastic", "Cotton",
		"Granite", "Rubber", "Metal", "Soft", "Fresh", "Frozen",
	}
	companySuffixes = []string{
		"Inc", "LLC", "Group", "and Sons", "- Sons", "Ltd",
	}
)

// pick returns a uniformly random element of the slice.
func pick[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

// randomString builds an n-character string from the given alphabet.
func randomString(n int, alphabet string) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// lengthIn draws a length uniformly from [min, max], falling back to def
// when the rule declares no usable bounds.
func lengthIn(min, max, def int) int {
	if min <= 0 && max <= 0 {
		return def
	}
	if min <= 0 {
		min = 1
	}
	if max < min {
		max = min
	}
	return min + rand.Intn(max-min+1)
}

// intIn draws an integer uniformly from [min, max] inclusive, falling back
// to [0, defMax] when the rule declares no bounds.
func intIn(min, max, defMax int) int {
	if min == 0 && max == 0 {
		max = defMax
	}
	if max < min {
		max = min
	}
	return min + rand.Intn(max-min+1)
}

// floatIn draws a float uniformly from [min, max), falling back to
// [defMin, defMax) when the rule declares no bounds.
func floatIn(min, max, defMin, defMax float64) float64 {
	if min == 0 && max == 0 {
		min, max = defMin, defMax
	}
	if max < min {
		max = min
	}
	return min + rand.Float64()*(max-min)
}
