// Package catalog holds the bundled, read-only requirement data: the general
// education course table, major and minor requirement definitions, and the
// university-wide graduation constants. Evaluators treat everything here as an
// immutable lookup table; nothing in this package changes at runtime.
package catalog

// DomainKey identifies a general education breadth domain.
type DomainKey string

const (
	// DomainArtist is the Exploring Perspectives "The Artist" domain.
	DomainArtist DomainKey = "A"
	// DomainHumanist is the Exploring Perspectives "The Humanist" domain.
	DomainHumanist DomainKey = "H"
	// DomainNaturalScientist is the Exploring Perspectives "The Natural Scientist" domain.
	DomainNaturalScientist DomainKey = "N"
	// DomainSocialScientist is the Exploring Perspectives "The Social Scientist" domain.
	DomainSocialScientist DomainKey = "S"
	// DomainBuildingConnections is the interdisciplinary Building Connections requirement.
	DomainBuildingConnections DomainKey = "B"
)

// Domain describes one breadth domain and its satisfaction thresholds.
type Domain struct {
	Key        DomainKey
	Name       string
	Label      string
	MinUnits   float64
	MinCourses int
}

// EPDomains lists the four Exploring Perspectives domains in display order.
// Satisfaction is checked against MinUnits only; MinCourses documents catalog
// intent but is deliberately not enforced (see progress.IsDomainSatisfied).
var EPDomains = []Domain{
	{Key: DomainArtist, Name: "The Artist", Label: "Artist", MinUnits: 3, MinCourses: 1},
	{Key: DomainHumanist, Name: "The Humanist", Label: "Humanist", MinUnits: 3, MinCourses: 1},
	{Key: DomainNaturalScientist, Name: "The Natural Scientist", Label: "Nat Sci", MinUnits: 3, MinCourses: 1},
	{Key: DomainSocialScientist, Name: "The Social Scientist", Label: "Soc Sci", MinUnits: 3, MinCourses: 1},
}

// BCDomain is the Building Connections requirement: 9 units across 3 courses.
var BCDomain = Domain{
	Key:        DomainBuildingConnections,
	Name:       "Building Connections",
	Label:      "Build Conn",
	MinUnits:   9,
	MinCourses: 3,
}

// DomainByKey returns the domain definition for the given key.
func DomainByKey(key DomainKey) (Domain, bool) {
	if key == DomainBuildingConnections {
		return BCDomain, true
	}
	for _, d := range EPDomains {
		if d.Key == key {
			return d, true
		}
	}
	return Domain{}, false
}

// GenEdCourse is one entry in the general education course table.
type GenEdCourse struct {
	Code        string
	Name        string
	Units       float64
	Domains     []DomainKey
	Attributes  []string
	Description string
	Prereq      string
}

// HasDomain reports whether the course carries the given domain tag.
func (c GenEdCourse) HasDomain(key DomainKey) bool {
	for _, d := range c.Domains {
		if d == key {
			return true
		}
	}
	return false
}

// GenEdCourses is the bundled gen ed course table, keyed lookups via
// GenEdByCode and CoursesForDomain.
var GenEdCourses = []GenEdCourse{
	// The Artist
	{Code: "MUS 109", Name: "Intro to Music in Western Culture", Units: 3, Domains: []DomainKey{DomainArtist},
		Description: "Survey of Western music history, styles, and listening skills"},
	{Code: "MUS 160D1", Name: "American Popular Music", Units: 3, Domains: []DomainKey{DomainArtist}, Attributes: []string{"world-culture"},
		Description: "Popular music traditions in America from blues to hip hop"},
	{Code: "ART 130", Name: "Introduction to Visual Culture", Units: 3, Domains: []DomainKey{DomainArtist},
		Description: "How images shape perception in art, media, and everyday creative life"},
	{Code: "TAR 100", Name: "Acting for General Students", Units: 3, Domains: []DomainKey{DomainArtist},
		Description: "Fundamentals of stage performance and creative expression"},
	{Code: "DNC 100", Name: "Looking at Dance", Units: 3, Domains: []DomainKey{DomainArtist},
		Description: "Dance as an art form across cultures and eras"},

	// The Humanist
	{Code: "PHIL 101", Name: "Intro to Philosophy", Units: 3, Domains: []DomainKey{DomainHumanist},
		Description: "Central problems of knowledge, mind, ethics, and existence"},
	{Code: "ENGL 160D1", Name: "Literature and Film", Units: 3, Domains: []DomainKey{DomainHumanist}, Attributes: []string{"writing"},
		Description: "Close reading of narrative across literature and cinema"},
	{Code: "CLAS 160D2", Name: "Classical Mythology", Units: 3, Domains: []DomainKey{DomainHumanist}, Attributes: []string{"world-culture"},
		Description: "Greek and Roman myth and its afterlife in Western culture"},
	{Code: "RELI 160A1", Name: "World Religions", Units: 3, Domains: []DomainKey{DomainHumanist}, Attributes: []string{"world-culture"},
		Description: "Comparative study of major religious traditions"},

	// The Natural Scientist
	{Code: "GEOG 101", Name: "Intro to Physical Geography", Units: 3, Domains: []DomainKey{DomainNaturalScientist},
		Description: "Landforms, climate, and the physical systems of the Earth"},
	{Code: "ASTR 170B1", Name: "The Physical Universe", Units: 3, Domains: []DomainKey{DomainNaturalScientist}, Attributes: []string{"quant"},
		Description: "Stars, galaxies, and the structure of the cosmos"},
	{Code: "GEOS 170A1", Name: "Earth: From Birth to Death", Units: 4, Domains: []DomainKey{DomainNaturalScientist}, Attributes: []string{"quant"},
		Description: "Geologic processes that built and reshape the planet"},
	{Code: "ECOL 182R", Name: "Introductory Biology II", Units: 3, Domains: []DomainKey{DomainNaturalScientist},
		Prereq: "ECOL 181R", Description: "Evolution, ecology, and the diversity of life"},

	// The Social Scientist
	{Code: "PSY 101", Name: "Intro to Psychology", Units: 3, Domains: []DomainKey{DomainSocialScientist},
		Description: "Scientific study of behavior, cognition, and mental processes"},
	{Code: "ECON 200", Name: "Intro to Economics", Units: 3, Domains: []DomainKey{DomainSocialScientist}, Attributes: []string{"quant"},
		Description: "Markets, incentives, and economic decision making"},
	{Code: "SOC 101", Name: "Intro to Sociology", Units: 3, Domains: []DomainKey{DomainSocialScientist},
		Description: "Social structures, institutions, and group behavior"},
	{Code: "ANTH 102", Name: "Culture and the Human Experience", Units: 3, Domains: []DomainKey{DomainSocialScientist}, Attributes: []string{"world-culture"},
		Description: "Cultural anthropology and human diversity around the world"},

	// Building Connections
	{Code: "MUS 327", Name: "Music and Artificial Intelligence", Units: 3, Domains: []DomainKey{DomainBuildingConnections},
		Description: "How AI and machine learning are changing music creation and the creative industries"},
	{Code: "MUS 334", Name: "Music, Science, and Technology", Units: 3, Domains: []DomainKey{DomainBuildingConnections},
		Description: "The physics of sound and the technology of audio production"},
	{Code: "MUS 337", Name: "Music in World Cultures", Units: 3, Domains: []DomainKey{DomainBuildingConnections}, Attributes: []string{"world-culture"},
		Description: "Musical traditions across the globe and what they share"},
	{Code: "ESOC 313", Name: "The Data-Driven Society", Units: 3, Domains: []DomainKey{DomainBuildingConnections}, Attributes: []string{"quant"},
		Description: "How data and analytics reshape work, culture, and public life"},
	{Code: "GWS 305", Name: "Gender, Technology, and Society", Units: 3, Domains: []DomainKey{DomainBuildingConnections},
		Description: "Technology design and its social consequences across communities"},
	{Code: "PAH 372", Name: "Innovation and the Human Condition", Units: 3, Domains: []DomainKey{DomainBuildingConnections},
		Description: "Applied humanities perspectives on innovation and entrepreneurship"},
}

// GenEdByCode returns the gen ed course with the given canonical code.
func GenEdByCode(code string) (GenEdCourse, bool) {
	for _, c := range GenEdCourses {
		if c.Code == code {
			return c, true
		}
	}
	return GenEdCourse{}, false
}

// CoursesForDomain returns every gen ed course tagged with the given domain,
// in table order.
func CoursesForDomain(key DomainKey) []GenEdCourse {
	var out []GenEdCourse
	for _, c := range GenEdCourses {
		if c.HasDomain(key) {
			out = append(out, c)
		}
	}
	return out
}
